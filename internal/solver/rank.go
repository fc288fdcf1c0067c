package solver

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/robalobadob/wordle/apps/go-solver/internal/guess"
	"github.com/robalobadob/wordle/apps/go-solver/internal/word"
)

// ctxCheckEvery is how many words a worker ranks between context checks.
const ctxCheckEvery = 256

// rank evaluates every dictionary word against remaining and returns the best.
// The dictionary is split into contiguous chunks, one per worker; each worker
// reuses a single histogram buffer and writes its guesses into the slot of
// their dictionary index. guess.Select then runs once over the full slice, so
// the winner is the same for any number of workers.
func (s *Solver) rank(ctx context.Context, remaining []word.Word) (guess.Guess, error) {
	all := s.dict.All
	if len(all) == 0 {
		return guess.Guess{}, ErrEmptyDictionary
	}
	workers := min(s.workers, len(all))
	chunk := (len(all) + workers - 1) / workers
	ranked := make([]guess.Guess, len(all))
	start := time.Now()

	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := min(lo+chunk, len(all))
		g.Go(func() error {
			var h guess.Histogram
			for i := lo; i < hi; i++ {
				if (i-lo)%ctxCheckEvery == 0 {
					if err := ctx.Err(); err != nil {
						return err
					}
				}
				h.Build(all[i], remaining)
				ranked[i] = s.alg.MakeGuess(all[i], len(remaining), &h)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return guess.Guess{}, err
	}

	winner := ranked[guess.Select(s.alg, ranked)]
	s.log.Debug().
		Str("algorithm", s.alg.Name()).
		Stringer("guess", winner.Word).
		Float64("quality", winner.Quality).
		Int("words", len(all)).
		Int("remaining", len(remaining)).
		Dur("took", time.Since(start)).
		Msg("ranked")
	return winner, nil
}
