// internal/batch/batch.go
//
// Batch benchmark: solve many targets with one Solver and summarise how many
// guesses each took.
//
// Solves run concurrently (bounded by Options.Concurrency) through an
// errgroup; the first hard error (unknown solution, cancellation) aborts the
// batch. Non-convergence is counted as a failure, not an error.

package batch

import (
	"context"
	"fmt"
	"io"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
	"github.com/robalobadob/wordle/apps/go-solver/internal/word"
)

// Options tunes a batch run.
type Options struct {
	Opening     word.Word
	Concurrency int             // <= 0 means 1
	Logger      *zerolog.Logger // nil means the global logger
}

// Result is the outcome of one target.
type Result struct {
	Solution word.Word
	Guesses  int
	Solved   bool
}

// Summary aggregates a batch.
type Summary struct {
	Algorithm string
	Results   []Result // in target order
	Elapsed   time.Duration
}

// Run solves every target.
func Run(ctx context.Context, s *solver.Solver, targets []word.Word, opts Options) (*Summary, error) {
	results := make([]Result, len(targets))
	start := time.Now()
	logger := opts.Logger
	if logger == nil {
		logger = &log.Logger
	}

	var (
		mu   sync.Mutex
		done int
	)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(opts.Concurrency, 1))
	for i, target := range targets {
		g.Go(func() error {
			sb, solved, err := s.Solve(ctx, target, opts.Opening)
			if err != nil {
				return fmt.Errorf("solve %s: %w", target, err)
			}
			results[i] = Result{Solution: target, Guesses: sb.Len(), Solved: solved}

			mu.Lock()
			done++
			n := done
			mu.Unlock()
			if n%100 == 0 {
				logger.Debug().Int("done", n).Int("total", len(targets)).Msg("batch progress")
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sum := &Summary{Algorithm: s.Algorithm().Name(), Results: results, Elapsed: time.Since(start)}
	logger.Info().
		Str("algorithm", sum.Algorithm).
		Int("targets", len(targets)).
		Int("failed", len(sum.Failed())).
		Float64("average", sum.Average()).
		Dur("elapsed", sum.Elapsed).
		Msg("batch complete")
	return sum, nil
}

// Distribution maps guess count to the number of solved targets that took it.
func (s *Summary) Distribution() map[int]int {
	out := map[int]int{}
	for _, r := range s.Results {
		if r.Solved {
			out[r.Guesses]++
		}
	}
	return out
}

// Average is the mean guess count over solved targets (0 if none).
func (s *Summary) Average() float64 {
	var sum, n int
	for _, r := range s.Results {
		if r.Solved {
			sum += r.Guesses
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return float64(sum) / float64(n)
}

// Worst returns the highest guess count among solved targets and the words that needed it.
func (s *Summary) Worst() (int, []word.Word) {
	var (
		worst int
		words []word.Word
	)
	for _, r := range s.Results {
		switch {
		case !r.Solved:
		case r.Guesses > worst:
			worst, words = r.Guesses, []word.Word{r.Solution}
		case r.Guesses == worst:
			words = append(words, r.Solution)
		}
	}
	slices.SortFunc(words, word.Compare)
	return worst, words
}

// Failed lists targets that were not solved within the iteration cap.
func (s *Summary) Failed() []word.Word {
	var out []word.Word
	for _, r := range s.Results {
		if !r.Solved {
			out = append(out, r.Solution)
		}
	}
	return out
}

// Print writes a human-readable report.
func (s *Summary) Print(w io.Writer) {
	dist := s.Distribution()
	keys := make([]int, 0, len(dist))
	for k := range dist {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	total := len(s.Results)
	fmt.Fprintf(w, "algorithm: %s, targets: %d, elapsed: %s\n", s.Algorithm, total, s.Elapsed.Round(time.Millisecond))
	cum := 0
	for _, k := range keys {
		cum += dist[k]
		fmt.Fprintf(w, "%2d: %5d/%d (cum. %5d/%d)\n", k, dist[k], total, cum, total)
	}
	fmt.Fprintf(w, "average: %.3f\n", s.Average())
	if worst, ws := s.Worst(); worst > 0 {
		fmt.Fprintf(w, "worst: %d (%s)\n", worst, joinWords(ws))
	}
	if failed := s.Failed(); len(failed) > 0 {
		fmt.Fprintf(w, "failed: %d (%s)\n", len(failed), joinWords(failed))
	}
}

func joinWords(ws []word.Word) string {
	ss := make([]string, len(ws))
	for i, w := range ws {
		ss[i] = w.String()
	}
	return strings.Join(ss, " ")
}
