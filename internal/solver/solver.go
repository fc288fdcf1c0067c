// internal/solver/solver.go
//
// Iterative Wordle solve loop.
//
// Each step:
//   1. Score the current guess against the true solution.
//   2. Keep only the remaining solutions that would have produced the same
//      code. The true solution always survives this filter.
//   3. Append a scoreboard row and notify the reporter.
//   4. Stop if the code is all green; fail if nothing is left.
//   5. Otherwise rank every dictionary word against the remaining solutions
//      and play the best one.
//
// After the iteration cap is reached without an exact match the failure
// hook runs and Solve reports solved=false without an error.

package solver

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"slices"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-solver/internal/cache"
	"github.com/robalobadob/wordle/apps/go-solver/internal/guess"
	"github.com/robalobadob/wordle/apps/go-solver/internal/report"
	"github.com/robalobadob/wordle/apps/go-solver/internal/scoreboard"
	"github.com/robalobadob/wordle/apps/go-solver/internal/scoring"
	"github.com/robalobadob/wordle/apps/go-solver/internal/word"
)

// DefaultMaxIterations is the iteration cap used unless overridden.
const DefaultMaxIterations = 20

// ErrNoCandidates means filtering removed every possible solution, i.e. the
// true solution is not in the solution list.
var ErrNoCandidates = errors.New("no remaining candidates")

// ErrEmptyDictionary is returned when there are no words to rank.
var ErrEmptyDictionary = errors.New("empty guess dictionary")

// Dictionary is the word set a Solver plays with. Iteration order decides
// ties, so callers should pass stable (normally sorted) lists.
type Dictionary struct {
	All       []word.Word // every word that may be played
	Solutions []word.Word // words that may be the answer
}

// Solver plays games for one algorithm and dictionary. It holds no per-solve
// state, so one Solver may run many solves concurrently.
type Solver struct {
	alg      guess.Algorithm
	dict     Dictionary
	dictKey  uint64
	reporter report.Reporter
	cache    cache.Store
	maxIters int
	workers  int
	log      zerolog.Logger
}

// Option configures a Solver.
type Option func(*Solver)

// WithReporter sets the step/failure hooks. Default: report.Null.
func WithReporter(r report.Reporter) Option { return func(s *Solver) { s.reporter = r } }

// WithCache memoises next-guess decisions in c. Default: cache.Nop.
func WithCache(c cache.Store) Option { return func(s *Solver) { s.cache = c } }

// WithMaxIterations overrides DefaultMaxIterations.
func WithMaxIterations(n int) Option {
	return func(s *Solver) {
		if n > 0 {
			s.maxIters = n
		}
	}
}

// WithWorkers sets the ranking pass parallelism. Default: GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(s *Solver) {
		if n > 0 {
			s.workers = n
		}
	}
}

// WithLogger replaces the global zerolog logger.
func WithLogger(l zerolog.Logger) Option { return func(s *Solver) { s.log = l } }

// New builds a Solver. dict.Solutions must be non-empty.
func New(alg guess.Algorithm, dict Dictionary, opts ...Option) *Solver {
	s := &Solver{
		alg:      alg,
		dict:     dict,
		dictKey:  cache.Fingerprint(dict.All),
		reporter: report.Null{},
		cache:    cache.Nop{},
		maxIters: DefaultMaxIterations,
		workers:  runtime.GOMAXPROCS(0),
		log:      log.Logger,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Algorithm returns the ranking algorithm in use.
func (s *Solver) Algorithm() guess.Algorithm { return s.alg }

// Solve plays opening first and iterates until solution is found or the
// iteration cap is reached. solved is false on exhaustion; err is non-nil
// only for ErrNoCandidates or context cancellation. The scoreboard is always
// returned, holding every step played so far.
func (s *Solver) Solve(ctx context.Context, solution, opening word.Word) (*scoreboard.Scoreboard, bool, error) {
	sb := &scoreboard.Scoreboard{}
	remaining := slices.Clone(s.dict.Solutions)
	played := opening
	start := time.Now()

	for i := 0; i < s.maxIters; i++ {
		if err := ctx.Err(); err != nil {
			return sb, false, err
		}

		code := scoring.Score(played, solution)
		remaining = Filter(remaining, played, code)
		row := sb.AddRow(solution, played, code, len(remaining))
		s.reporter.Report(sb)
		s.log.Debug().
			Int("n", row.N).
			Stringer("guess", played).
			Str("code", code.Ternary()).
			Int("remaining", len(remaining)).
			Msg("step")

		if sb.IsSolved() {
			s.log.Debug().
				Stringer("solution", solution).
				Int("guesses", sb.Len()).
				Dur("elapsed", time.Since(start)).
				Msg("solved")
			return sb, true, nil
		}
		if len(remaining) == 0 {
			return sb, false, fmt.Errorf("%w: %s is not among the possible solutions", ErrNoCandidates, solution)
		}

		if i+1 == s.maxIters {
			break
		}
		next, err := s.NextGuess(ctx, remaining)
		if err != nil {
			return sb, false, err
		}
		played = next
	}

	s.reporter.ReportFailure(sb)
	s.log.Debug().Stringer("solution", solution).Int("iterations", sb.Len()).Msg("exhausted")
	return sb, false, nil
}

// NextGuess returns the word to play against remaining, consulting the cache.
func (s *Solver) NextGuess(ctx context.Context, remaining []word.Word) (word.Word, error) {
	key := cache.KeyFor(s.dictKey, s.alg.Name(), remaining)
	if w, ok := s.cache.Get(key); ok {
		s.log.Debug().Stringer("guess", w).Int("remaining", len(remaining)).Msg("cache hit")
		return w, nil
	}
	g, err := s.BestGuess(ctx, remaining)
	if err != nil {
		return word.Word{}, err
	}
	s.cache.Put(key, g.Word)
	return g.Word, nil
}

// BestGuess ranks the dictionary against remaining and returns the winner.
//
// With two or fewer solutions left the full pass is skipped: the first
// remaining solution is evaluated against a synthetic histogram (all mass on
// the exact-match code, plus one unit on code 0 when two remain). Either it is
// the answer, or the next step has exactly one candidate left, and no other
// word can split two solutions better.
func (s *Solver) BestGuess(ctx context.Context, remaining []word.Word) (guess.Guess, error) {
	switch len(remaining) {
	case 0:
		return guess.Guess{}, ErrNoCandidates
	case 1, 2:
		var h guess.Histogram
		h[scoring.MaxCode] = 1
		if len(remaining) == 2 {
			h[0] = 1
		}
		return s.alg.MakeGuess(remaining[0], len(remaining), &h), nil
	}
	return s.rank(ctx, remaining)
}

// Filter returns the words in remaining that would have scored code against
// guess had they been the solution. remaining is not modified.
func Filter(remaining []word.Word, played word.Word, code scoring.Code) []word.Word {
	out := make([]word.Word, 0, len(remaining))
	for _, w := range remaining {
		if scoring.Score(played, w) == code {
			out = append(out, w)
		}
	}
	return out
}
