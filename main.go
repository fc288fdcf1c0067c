// main.go
//
// Command-line entry point for the Wordle solver.
//
// Usage:
//   go-solver [solve] -answer WORD [-guess SALET] [-solver entropy|minimax]
//   go-solver solve -daily
//   go-solver solve -answer random
//   go-solver batch [-n 100] [-concurrency 8] [-solver minimax]
//
// Defaults come from the environment (see internal/config); flags win.
// `solve` exits 0 when the answer is found and 1 otherwise.

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-solver/internal/batch"
	"github.com/robalobadob/wordle/apps/go-solver/internal/cache"
	"github.com/robalobadob/wordle/apps/go-solver/internal/config"
	"github.com/robalobadob/wordle/apps/go-solver/internal/daily"
	"github.com/robalobadob/wordle/apps/go-solver/internal/guess"
	"github.com/robalobadob/wordle/apps/go-solver/internal/report"
	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
	"github.com/robalobadob/wordle/apps/go-solver/internal/word"
	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load .env")
	}
	setupLogging(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	args := os.Args[1:]
	cmd := "solve"
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		cmd, args = args[0], args[1:]
	}

	var ok bool
	switch cmd {
	case "solve":
		ok = runSolve(ctx, cfg, args)
	case "batch":
		ok = runBatch(ctx, cfg, args)
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q (want solve or batch)\n", cmd)
	}
	if !ok {
		stop()
		os.Exit(1)
	}
}

// setupLogging applies the level and picks a console writer when stderr is a terminal.
func setupLogging(level string) {
	if lvl, err := zerolog.ParseLevel(level); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	if fd := os.Stderr.Fd(); isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd) {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: colorable.NewColorableStderr(), TimeFormat: time.Kitchen})
	}
}

// common flags shared by both sub-commands.
type common struct {
	algorithm string
	opening   string
	maxIters  int
	workers   int
	cacheSize int
}

func (c *common) register(fs *flag.FlagSet, cfg config.Config) {
	fs.StringVar(&c.algorithm, "solver", cfg.Algorithm, "ranking algorithm: "+strings.Join(guess.Names(), " | "))
	fs.StringVar(&c.opening, "guess", cfg.Opening, "opening guess")
	fs.IntVar(&c.maxIters, "max-iterations", cfg.MaxIterations, "give up after this many guesses")
	fs.IntVar(&c.workers, "workers", cfg.Workers, "parallelism of the ranking pass")
	fs.IntVar(&c.cacheSize, "cache", cfg.CacheSize, "next-guess cache entries (0 disables, negative is unbounded)")
}

// newCache maps the cache size setting to a store.
func newCache(size int) (cache.Store, error) {
	switch {
	case size < 0:
		return cache.NewMemory(), nil
	case size == 0:
		return cache.Nop{}, nil
	default:
		return cache.NewLRU(size)
	}
}

// batchWorkers keeps the ranking pass serial in batch mode, where solves
// already run side by side, unless workers was set explicitly.
func batchWorkers(fs *flag.FlagSet, workers int) int {
	if _, ok := os.LookupEnv("SOLVER_WORKERS"); ok {
		return workers
	}
	explicit := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "workers" {
			explicit = true
		}
	})
	if explicit {
		return workers
	}
	return 1
}

// build loads the dictionary and constructs a solver from the flags.
func (c *common) build(cfg config.Config, opts ...solver.Option) (*solver.Solver, *words.Dictionary, word.Word, error) {
	alg, err := guess.ByName(c.algorithm)
	if err != nil {
		return nil, nil, word.Word{}, err
	}
	opening, err := word.Parse(c.opening)
	if err != nil {
		return nil, nil, word.Word{}, fmt.Errorf("opening guess: %w", err)
	}

	dict, err := words.Load(words.Sources{AnswersFile: cfg.AnswersFile, AllowedFile: cfg.AllowedFile})
	if err != nil {
		return nil, nil, word.Word{}, fmt.Errorf("load word lists: %w", err)
	}
	nSol, nAll := dict.Stats()
	log.Debug().Int("solutions", nSol).Int("allowed", nAll).Msg("dictionary loaded")
	if !dict.IsAllowed(opening) {
		log.Warn().Stringer("guess", opening).Msg("opening guess is not in the word list")
	}

	store, err := newCache(c.cacheSize)
	if err != nil {
		return nil, nil, word.Word{}, err
	}
	opts = append([]solver.Option{
		solver.WithMaxIterations(c.maxIters),
		solver.WithWorkers(c.workers),
		solver.WithCache(store),
	}, opts...)
	s := solver.New(alg, solver.Dictionary{All: dict.All, Solutions: dict.Solutions}, opts...)
	return s, dict, opening, nil
}

func runSolve(ctx context.Context, cfg config.Config, args []string) bool {
	fs := flag.NewFlagSet("solve", flag.ExitOnError)
	var (
		c       common
		answer  = fs.String("answer", "", `solution to find, or "random"`)
		useDay  = fs.Bool("daily", false, "solve today's word of the day")
		quiet   = fs.Bool("quiet", false, "do not print the scoreboard")
		logRows = fs.Bool("log-steps", false, "also log each step as a structured event")
	)
	c.register(fs, cfg)
	_ = fs.Parse(args)

	var reporter report.Reporter = report.NewStdout()
	if *quiet {
		reporter = report.Null{}
	}
	if *logRows {
		reporter = report.Multi{reporter, report.Log{Logger: log.Logger}}
	}

	s, dict, opening, err := c.build(cfg, solver.WithReporter(reporter))
	if err != nil {
		log.Error().Err(err).Msg("setup failed")
		return false
	}

	var (
		solution word.Word
		ok       bool
	)
	switch {
	case *useDay:
		today := time.Now()
		if solution, ok = daily.Pick(today, cfg.DailySalt, dict.Solutions); !ok {
			log.Error().Msg("no solutions to pick the word of the day from")
			return false
		}
		log.Info().Str("date", today.UTC().Format(time.DateOnly)).Msg("solving word of the day")
	case strings.EqualFold(*answer, "random"):
		solution = dict.RandomSolution()
	case *answer == "":
		fmt.Fprintln(os.Stderr, "solve: -answer or -daily is required")
		fs.Usage()
		return false
	default:
		if solution, err = word.Parse(*answer); err != nil {
			log.Error().Err(err).Msg("invalid answer")
			return false
		}
		if !dict.IsSolution(solution) {
			log.Warn().Stringer("solution", solution).Msg("answer is not in the answers list")
		}
	}

	log.Info().Stringer("solution", solution).Stringer("guess", opening).Str("solver", s.Algorithm().Name()).Msg("begin solve")
	start := time.Now()
	sb, solved, err := s.Solve(ctx, solution, opening)
	switch {
	case errors.Is(err, solver.ErrNoCandidates):
		log.Error().Err(err).Msg("solution is not in the answers list")
		return false
	case err != nil:
		log.Error().Err(err).Msg("solve aborted")
		return false
	case !solved:
		fmt.Printf("No solution found for %s.\n", solution)
		return false
	}
	log.Info().Int("guesses", sb.Len()).Dur("elapsed", time.Since(start)).Msg("solved")
	return true
}

func runBatch(ctx context.Context, cfg config.Config, args []string) bool {
	fs := flag.NewFlagSet("batch", flag.ExitOnError)
	var (
		c           common
		n           = fs.Int("n", 0, "only solve the first n solutions (0 = all)")
		concurrency = fs.Int("concurrency", cfg.Workers, "solves to run at once")
	)
	c.register(fs, cfg)
	_ = fs.Parse(args)

	c.workers = batchWorkers(fs, c.workers)
	s, dict, opening, err := c.build(cfg)
	if err != nil {
		log.Error().Err(err).Msg("setup failed")
		return false
	}

	targets := dict.Solutions
	if *n > 0 && *n < len(targets) {
		targets = targets[:*n]
	}
	sum, err := batch.Run(ctx, s, targets, batch.Options{Opening: opening, Concurrency: *concurrency})
	if err != nil {
		log.Error().Err(err).Msg("batch aborted")
		return false
	}
	sum.Print(os.Stdout)
	return len(sum.Failed()) == 0
}
