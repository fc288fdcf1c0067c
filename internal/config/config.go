// internal/config/config.go
//
// Environment-driven configuration.
//
// Values are read from the process environment after an optional `.env`
// file has been loaded with godotenv. Command-line flags may override any
// of them afterwards.
//
// Environment variables:
//   LOG_LEVEL               zerolog level (default "info")
//   WORDS_ANSWERS_FILE      possible-solutions list
//   WORDS_ALLOWED_FILE      guessable-words list
//   SOLVER_ALGORITHM        "entropy" | "minimax" (default "entropy")
//   SOLVER_OPENING          opening guess (default "SALET")
//   SOLVER_MAX_ITERATIONS   iteration cap (default 20)
//   SOLVER_WORKERS          ranking parallelism (default GOMAXPROCS; 1 in batch mode)
//   SOLVER_CACHE_SIZE       next-guess LRU entries, 0 disables, <0 unbounded (default 4096)
//   DAILY_SALT              salt for the daily solution pick

package config

import (
	"errors"
	"io/fs"
	"os"
	"runtime"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds every tunable of the solver CLI.
type Config struct {
	LogLevel      string
	AnswersFile   string
	AllowedFile   string
	Algorithm     string
	Opening       string
	MaxIterations int
	Workers       int
	CacheSize     int
	DailySalt     string
}

// Load reads .env files (if present) and then the environment.
// A missing .env is not an error; a malformed one is.
func Load(envFiles ...string) (Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, err
	}
	return FromEnv(), nil
}

// FromEnv reads the environment only.
func FromEnv() Config {
	return Config{
		LogLevel:      envStr("LOG_LEVEL", "info"),
		AnswersFile:   os.Getenv("WORDS_ANSWERS_FILE"),
		AllowedFile:   os.Getenv("WORDS_ALLOWED_FILE"),
		Algorithm:     envStr("SOLVER_ALGORITHM", "entropy"),
		Opening:       envStr("SOLVER_OPENING", "SALET"),
		MaxIterations: envInt("SOLVER_MAX_ITERATIONS", 20),
		Workers:       envInt("SOLVER_WORKERS", runtime.GOMAXPROCS(0)),
		CacheSize:     envInt("SOLVER_CACHE_SIZE", 4096),
		DailySalt:     envStr("DAILY_SALT", "wordle-solver"),
	}
}

func envStr(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// envInt falls back to def when k is unset or not an integer.
func envInt(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
