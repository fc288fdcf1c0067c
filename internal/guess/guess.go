// internal/guess/guess.go
//
// Guess ranking.
//
// An Algorithm turns (candidate word, number of remaining solutions,
// histogram of feedback codes) into a Guess carrying a comparable Quality.
// Better guesses compare lower: Compare(a, b) < 0 means a should be played
// in preference to b. Select picks the winner over a whole dictionary.
//
// Both algorithms share the same tie-break: when qualities are equal, a word
// that is itself still a possible solution beats one that is not.

package guess

import (
	"errors"
	"fmt"
	"strings"

	"github.com/robalobadob/wordle/apps/go-solver/internal/scoring"
	"github.com/robalobadob/wordle/apps/go-solver/internal/word"
)

// ErrUnknownAlgorithm is returned by ByName.
var ErrUnknownAlgorithm = errors.New("unknown algorithm")

// Histogram counts, per feedback code, how many remaining solutions would
// produce that code against a fixed guess.
type Histogram [scoring.NumCodes]uint32

// Reset zeroes every bucket so the buffer can be reused for the next word.
func (h *Histogram) Reset() { *h = Histogram{} }

// Build fills h from scratch with the codes guess produces against solns.
func (h *Histogram) Build(guess word.Word, solns []word.Word) {
	h.Reset()
	for _, s := range solns {
		h[scoring.Score(guess, s)]++
	}
}

// IsCandidate reports whether the guess that produced h is itself one of the
// remaining solutions (it scores MaxCode against exactly one of them).
func (h *Histogram) IsCandidate() bool { return h[scoring.MaxCode] == 1 }

// Guess is a ranked candidate guess.
type Guess struct {
	Word word.Word
	// Quality is algorithm-specific; lower is better.
	Quality float64
	// IsCandidate is true when Word is still a possible solution.
	IsCandidate bool
}

// Algorithm ranks candidate guesses.
type Algorithm interface {
	// Name is the selector used on the command line.
	Name() string
	// MakeGuess evaluates w given its histogram over numSolns remaining solutions.
	MakeGuess(w word.Word, numSolns int, h *Histogram) Guess
	// Compare is a three-way comparison; negative means a is the better guess.
	Compare(a, b Guess) int
}

// ByName returns the algorithm registered under name (case-insensitive).
func ByName(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "entropy":
		return Entropy{}, nil
	case "minimax":
		return Minimax{}, nil
	}
	return nil, fmt.Errorf("%w: %q (want entropy or minimax)", ErrUnknownAlgorithm, name)
}

// Names lists the selectable algorithm names.
func Names() []string { return []string{"entropy", "minimax"} }

// Select returns the index of the guess to play, or -1 if gs is empty.
//
// A tolerant comparison is not transitive (a ≈ b and b ≈ c does not give
// a ≈ c), so pairwise reduction would depend on evaluation order. Instead the
// tie class is anchored on the single lowest raw Quality: every guess that
// alg.Compare ties with that anchor is a contender, candidates beat
// non-candidates, and the lowest index breaks what is left.
func Select(alg Algorithm, gs []Guess) int {
	if len(gs) == 0 {
		return -1
	}
	anchor := 0
	for i, g := range gs {
		if g.Quality < gs[anchor].Quality {
			anchor = i
		}
	}

	ref := Guess{Quality: gs[anchor].Quality}
	winner := -1
	for i, g := range gs {
		if alg.Compare(Guess{Quality: g.Quality}, ref) != 0 {
			continue
		}
		if winner < 0 || (g.IsCandidate && !gs[winner].IsCandidate) {
			winner = i
		}
	}
	return winner
}

func compareCandidate(a, b Guess) int {
	switch {
	case a.IsCandidate == b.IsCandidate:
		return 0
	case a.IsCandidate:
		return -1
	default:
		return 1
	}
}
