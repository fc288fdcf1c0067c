package guess

import (
	"math"

	"github.com/robalobadob/wordle/apps/go-solver/internal/word"
)

// Epsilon is the absolute tolerance under which two entropies are tied.
// Summation order changes the last bits of the result, so exact float
// equality would make ties nondeterministic.
const Epsilon = 1e-9

// Entropy prefers the guess whose feedback distribution carries the most
// information: Quality is the negated Shannon entropy (in bits).
type Entropy struct{}

func (Entropy) Name() string { return "entropy" }

func (Entropy) MakeGuess(w word.Word, numSolns int, h *Histogram) Guess {
	var sum float64
	if numSolns > 0 {
		n := float64(numSolns)
		for _, count := range h {
			if count == 0 {
				continue
			}
			p := float64(count) / n
			sum += p * math.Log2(p)
		}
	}
	return Guess{Word: w, Quality: sum, IsCandidate: h.IsCandidate()}
}

func (Entropy) Compare(a, b Guess) int {
	if math.Abs(a.Quality-b.Quality) > Epsilon {
		if a.Quality < b.Quality {
			return -1
		}
		return 1
	}
	return compareCandidate(a, b)
}
