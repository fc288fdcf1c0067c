package guess

import "github.com/robalobadob/wordle/apps/go-solver/internal/word"

// Minimax prefers the guess whose worst case leaves the fewest solutions:
// Quality is the size of the largest histogram bucket.
type Minimax struct{}

func (Minimax) Name() string { return "minimax" }

func (Minimax) MakeGuess(w word.Word, _ int, h *Histogram) Guess {
	var largest uint32
	for _, count := range h {
		if count > largest {
			largest = count
		}
	}
	return Guess{Word: w, Quality: float64(largest), IsCandidate: h.IsCandidate()}
}

func (Minimax) Compare(a, b Guess) int {
	switch {
	case a.Quality < b.Quality:
		return -1
	case a.Quality > b.Quality:
		return 1
	}
	return compareCandidate(a, b)
}
