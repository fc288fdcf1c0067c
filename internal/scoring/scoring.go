// internal/scoring/scoring.go
//
// Wordle feedback scoring.
//
// A guess scored against a solution yields one Mark per position
// (Grey/Amber/Green). The five marks are packed into a single Code using
// base-3 positional weights [81, 27, 9, 3, 1], leftmost letter most
// significant, so every outcome is an integer in [0, MaxCode].
//
// Score uses the classic two-pass algorithm:
//   Pass 1: mark exact matches Green and count the solution letters that were
//           not matched.
//   Pass 2: for each non-green position, left to right, mark Amber if that
//           letter still has an unmatched occurrence (and consume it),
//           otherwise Grey.

package scoring

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/robalobadob/wordle/apps/go-solver/internal/word"
)

// Mark is the per-letter result of a guess.
type Mark uint8

const (
	Grey  Mark = 0 // letter not in the solution (or all occurrences used)
	Amber Mark = 1 // letter in the solution at another position
	Green Mark = 2 // letter in the correct position
)

// Code is the ternary-packed feedback for a whole word.
type Code uint8

const (
	// NumCodes is the number of distinct feedback codes (3^5).
	NumCodes = 243
	// MaxCode is the all-green code: an exact match.
	MaxCode Code = NumCodes - 1
)

// ErrMalformedCode is returned by ParseTernary for bad input.
var ErrMalformedCode = errors.New("malformed feedback code")

var weights = [word.Size]Code{81, 27, 9, 3, 1}

// Score returns the feedback code for guess played against solution.
func Score(guess, solution word.Word) Code {
	var (
		code   Code
		green  [word.Size]bool
		counts [26]uint8
	)

	for i := 0; i < word.Size; i++ {
		if guess[i] == solution[i] {
			green[i] = true
			code += Code(Green) * weights[i]
		} else {
			counts[solution[i]]++
		}
	}

	for i := 0; i < word.Size; i++ {
		if green[i] {
			continue
		}
		if c := guess[i]; counts[c] > 0 {
			counts[c]--
			code += Code(Amber) * weights[i]
		}
	}
	return code
}

// Marks unpacks the code into its per-position marks.
func (c Code) Marks() [word.Size]Mark {
	var out [word.Size]Mark
	for i := word.Size - 1; i >= 0; i-- {
		out[i] = Mark(c % 3)
		c /= 3
	}
	return out
}

// Ternary renders the code as a zero-padded 5-digit base-3 string, e.g. "22220".
func (c Code) Ternary() string {
	s := strconv.FormatUint(uint64(c), 3)
	if pad := word.Size - len(s); pad > 0 {
		s = strings.Repeat("0", pad) + s
	}
	return s
}

// String implements fmt.Stringer.
func (c Code) String() string { return c.Ternary() }

// IsSolved reports whether the code is the all-green code.
func (c Code) IsSolved() bool { return c == MaxCode }

// ParseTernary is the inverse of Code.Ternary.
func ParseTernary(s string) (Code, error) {
	if len(s) != word.Size {
		return 0, fmt.Errorf("%w: %q has %d digits, want %d", ErrMalformedCode, s, len(s), word.Size)
	}
	v, err := strconv.ParseUint(s, 3, 8)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrMalformedCode, s, err)
	}
	return Code(v), nil
}
