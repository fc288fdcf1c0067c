// internal/word/word.go
//
// Fixed-width representation of a five-letter word.
//
// A Word is an array of letter codes (A=0 … Z=25). Being an array it is a
// comparable value type: it can be copied freely, compared with ==, and used
// as a map key. Words are only built through Parse/MustParse, which reject
// anything that is not exactly five ASCII letters.

package word

import (
	"errors"
	"fmt"
)

// Size is the number of letters in every word.
const Size = 5

// ErrMalformedWord is returned when input is not exactly Size letters a–z/A–Z.
var ErrMalformedWord = errors.New("malformed word")

// Word holds one letter code (0..25) per position, leftmost first.
type Word [Size]uint8

// Parse case-folds s and converts it to a Word.
func Parse(s string) (Word, error) {
	var w Word
	if len(s) != Size {
		return w, fmt.Errorf("%w: %q has %d bytes, want %d", ErrMalformedWord, s, len(s), Size)
	}
	for i := 0; i < Size; i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z':
			w[i] = c - 'a'
		case c >= 'A' && c <= 'Z':
			w[i] = c - 'A'
		default:
			return Word{}, fmt.Errorf("%w: %q has non-letter %q at %d", ErrMalformedWord, s, c, i)
		}
	}
	return w, nil
}

// MustParse is like Parse but panics on malformed input.
func MustParse(s string) Word {
	w, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return w
}

// ParseAll converts every string, stopping at the first malformed one.
func ParseAll(list []string) ([]Word, error) {
	out := make([]Word, 0, len(list))
	for _, s := range list {
		w, err := Parse(s)
		if err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	return out, nil
}

// String renders the word in upper case.
func (w Word) String() string {
	var b [Size]byte
	for i, c := range w {
		b[i] = c + 'A'
	}
	return string(b[:])
}

// Compare orders words alphabetically.
func Compare(a, b Word) int {
	for i := 0; i < Size; i++ {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}
