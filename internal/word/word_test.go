package word

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCaseFolds(t *testing.T) {
	lower, err := Parse("raise")
	require.NoError(t, err)
	upper, err := Parse("RAISE")
	require.NoError(t, err)

	assert.Equal(t, upper, lower)
	assert.Equal(t, Word{17, 0, 8, 18, 4}, lower)
	assert.Equal(t, "RAISE", lower.String())
}

func TestParseRejectsMalformed(t *testing.T) {
	for _, in := range []string{"", "four", "sixsix", "ab1de", "héllo", "a ple"} {
		_, err := Parse(in)
		if !errors.Is(err, ErrMalformedWord) {
			t.Fatalf("Parse(%q): want ErrMalformedWord, got %v", in, err)
		}
	}
}

func TestMustParsePanics(t *testing.T) {
	assert.Panics(t, func() { MustParse("toolong") })
	assert.NotPanics(t, func() { MustParse("space") })
}

func TestFormatRoundTrip(t *testing.T) {
	w := MustParse("space")
	assert.Equal(t, "Word is: SPACE", fmt.Sprintf("Word is: %s", w))
	assert.Equal(t, w, MustParse(w.String()))
}

func TestWordIsMapKey(t *testing.T) {
	seen := map[Word]int{}
	seen[MustParse("crane")]++
	seen[MustParse("CRANE")]++
	assert.Len(t, seen, 1)
	assert.Equal(t, 2, seen[MustParse("crane")])
}

func TestParseAllStopsAtFirstError(t *testing.T) {
	ws, err := ParseAll([]string{"salet", "tower"})
	require.NoError(t, err)
	assert.Len(t, ws, 2)

	_, err = ParseAll([]string{"salet", "tow3r"})
	assert.ErrorIs(t, err, ErrMalformedWord)
}

func TestCompare(t *testing.T) {
	assert.Equal(t, -1, Compare(MustParse("aback"), MustParse("abase")))
	assert.Equal(t, 1, Compare(MustParse("zonal"), MustParse("abase")))
	assert.Equal(t, 0, Compare(MustParse("tower"), MustParse("TOWER")))
}
