package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/go-solver/internal/word"
)

func TestScore(t *testing.T) {
	cases := []struct {
		guess, solution, want string
	}{
		{"SPEAK", "SPEAR", "22220"},
		{"STRIP", "SPEAR", "20101"},
		{"SOLID", "SPEAR", "20000"},
		{"MAGIC", "SPEAR", "01000"},
		{"VAPID", "SPEAR", "01100"},
		{"STERN", "SPEAR", "20210"},
		{"SPEAR", "SPEAR", "22222"},
		{"RAISE", "PERKY", "10001"},
		{"HERON", "PERKY", "02200"},
		{"PULLY", "PERKY", "20002"},
		{"PERRY", "PERKY", "22202"},
		{"CHART", "PEACH", "11200"},
		{"SPARE", "BASIC", "10100"},
		{"CLOUT", "BASIC", "10000"},
		{"FANGS", "BASIC", "02001"},
		{"DINKY", "BASIC", "01000"},
		{"MAGIC", "BASIC", "02022"},
		{"APPLE", "CRIMP", "01000"},
		{"SALAD", "AGATE", "01010"},
		{"ABACA", "AGATE", "20200"},
		{"BANAL", "AGATE", "01010"},
		{"MUMMY", "GAMMA", "00220"},
		{"MIMIC", "GAMMA", "10200"},
		{"MAGIC", "GAMMA", "12100"},
		{"HAIRY", "GAMMA", "02000"},
		{"FUNDS", "GAMMA", "00000"},
		{"ERROR", "ARGUE", "12000"},
		{"TEARS", "ARGUE", "01110"},
		{"GRAPE", "ARGUE", "12102"},
		{"AGREE", "ARGUE", "21102"},
	}
	for _, tc := range cases {
		t.Run(tc.guess+"/"+tc.solution, func(t *testing.T) {
			want, err := ParseTernary(tc.want)
			require.NoError(t, err)

			got := Score(word.MustParse(tc.guess), word.MustParse(tc.solution))
			assert.Equal(t, tc.want, got.Ternary())
			assert.Equal(t, want, got)
		})
	}
}

func TestScoreSelfIsMax(t *testing.T) {
	for _, s := range []string{"SPEAR", "GAMMA", "MUMMY", "AAAAA", "ZZZZZ", "ARGUE"} {
		w := word.MustParse(s)
		assert.Equal(t, MaxCode, Score(w, w), s)
		assert.True(t, Score(w, w).IsSolved())
	}
	assert.Equal(t, Code(242), MaxCode)
}

func TestScoreIsNotSymmetric(t *testing.T) {
	errorW, argue := word.MustParse("ERROR"), word.MustParse("ARGUE")

	forward := Score(errorW, argue)
	reverse := Score(argue, errorW)

	assert.Equal(t, "12000", forward.Ternary())
	assert.Equal(t, "02001", reverse.Ternary())
	assert.NotEqual(t, forward, reverse)
}

func TestTernaryRoundTrip(t *testing.T) {
	for c := 0; c < NumCodes; c++ {
		code := Code(c)
		s := code.Ternary()
		require.Len(t, s, word.Size)

		back, err := ParseTernary(s)
		require.NoError(t, err)
		require.Equal(t, code, back)
	}
}

func TestParseTernaryRejectsBadInput(t *testing.T) {
	for _, s := range []string{"", "2222", "222222", "22232", "abcde"} {
		_, err := ParseTernary(s)
		assert.ErrorIs(t, err, ErrMalformedCode, s)
	}
}

func TestMarks(t *testing.T) {
	code, err := ParseTernary("21002")
	require.NoError(t, err)
	assert.Equal(t, [word.Size]Mark{Green, Amber, Grey, Grey, Green}, code.Marks())
}
