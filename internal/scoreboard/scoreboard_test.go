package scoreboard

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/robalobadob/wordle/apps/go-solver/internal/scoring"
	"github.com/robalobadob/wordle/apps/go-solver/internal/word"
)

func TestEmptyIsNotSolved(t *testing.T) {
	var sb Scoreboard
	assert.False(t, sb.IsSolved())
	assert.Zero(t, sb.Len())
	_, ok := sb.Last()
	assert.False(t, ok)
}

func TestAddRowNumbersSequentially(t *testing.T) {
	snake := word.MustParse("SNAKE")
	var sb Scoreboard
	sb.AddRow(snake, word.MustParse("SOARE"), 42, 123)
	sb.AddRow(snake, word.MustParse("CLINT"), 142, 3)
	sb.AddRow(snake, snake, scoring.MaxCode, 1)

	want := []Row{
		{N: 1, Solution: snake, Guess: word.MustParse("SOARE"), Code: 42, Remaining: 123},
		{N: 2, Solution: snake, Guess: word.MustParse("CLINT"), Code: 142, Remaining: 3},
		{N: 3, Solution: snake, Guess: snake, Code: scoring.MaxCode, Remaining: 1},
	}
	if diff := cmp.Diff(want, sb.Rows()); diff != "" {
		t.Fatalf("rows mismatch (-want +got):\n%s", diff)
	}
	assert.True(t, sb.IsSolved())
}

func TestSolvedTracksLastRowOnly(t *testing.T) {
	snake := word.MustParse("SNAKE")
	var sb Scoreboard
	sb.AddRow(snake, snake, scoring.MaxCode, 1)
	assert.True(t, sb.IsSolved())

	sb.AddRow(snake, word.MustParse("CLINT"), 0, 1)
	assert.False(t, sb.IsSolved())
}

func TestRowsReturnsCopy(t *testing.T) {
	var sb Scoreboard
	sb.AddRow(word.MustParse("SNAKE"), word.MustParse("CLINT"), 0, 5)

	rows := sb.Rows()
	rows[0].Remaining = 99

	last, _ := sb.Last()
	assert.Equal(t, 5, last.Remaining)
}
