package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/go-solver/internal/scoreboard"
	"github.com/robalobadob/wordle/apps/go-solver/internal/scoring"
	"github.com/robalobadob/wordle/apps/go-solver/internal/word"
)

func board() *scoreboard.Scoreboard {
	snake := word.MustParse("SNAKE")
	sb := &scoreboard.Scoreboard{}
	sb.AddRow(snake, word.MustParse("SOARE"), 42, 123)
	sb.AddRow(snake, word.MustParse("CLINT"), 142, 3)
	sb.AddRow(snake, snake, scoring.MaxCode, 1)
	return sb
}

func TestConsoleReportPrintsTail(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf, false)

	sb := &scoreboard.Scoreboard{}
	c.Report(sb)
	assert.Empty(t, buf.String())

	snake := word.MustParse("SNAKE")
	sb.AddRow(snake, word.MustParse("SOARE"), 42, 123)
	c.Report(sb)
	sb.AddRow(snake, snake, scoring.MaxCode, 1)
	c.Report(sb)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "| # | Soln. | Guess | Score | Poss. |", lines[0])
	assert.Equal(t, "| 1 | SNAKE | SOARE | 01120 |   123 |", lines[2])
	assert.Equal(t, "| 2 | SNAKE | SNAKE | 22222 |       |", lines[3])
}

func TestConsolePaintsWhenColored(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf, true)

	sb := &scoreboard.Scoreboard{}
	sb.AddRow(word.MustParse("SPEAR"), word.MustParse("SPEAK"), 240, 1)
	c.Report(sb)

	out := buf.String()
	assert.Contains(t, out, ansiGreen+"S"+ansiReset)
	assert.Contains(t, out, "K |")
	assert.NotContains(t, out, ansiYellow)
}

func TestConsoleFailure(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf, false)

	c.ReportFailure(board())
	assert.Equal(t, "Failed to converge after 3 iterations.\n", buf.String())
}

func TestLogReporter(t *testing.T) {
	var buf bytes.Buffer
	l := Log{Logger: zerolog.New(&buf)}

	l.Report(board())
	var ev map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &ev))
	assert.Equal(t, "SNAKE", ev["guess"])
	assert.Equal(t, "22222", ev["code"])
	assert.Equal(t, float64(3), ev["n"])

	buf.Reset()
	l.ReportFailure(board())
	assert.Contains(t, buf.String(), `"iterations":3`)
}

func TestNullAndMulti(t *testing.T) {
	var buf bytes.Buffer
	m := Multi{Null{}, NewConsole(&buf, false)}
	m.ReportFailure(board())
	assert.Equal(t, "Failed to converge after 3 iterations.\n", buf.String())
}
