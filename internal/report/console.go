package report

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"

	"github.com/robalobadob/wordle/apps/go-solver/internal/scoreboard"
	"github.com/robalobadob/wordle/apps/go-solver/internal/scoring"
	"github.com/robalobadob/wordle/apps/go-solver/internal/word"
)

const (
	header = "| # | Soln. | Guess | Score | Poss. |\n|---|-------|-------|-------|-------|"

	ansiYellow = "\x1b[33m"
	ansiGreen  = "\x1b[32m"
	ansiReset  = "\x1b[0m"
)

// Console prints the scoreboard as a table, one line per step.
type Console struct {
	w     io.Writer
	color bool
}

// NewConsole writes to w, colouring guesses and codes when color is set.
func NewConsole(w io.Writer, color bool) *Console {
	return &Console{w: w, color: color}
}

// NewStdout returns a Console on stdout. Colour is enabled when stdout is a
// terminal and NO_COLOR is unset.
func NewStdout() *Console {
	fd := os.Stdout.Fd()
	tty := isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	_, noColor := os.LookupEnv("NO_COLOR")
	return NewConsole(colorable.NewColorableStdout(), tty && !noColor)
}

// Report prints the latest row, preceded by the header on the first step.
func (c *Console) Report(sb *scoreboard.Scoreboard) {
	row, ok := sb.Last()
	if !ok {
		return
	}
	if sb.Len() == 1 {
		fmt.Fprintln(c.w, header)
	}
	fmt.Fprintln(c.w, c.formatRow(row))
}

// ReportFailure prints a one-line failure summary.
func (c *Console) ReportFailure(sb *scoreboard.Scoreboard) {
	fmt.Fprintf(c.w, "Failed to converge after %d iterations.\n", sb.Len())
}

func (c *Console) formatRow(r scoreboard.Row) string {
	remaining := " "
	if r.Code != scoring.MaxCode {
		remaining = fmt.Sprint(r.Remaining)
	}
	ternary := r.Code.Ternary()
	marks := r.Code.Marks()
	return fmt.Sprintf("| %d | %s | %s | %s | %5s |",
		r.N, r.Solution, c.paint(r.Guess.String(), marks), c.paint(ternary, marks), remaining)
}

// paint colours each character of s by the mark at the same position.
func (c *Console) paint(s string, marks [word.Size]scoring.Mark) string {
	if !c.color {
		return s
	}
	var b strings.Builder
	for i := 0; i < len(s) && i < word.Size; i++ {
		switch marks[i] {
		case scoring.Amber:
			b.WriteString(ansiYellow + s[i:i+1] + ansiReset)
		case scoring.Green:
			b.WriteString(ansiGreen + s[i:i+1] + ansiReset)
		default:
			b.WriteByte(s[i])
		}
	}
	return b.String()
}
