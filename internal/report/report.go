// internal/report/report.go
//
// Reporting hooks invoked by the solver.
//
//   - Report is called after every step with the current scoreboard.
//   - ReportFailure is called once when the iteration cap is hit.
//
// Implementations:
//   - Null:    discards everything (batch runs, tests).
//   - Console: markdown-style table, one row per step, optional ANSI colour.
//   - Log:     one structured zerolog event per step.

package report

import (
	"github.com/robalobadob/wordle/apps/go-solver/internal/scoreboard"
)

// Reporter receives scoreboard snapshots from the solver.
type Reporter interface {
	Report(sb *scoreboard.Scoreboard)
	ReportFailure(sb *scoreboard.Scoreboard)
}

// Null is a Reporter that does nothing.
type Null struct{}

func (Null) Report(*scoreboard.Scoreboard)        {}
func (Null) ReportFailure(*scoreboard.Scoreboard) {}

// Multi fans every call out to each reporter in order.
type Multi []Reporter

func (m Multi) Report(sb *scoreboard.Scoreboard) {
	for _, r := range m {
		r.Report(sb)
	}
}

func (m Multi) ReportFailure(sb *scoreboard.Scoreboard) {
	for _, r := range m {
		r.ReportFailure(sb)
	}
}
