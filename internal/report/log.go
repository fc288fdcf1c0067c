package report

import (
	"github.com/rs/zerolog"

	"github.com/robalobadob/wordle/apps/go-solver/internal/scoreboard"
)

// Log emits one structured event per step.
type Log struct {
	Logger zerolog.Logger
}

func (l Log) Report(sb *scoreboard.Scoreboard) {
	r, ok := sb.Last()
	if !ok {
		return
	}
	l.Logger.Info().
		Int("n", r.N).
		Stringer("solution", r.Solution).
		Stringer("guess", r.Guess).
		Str("code", r.Code.Ternary()).
		Int("remaining", r.Remaining).
		Msg("step")
}

func (l Log) ReportFailure(sb *scoreboard.Scoreboard) {
	l.Logger.Warn().Int("iterations", sb.Len()).Msg("failed to converge")
}
