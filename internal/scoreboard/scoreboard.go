// internal/scoreboard/scoreboard.go
//
// Append-only log of the steps of one solve.

package scoreboard

import (
	"github.com/robalobadob/wordle/apps/go-solver/internal/scoring"
	"github.com/robalobadob/wordle/apps/go-solver/internal/word"
)

// Row records one played guess.
type Row struct {
	N         int          // 1-based sequence number
	Solution  word.Word    // true solution, carried for reporting
	Guess     word.Word    // word played
	Code      scoring.Code // observed feedback
	Remaining int          // candidates left after filtering
}

// Scoreboard is an ordered sequence of rows. The zero value is empty and ready to use.
type Scoreboard struct {
	rows []Row
}

// AddRow appends a row, numbering it automatically, and returns it.
func (s *Scoreboard) AddRow(solution, guess word.Word, code scoring.Code, remaining int) Row {
	r := Row{
		N:         len(s.rows) + 1,
		Solution:  solution,
		Guess:     guess,
		Code:      code,
		Remaining: remaining,
	}
	s.rows = append(s.rows, r)
	return r
}

// Len returns the number of rows.
func (s *Scoreboard) Len() int { return len(s.rows) }

// Rows returns a copy of the rows in play order.
func (s *Scoreboard) Rows() []Row {
	out := make([]Row, len(s.rows))
	copy(out, s.rows)
	return out
}

// Last returns the most recent row, if any.
func (s *Scoreboard) Last() (Row, bool) {
	if len(s.rows) == 0 {
		return Row{}, false
	}
	return s.rows[len(s.rows)-1], true
}

// IsSolved reports whether the last row is an exact match. An empty board is never solved.
func (s *Scoreboard) IsSolved() bool {
	r, ok := s.Last()
	return ok && r.Code == scoring.MaxCode
}
