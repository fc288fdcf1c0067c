// Package daily picks the word of the day.
package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"

	"github.com/robalobadob/wordle/apps/go-solver/internal/word"
)

// Pick returns the solution for the UTC calendar day containing date. The
// choice is HMAC-SHA256 keyed by salt over the ISO date, so it changes daily
// and only someone holding the salt can predict it. ok is false when there
// are no solutions.
func Pick(date time.Time, salt string, solutions []word.Word) (w word.Word, ok bool) {
	if len(solutions) == 0 {
		return word.Word{}, false
	}
	mac := hmac.New(sha256.New, []byte(salt))
	mac.Write(date.UTC().AppendFormat(nil, time.DateOnly))
	v := binary.BigEndian.Uint64(mac.Sum(nil))
	return solutions[v%uint64(len(solutions))], true
}
