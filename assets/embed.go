// assets/embed.go
//
// Embedded default word lists, used when no list files are configured.
//   - answers.txt: possible solutions.
//   - allowed.txt: extra guessable words that are never solutions.

package assets

import "embed"

// Names of the embedded lists inside FS.
const (
	AnswersFile = "answers.txt"
	AllowedFile = "allowed.txt"
)

//go:embed allowed.txt answers.txt
var FS embed.FS
