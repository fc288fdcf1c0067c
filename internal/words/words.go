// internal/words/words.go
//
// Dictionary loading for the solver.
//
// Word Lists:
//   - "answers": possible solutions.
//   - "allowed": every guessable word. Answers are always merged in, so the
//     allowed list is a superset of the answers list.
//
// Load behaviour:
//   1. If both AnswersFile and AllowedFile are set, read each.
//   2. If only one of them is set, that file serves as both lists.
//   3. Otherwise fall back to the lists embedded in the assets package.
//
// Files hold one word per line (blank lines and '#' comments ignored), or a
// JSON array of strings when the file name ends in ".json". Any entry that is
// not exactly five letters is an error rather than being skipped.
//
// Both lists are deduplicated and sorted so that iteration order, and with it
// every tie-break in the solver, is deterministic.

package words

import (
	"bufio"
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math/big"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/robalobadob/wordle/apps/go-solver/assets"
	"github.com/robalobadob/wordle/apps/go-solver/internal/word"
)

// ErrEmptyList is returned when the answers list ends up empty.
var ErrEmptyList = errors.New("words: answers list is empty")

// Sources names the list files to load. Empty fields select the embedded defaults.
type Sources struct {
	AnswersFile string
	AllowedFile string
}

// Dictionary is the immutable word set a solve runs against.
type Dictionary struct {
	All       []word.Word // every guessable word, sorted
	Solutions []word.Word // possible solutions, sorted, subset of All

	solutionSet map[word.Word]struct{}
	allSet      map[word.Word]struct{}
}

// New builds a Dictionary from raw lists, merging solutions into all.
func New(all, solutions []word.Word) (*Dictionary, error) {
	d := &Dictionary{
		Solutions: dedupe(solutions),
	}
	if len(d.Solutions) == 0 {
		return nil, ErrEmptyList
	}
	d.All = dedupe(append(slices.Clone(all), d.Solutions...))
	d.solutionSet = toSet(d.Solutions)
	d.allSet = toSet(d.All)
	return d, nil
}

// Load reads the configured lists.
func Load(src Sources) (*Dictionary, error) {
	var (
		ansList, allowList []string
		err                error
	)
	switch {
	case src.AnswersFile != "" && src.AllowedFile != "":
		if ansList, err = readFile(src.AnswersFile); err != nil {
			return nil, err
		}
		if allowList, err = readFile(src.AllowedFile); err != nil {
			return nil, err
		}
	case src.AnswersFile != "" || src.AllowedFile != "":
		path := src.AnswersFile
		if path == "" {
			path = src.AllowedFile
		}
		if ansList, err = readFile(path); err != nil {
			return nil, err
		}
		allowList = ansList
	default:
		if ansList, err = readFS(assets.FS, assets.AnswersFile); err != nil {
			return nil, err
		}
		if allowList, err = readFS(assets.FS, assets.AllowedFile); err != nil {
			return nil, err
		}
	}

	answers, err := word.ParseAll(ansList)
	if err != nil {
		return nil, fmt.Errorf("answers: %w", err)
	}
	allowed, err := word.ParseAll(allowList)
	if err != nil {
		return nil, fmt.Errorf("allowed: %w", err)
	}
	return New(allowed, answers)
}

// IsSolution reports whether w is a possible solution.
func (d *Dictionary) IsSolution(w word.Word) bool {
	_, ok := d.solutionSet[w]
	return ok
}

// IsAllowed reports whether w is a guessable word.
func (d *Dictionary) IsAllowed(w word.Word) bool {
	_, ok := d.allSet[w]
	return ok
}

// RandomSolution returns a cryptographically random possible solution.
func (d *Dictionary) RandomSolution() word.Word {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(d.Solutions))))
	if err != nil {
		return d.Solutions[0]
	}
	return d.Solutions[n.Int64()]
}

// Stats returns the list sizes: (solutions, all).
func (d *Dictionary) Stats() (solutions int, all int) {
	return len(d.Solutions), len(d.All)
}

func readFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return readList(f, path)
}

func readFS(fsys fs.FS, name string) ([]string, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return readList(f, name)
}

// readList parses r as a JSON array or as one word per line, depending on name.
func readList(r io.Reader, name string) ([]string, error) {
	if strings.EqualFold(filepath.Ext(name), ".json") {
		var out []string
		if err := json.NewDecoder(r).Decode(&out); err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		return out, nil
	}

	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, s)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return out, nil
}

func dedupe(list []word.Word) []word.Word {
	out := slices.Clone(list)
	slices.SortFunc(out, word.Compare)
	return slices.Compact(out)
}

func toSet(list []word.Word) map[word.Word]struct{} {
	m := make(map[word.Word]struct{}, len(list))
	for _, w := range list {
		m[w] = struct{}{}
	}
	return m
}
