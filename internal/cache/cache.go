// internal/cache/cache.go
//
// Memoisation of next-guess decisions.
//
// The guess chosen after an observation depends only on the dictionary, the
// algorithm, and the set of remaining solutions. Many solves share those
// inputs (every solve that opens with the same word and sees the same code),
// so the expensive ranking pass can be skipped on a hit.
//
// Keys are 128-bit xxh3 digests of (dictionary fingerprint, algorithm name,
// remaining words in order).
//
// Implementations:
//   - NewLRU:    bounded, evicts least recently used (hashicorp/golang-lru).
//   - NewMemory: unbounded map guarded by an RWMutex.
//   - Nop:       never stores anything.

package cache

import (
	"encoding/binary"

	"github.com/zeebo/xxh3"

	"github.com/robalobadob/wordle/apps/go-solver/internal/word"
)

// Key identifies one ranking problem.
type Key = xxh3.Uint128

// Store holds next-guess decisions. Implementations are safe for concurrent use.
type Store interface {
	// Get returns the cached guess for key.
	Get(key Key) (word.Word, bool)
	// Put records the guess chosen for key.
	Put(key Key, w word.Word)
	// Len reports the number of entries held.
	Len() int
}

// Fingerprint digests a word list, typically the full guess dictionary.
func Fingerprint(list []word.Word) uint64 {
	return xxh3.Hash(flatten(nil, list))
}

// KeyFor builds the cache key for ranking remaining under algorithm alg
// against the dictionary identified by dict.
func KeyFor(dict uint64, alg string, remaining []word.Word) Key {
	buf := make([]byte, 0, 8+len(alg)+1+len(remaining)*word.Size)
	buf = binary.LittleEndian.AppendUint64(buf, dict)
	buf = append(buf, alg...)
	buf = append(buf, 0)
	return xxh3.Hash128(flatten(buf, remaining))
}

func flatten(buf []byte, list []word.Word) []byte {
	for _, w := range list {
		buf = append(buf, w[:]...)
	}
	return buf
}

// Nop is a Store that never remembers anything.
type Nop struct{}

func (Nop) Get(Key) (word.Word, bool) { return word.Word{}, false }
func (Nop) Put(Key, word.Word)        {}
func (Nop) Len() int                  { return 0 }
