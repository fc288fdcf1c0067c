package cache

import (
	"sync"

	"github.com/robalobadob/wordle/apps/go-solver/internal/word"
)

// memory is an unbounded map-based Store.
type memory struct {
	mu      sync.RWMutex
	guesses map[Key]word.Word
}

// NewMemory constructs an unbounded in-memory Store.
func NewMemory() Store {
	return &memory{guesses: make(map[Key]word.Word)}
}

func (m *memory) Get(key Key) (word.Word, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	w, ok := m.guesses[key]
	return w, ok
}

func (m *memory) Put(key Key, w word.Word) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.guesses[key] = w
}

func (m *memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.guesses)
}
