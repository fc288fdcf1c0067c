package cache

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/robalobadob/wordle/apps/go-solver/internal/word"
)

type lruStore struct {
	c *lru.Cache[Key, word.Word]
}

// NewLRU returns a Store holding at most size entries.
func NewLRU(size int) (Store, error) {
	c, err := lru.New[Key, word.Word](size)
	if err != nil {
		return nil, err
	}
	return &lruStore{c: c}, nil
}

func (s *lruStore) Get(key Key) (word.Word, bool) { return s.c.Get(key) }
func (s *lruStore) Put(key Key, w word.Word)      { s.c.Add(key, w) }
func (s *lruStore) Len() int                      { return s.c.Len() }
