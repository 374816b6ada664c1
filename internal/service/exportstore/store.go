package exportstore

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Entry is one generated workbook waiting to be downloaded.
type Entry struct {
	FileName  string
	Data      []byte
	ExpiresAt time.Time
}

// Store hands out one-shot download tokens for generated files so the
// download itself can be a plain GET the browser follows.
type Store struct {
	mu    sync.Mutex
	items map[string]Entry
}

func New() *Store {
	return &Store{items: make(map[string]Entry)}
}

func (s *Store) Put(fileName string, data []byte, ttl time.Duration) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.purgeExpiredLocked(time.Now())

	token := uuid.NewString()
	s.items[token] = Entry{
		FileName:  fileName,
		Data:      data,
		ExpiresAt: time.Now().Add(ttl),
	}

	return token
}

// Take removes the entry on read; a token downloads once.
func (s *Store) Take(token string) (Entry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.purgeExpiredLocked(time.Now())

	entry, ok := s.items[token]
	if !ok {
		return Entry{}, false
	}

	delete(s.items, token)

	if time.Now().After(entry.ExpiresAt) {
		return Entry{}, false
	}

	return entry, true
}

func (s *Store) purgeExpiredLocked(now time.Time) {
	for token, entry := range s.items {
		if now.After(entry.ExpiresAt) {
			delete(s.items, token)
		}
	}
}
