package session

import (
	"sync"

	"cfjournal/internal/model"
)

// Store holds at most one in-progress trade-entry session per chat.
type Store interface {
	Get(chatID int64) (model.Session, bool)
	Put(s model.Session)
	Delete(chatID int64)
	Count() int
}

// MemoryStore is a mutex-guarded map keyed by chat id. Handlers run on
// separate goroutines per update, so all access goes through the lock.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[int64]model.Session
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[int64]model.Session)}
}

func (s *MemoryStore) Get(chatID int64) (model.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[chatID]
	return sess, ok
}

// Put stores the session, replacing any previous one for the same chat.
func (s *MemoryStore) Put(sess model.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.ChatID] = sess
}

func (s *MemoryStore) Delete(chatID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, chatID)
}

func (s *MemoryStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
