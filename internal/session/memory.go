package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

type memoryEntry struct {
	userID    uint
	expiresAt time.Time
}

// MemoryStore is a process-local Store for tests and development.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string]memoryEntry
	now      func() time.Time
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]memoryEntry),
		now:      time.Now,
	}
}

// Create starts a session for the user.
func (s *MemoryStore) Create(ctx context.Context, userID uint) (string, error) {
	sid := uuid.New().String()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sid] = memoryEntry{userID: userID, expiresAt: s.now().Add(TTL)}
	return sid, nil
}

// Get resolves a session id, dropping it when expired.
func (s *MemoryStore) Get(ctx context.Context, sessionID string) (uint, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.sessions[sessionID]
	if !ok {
		return 0, ErrNoSession
	}
	if s.now().After(entry.expiresAt) {
		delete(s.sessions, sessionID)
		return 0, ErrNoSession
	}
	return entry.userID, nil
}

// Destroy ends a session.
func (s *MemoryStore) Destroy(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
	return nil
}
