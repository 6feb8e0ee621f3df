package store

import (
	"context"
	"sync"

	"github.com/Rrens/weather-advisor/internal/domain"
	"github.com/google/uuid"
)

// MemoryStore is a concurrency-safe in-memory implementation of
// domain.SessionStore. State lives for the process lifetime only. Individual
// operations are serialized by the mutex; concurrent request flows against
// the same session id are last-write-wins.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*domain.Session
}

// NewMemoryStore creates an empty session store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]*domain.Session),
	}
}

// Create initializes a session, generating an id when none is supplied. An
// existing session under the same id is reset.
func (s *MemoryStore) Create(_ context.Context, id, language string) *domain.Session {
	if id == "" {
		id = uuid.New().String()
	}

	session := &domain.Session{
		ID:       id,
		History:  []domain.ChatMessage{},
		Language: language,
	}

	s.mu.Lock()
	s.sessions[id] = session
	s.mu.Unlock()

	return copySession(session)
}

// Get returns a copy of the session state.
func (s *MemoryStore) Get(_ context.Context, id string) (*domain.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[id]
	if !ok {
		return nil, &domain.SessionNotFoundError{ID: id}
	}
	return copySession(session), nil
}

// RecordExchange appends the user and assistant turns as a pair.
func (s *MemoryStore) RecordExchange(_ context.Context, id, userText, assistantText string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok {
		return &domain.SessionNotFoundError{ID: id}
	}

	session.History = append(session.History,
		domain.ChatMessage{Role: domain.RoleUser, Content: userText},
		domain.ChatMessage{Role: domain.RoleAssistant, Content: assistantText},
	)
	return nil
}

// UpdateSnapshot replaces the session snapshot wholesale.
func (s *MemoryStore) UpdateSnapshot(_ context.Context, id string, snapshot *domain.WeatherSnapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok {
		return &domain.SessionNotFoundError{ID: id}
	}

	session.Snapshot = snapshot
	return nil
}

// ClearChat resets the transcript, leaving the snapshot untouched.
func (s *MemoryStore) ClearChat(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok {
		return &domain.SessionNotFoundError{ID: id}
	}

	session.History = []domain.ChatMessage{}
	return nil
}

// copySession detaches the returned value from internal state so callers can
// read it without holding the lock. Snapshots are immutable and shared.
func copySession(session *domain.Session) *domain.Session {
	out := &domain.Session{
		ID:       session.ID,
		Snapshot: session.Snapshot,
		History:  make([]domain.ChatMessage, len(session.History)),
		Language: session.Language,
	}
	copy(out.History, session.History)
	return out
}
