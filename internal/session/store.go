package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"sunstate/server/internal/wizard"
)

var ErrNotFound = errors.New("session not found")

// Store holds wizard sessions for the duration of an intake flow. Sessions
// are ephemeral: they expire after the configured idle lifetime and are never
// persisted beyond it.
type Store interface {
	Create(ctx context.Context, w *wizard.Wizard) error
	Get(ctx context.Context, id string) (*wizard.Wizard, error)
	Save(ctx context.Context, w *wizard.Wizard) error
	Delete(ctx context.Context, id string) error
	Close() error
}

type memoryEntry struct {
	wizard    *wizard.Wizard
	expiresAt time.Time
}

// MemoryStore is the default in-process session store. A janitor goroutine
// evicts expired sessions.
type MemoryStore struct {
	entries map[string]*memoryEntry
	ttl     time.Duration
	mu      sync.RWMutex
	done    chan struct{}
	closed  bool
	logger  *logrus.Logger
}

// NewMemoryStore creates an in-memory store with the given session lifetime
// and starts its janitor.
func NewMemoryStore(ttl time.Duration, logger *logrus.Logger) *MemoryStore {
	s := &MemoryStore{
		entries: make(map[string]*memoryEntry),
		ttl:     ttl,
		done:    make(chan struct{}),
		logger:  logger,
	}
	go s.janitor()
	return s
}

func (s *MemoryStore) Create(ctx context.Context, w *wizard.Wizard) error {
	return s.Save(ctx, w)
}

func (s *MemoryStore) Get(_ context.Context, id string) (*wizard.Wizard, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.entries[id]
	if !ok || time.Now().After(entry.expiresAt) {
		return nil, ErrNotFound
	}
	return cloneWizard(entry.wizard), nil
}

func (s *MemoryStore) Save(_ context.Context, w *wizard.Wizard) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[w.ID] = &memoryEntry{
		wizard:    cloneWizard(w),
		expiresAt: time.Now().Add(s.ttl),
	}
	return nil
}

// cloneWizard deep-copies a wizard so the store never shares mutable state
// with its callers; changes only become visible through Save, matching the
// Redis store's round-trip semantics.
func cloneWizard(w *wizard.Wizard) *wizard.Wizard {
	clone := *w
	if w.AgentID != nil {
		id := *w.AgentID
		clone.AgentID = &id
	}
	return &clone
}

func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, id)
	return nil
}

// Close stops the janitor. Safe to call more than once.
func (s *MemoryStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true
	close(s.done)
	return nil
}

func (s *MemoryStore) janitor() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-s.done:
			return
		case <-ticker.C:
			s.evictExpired()
		}
	}
}

func (s *MemoryStore) evictExpired() {
	now := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	for id, entry := range s.entries {
		if now.After(entry.expiresAt) {
			delete(s.entries, id)
			s.logger.WithField("session_id", id).Debug("Evicted expired wizard session")
		}
	}
}
