package repository

import (
	"context"
	"sync"
	"time"

	"github.com/lk16/reversi/internal/game"
)

// MemorySessionRepository keeps sessions in process memory.
// Sessions that were not updated within the TTL are dropped when they are accessed
// and by the sweep that runs whenever a session is created.
type MemorySessionRepository struct {
	// sessions maps session ID to session
	sessions map[string]Session

	// sessionsMutex protects sessions
	sessionsMutex sync.Mutex

	ttl time.Duration

	// now is replaced in tests
	now func() time.Time
}

// NewMemorySessionRepository creates an empty in-memory repository.
func NewMemorySessionRepository(ttl time.Duration) *MemorySessionRepository {
	return &MemorySessionRepository{
		sessions: make(map[string]Session),
		ttl:      ttl,
		now:      time.Now,
	}
}

func (repo *MemorySessionRepository) Create(_ context.Context, policy game.TurnPolicy) (Session, error) {
	repo.sessionsMutex.Lock()
	defer repo.sessionsMutex.Unlock()

	now := repo.now()
	repo.sweep(now)

	session := newSession(policy, now)
	repo.sessions[session.ID] = session
	return session, nil
}

func (repo *MemorySessionRepository) Get(_ context.Context, id string) (Session, error) {
	repo.sessionsMutex.Lock()
	defer repo.sessionsMutex.Unlock()

	return repo.lookup(id)
}

func (repo *MemorySessionRepository) Update(_ context.Context, id string, fn func(*game.Controller) error) (Session, error) {
	repo.sessionsMutex.Lock()
	defer repo.sessionsMutex.Unlock()

	session, err := repo.lookup(id)
	if err != nil {
		return Session{}, err
	}

	session, err = applyUpdate(session, fn, repo.now())
	if err != nil {
		return Session{}, err
	}

	repo.sessions[id] = session
	return session, nil
}

func (repo *MemorySessionRepository) Delete(_ context.Context, id string) error {
	repo.sessionsMutex.Lock()
	defer repo.sessionsMutex.Unlock()

	if _, err := repo.lookup(id); err != nil {
		return err
	}

	delete(repo.sessions, id)
	return nil
}

// lookup finds a session and evicts it if it expired. It assumes sessionsMutex is locked.
func (repo *MemorySessionRepository) lookup(id string) (Session, error) {
	session, ok := repo.sessions[id]
	if !ok {
		return Session{}, ErrSessionNotFound
	}

	if repo.expired(session, repo.now()) {
		delete(repo.sessions, id)
		return Session{}, ErrSessionNotFound
	}

	return session, nil
}

// sweep removes all expired sessions. It assumes sessionsMutex is locked.
func (repo *MemorySessionRepository) sweep(now time.Time) {
	for id, session := range repo.sessions {
		if repo.expired(session, now) {
			delete(repo.sessions, id)
		}
	}
}

func (repo *MemorySessionRepository) expired(session Session, now time.Time) bool {
	return now.Sub(session.UpdatedAt) > repo.ttl
}
