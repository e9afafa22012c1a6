package service

import (
	"sync"
	"time"

	"floorplan/config"
	"floorplan/internal/domains/floor/selector"
	"floorplan/shared/failure"

	"github.com/google/uuid"
)

var (
	ErrSessionNotFound  = failure.NotFound("session not found")
	ErrSessionForbidden = failure.Forbidden("session belongs to another user")
	ErrSaveInProgress   = failure.Conflict("already saving")
)

// Session is one editor tab: a floor selector, its canvas and the save
// state. Every access goes through mu.
type Session struct {
	mu       sync.Mutex
	id       string
	ownerID  string
	selector *selector.Selector
	saving   bool
	lastSeen time.Time
}

func (s *Session) ID() string {
	return s.id
}

func (s *Session) OwnerID() string {
	return s.ownerID
}

// Sessions is the in-memory registry of open sessions.
type Sessions struct {
	mu    sync.RWMutex
	items map[string]*Session
	idle  time.Duration
	now   func() time.Time
}

func NewSessions(idle time.Duration) *Sessions {
	return &Sessions{
		items: make(map[string]*Session),
		idle:  idle,
		now:   time.Now,
	}
}

// ProvideSessions builds the registry with the configured idle timeout.
func ProvideSessions(cfg *config.Config) *Sessions {
	return NewSessions(time.Duration(cfg.App.Editor.SessionIdleSeconds) * time.Second)
}

func (r *Sessions) Open(ownerID string, sel *selector.Selector) *Session {
	sess := &Session{
		id:       uuid.NewString(),
		ownerID:  ownerID,
		selector: sel,
		lastSeen: r.now(),
	}

	r.mu.Lock()
	r.items[sess.id] = sess
	r.mu.Unlock()

	return sess
}

// Get returns the session when ownerID opened it.
func (r *Sessions) Get(id, ownerID string) (*Session, error) {
	r.mu.RLock()
	sess, ok := r.items[id]
	r.mu.RUnlock()

	if !ok {
		return nil, ErrSessionNotFound
	}

	if sess.ownerID != ownerID {
		return nil, ErrSessionForbidden
	}

	return sess, nil
}

func (r *Sessions) Close(id, ownerID string) error {
	if _, err := r.Get(id, ownerID); err != nil {
		return err
	}

	r.mu.Lock()
	delete(r.items, id)
	r.mu.Unlock()

	return nil
}

func (r *Sessions) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.items)
}

// Sweep closes sessions idle for longer than the configured period. Sessions
// that are busy or saving are kept.
func (r *Sessions) Sweep() int {
	if r.idle <= 0 {
		return 0
	}

	deadline := r.now().Add(-r.idle)
	removed := 0

	r.mu.Lock()
	defer r.mu.Unlock()

	for id, sess := range r.items {
		if !sess.mu.TryLock() {
			continue
		}

		expired := !sess.saving && sess.lastSeen.Before(deadline)
		sess.mu.Unlock()

		if expired {
			delete(r.items, id)
			removed++
		}
	}

	return removed
}

func (r *Sessions) touch(sess *Session) {
	sess.lastSeen = r.now()
}
