package intake

import (
	"context"
	"sync"
	"time"

	"checkingo/models"
	"checkingo/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type sessionEntry struct {
	session   *models.WizardSession
	expiresAt time.Time
}

// SessionStore keeps wizard sessions in memory under a sliding TTL, the
// same lifetime discipline the booking flow would get from a cache entry.
// Every access refreshes the deadline; the janitor sweeps expired entries.
type SessionStore struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]*sessionEntry
}

func NewSessionStore(ttl time.Duration) *SessionStore {
	return &SessionStore{
		ttl:     ttl,
		entries: make(map[string]*sessionEntry),
	}
}

// Create registers a fresh session on the landing screen and returns a
// snapshot of it.
func (s *SessionStore) Create() models.WizardSession {
	session := &models.WizardSession{
		SessionID: uuid.New().String(),
		Screen:    models.ScreenLanding,
		Profile:   models.NewTravelerProfile(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[session.SessionID] = &sessionEntry{
		session:   session,
		expiresAt: time.Now().Add(s.ttl),
	}
	return *session
}

// Update runs fn on the live session under the store lock and returns a
// snapshot of the session afterwards. The TTL is refreshed even when fn
// fails, so a rejected input does not shorten the session.
func (s *SessionStore) Update(id string, fn func(*models.WizardSession) error) (models.WizardSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[id]
	if !ok || time.Now().After(entry.expiresAt) {
		delete(s.entries, id)
		return models.WizardSession{}, NewSessionError("wizard session not found or expired")
	}
	entry.expiresAt = time.Now().Add(s.ttl)

	err := fn(entry.session)
	return *entry.session, err
}

// Snapshot returns a copy of the session without mutating it.
func (s *SessionStore) Snapshot(id string) (models.WizardSession, error) {
	return s.Update(id, func(*models.WizardSession) error { return nil })
}

func (s *SessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// StartJanitor sweeps expired sessions until the context is cancelled.
func (s *SessionStore) StartJanitor(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(time.Minute)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				removed := s.sweep()
				if removed > 0 {
					utils.GetLogger().Debug("session janitor sweep", zap.Int("removed", removed))
				}
			}
		}
	}()
}

func (s *SessionStore) sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	removed := 0
	for id, entry := range s.entries {
		if now.After(entry.expiresAt) {
			delete(s.entries, id)
			removed++
		}
	}
	return removed
}
