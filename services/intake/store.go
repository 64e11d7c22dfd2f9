package intake

import (
	"sync"

	"checkingo/models"
)

// LeadStore is the submission history: append-only, insertion-ordered,
// newest first, alive for the process lifetime only. It is owned by the
// wizard service and injected into the dashboard handlers.
type LeadStore interface {
	Append(lead models.TravelerProfile)
	List() []models.TravelerProfile
	Get(id string) (models.TravelerProfile, bool)
	Len() int
}

// MemoryLeadStore implements LeadStore over a guarded slice.
type MemoryLeadStore struct {
	mu    sync.RWMutex
	leads []models.TravelerProfile
}

func NewMemoryLeadStore() *MemoryLeadStore {
	return &MemoryLeadStore{}
}

// Append prepends the lead so List reads newest first.
func (s *MemoryLeadStore) Append(lead models.TravelerProfile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.leads = append([]models.TravelerProfile{lead}, s.leads...)
}

// List returns a copy of the history, newest first.
func (s *MemoryLeadStore) List() []models.TravelerProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.TravelerProfile, len(s.leads))
	copy(out, s.leads)
	return out
}

func (s *MemoryLeadStore) Get(id string) (models.TravelerProfile, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, lead := range s.leads {
		if lead.ID == id {
			return lead, true
		}
	}
	return models.TravelerProfile{}, false
}

func (s *MemoryLeadStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.leads)
}
