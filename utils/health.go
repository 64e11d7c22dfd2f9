package utils

import (
	"sync"
	"time"
)

// HealthStatus represents the current snapshot of the service state.
type HealthStatus struct {
	ActiveSessions int       `json:"activeSessions"`
	StoredLeads    int       `json:"storedLeads"`
	AIConfigured   bool      `json:"aiConfigured"`
	CheckedAt      time.Time `json:"checkedAt"`
}

var (
	currentHealth HealthStatus
	mu            sync.RWMutex
)

// GetHealthStatus returns latest stored health snapshot.
func GetHealthStatus() HealthStatus {
	mu.RLock()
	defer mu.RUnlock()
	return currentHealth
}

// StartHealthMonitor performs periodic health checks and updates in-memory state.
// The counters are polled so the monitor holds no reference to service internals.
func StartHealthMonitor(sessionCount, leadCount func() int, aiConfigured bool) {
	go func() {
		ticker := time.NewTicker(60 * time.Second)
		defer ticker.Stop()

		record := func() {
			mu.Lock()
			currentHealth = HealthStatus{
				ActiveSessions: sessionCount(),
				StoredLeads:    leadCount(),
				AIConfigured:   aiConfigured,
				CheckedAt:      time.Now(),
			}
			mu.Unlock()
		}

		record()
		for range ticker.C {
			record()
		}
	}()
}
