package store

import (
	"sync"

	"github.com/MKhiriev/portfolio-admin/models"
)

// memoryAttemptStore is the in-process implementation of [AttemptStore]: a
// mutex-guarded map keyed by client IP. Counters survive only as long as the
// process does — a restart clears all lockouts, which is acceptable for a
// single-admin, single-instance deployment.
type memoryAttemptStore struct {
	mu       sync.Mutex
	attempts map[string]models.LoginAttempt
}

// NewAttemptStore constructs an empty in-memory [AttemptStore].
func NewAttemptStore() AttemptStore {
	return &memoryAttemptStore{
		attempts: make(map[string]models.LoginAttempt),
	}
}

func (s *memoryAttemptStore) Get(ip string) (models.LoginAttempt, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	attempt, ok := s.attempts[ip]
	return attempt, ok
}

func (s *memoryAttemptStore) Set(ip string, attempt models.LoginAttempt) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.attempts[ip] = attempt
}

func (s *memoryAttemptStore) Delete(ip string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.attempts, ip)
}
