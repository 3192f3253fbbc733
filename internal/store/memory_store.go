package store

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/preston-bernstein/sports-dashboard-service/internal/dashboard"
)

const (
	defaultTTL         = 30 * time.Minute
	defaultMaxSessions = 1000
)

// SessionFactory builds a session for a freshly minted id.
type SessionFactory func(id string) *dashboard.Session

type entry struct {
	session  *dashboard.Session
	lastSeen time.Time
}

// MemoryStore keeps dashboard sessions in memory, expiring idle ones.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*entry
	factory  SessionFactory
	ttl      time.Duration
	max      int
	now      func() time.Time
	newID    func() string
}

// NewMemoryStore constructs an empty MemoryStore. Non-positive ttl/max use defaults.
func NewMemoryStore(factory SessionFactory, ttl time.Duration, max int) *MemoryStore {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	if max <= 0 {
		max = defaultMaxSessions
	}
	return &MemoryStore{
		sessions: make(map[string]*entry),
		factory:  factory,
		ttl:      ttl,
		max:      max,
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

// Create registers a new idle session. When the store is full the least
// recently used session is evicted.
func (s *MemoryStore) Create() *dashboard.Session {
	id := s.newID()
	sess := s.factory(id)

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.pruneLocked(now)
	for len(s.sessions) >= s.max {
		s.evictOldestLocked()
	}
	s.sessions[id] = &entry{session: sess, lastSeen: now}
	return sess
}

// Get returns a live session and refreshes its idle timer.
func (s *MemoryStore) Get(id string) (*dashboard.Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.sessions[id]
	if !ok {
		return nil, false
	}
	now := s.now()
	if now.Sub(e.lastSeen) > s.ttl {
		delete(s.sessions, id)
		return nil, false
	}
	e.lastSeen = now
	return e.session, true
}

// Delete removes a session; it reports whether one existed.
func (s *MemoryStore) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.sessions[id]
	delete(s.sessions, id)
	return ok
}

// Len returns the number of tracked sessions, expired or not.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Prune drops sessions idle longer than the ttl and returns how many were removed.
func (s *MemoryStore) Prune() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pruneLocked(s.now())
}

// pruneLocked requires s.mu to be held.
func (s *MemoryStore) pruneLocked(now time.Time) int {
	removed := 0
	for id, e := range s.sessions {
		if now.Sub(e.lastSeen) > s.ttl {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

// evictOldestLocked requires s.mu to be held.
func (s *MemoryStore) evictOldestLocked() {
	var oldestID string
	var oldest time.Time
	for id, e := range s.sessions {
		if oldestID == "" || e.lastSeen.Before(oldest) {
			oldestID, oldest = id, e.lastSeen
		}
	}
	delete(s.sessions, oldestID)
}
