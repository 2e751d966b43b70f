// Package session holds per-conversation memory and per-user profiles.
// Everything is in-memory: durability, if any, belongs to an external
// collaborator. The store's one hard guarantee is per-conversation
// serialization, which keeps turn ordering strict when two requests for the
// same conversation race.
package session

import (
	"context"
	"sync"
	"time"

	pkgLog "case-assistant/pkg/log"
)

// Config bounds the store.
type Config struct {
	TTL             time.Duration // idle entries older than this are swept
	MaxHistory      int           // turns kept per session
	CleanupInterval time.Duration
}

// Store owns sessions and profiles. Construct once per process and inject.
type Store struct {
	l   pkgLog.Logger
	cfg Config

	mu       sync.RWMutex
	sessions map[string]*sessionEntry
	profiles map[string]*profileEntry

	stop chan struct{}
}

// New creates a session/profile store and starts its TTL sweeper.
func New(l pkgLog.Logger, cfg Config) *Store {
	if cfg.TTL <= 0 {
		cfg.TTL = 30 * time.Minute
	}
	if cfg.MaxHistory <= 0 {
		cfg.MaxHistory = DefaultMaxHistory
	}
	if cfg.CleanupInterval <= 0 {
		cfg.CleanupInterval = 5 * time.Minute
	}

	s := &Store{
		l:        l,
		cfg:      cfg,
		sessions: make(map[string]*sessionEntry),
		profiles: make(map[string]*profileEntry),
		stop:     make(chan struct{}),
	}

	go s.sweep()

	return s
}

// Close stops the TTL sweeper.
func (s *Store) Close() {
	close(s.stop)
}

func (s *Store) sweep() {
	ticker := time.NewTicker(s.cfg.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			s.evictExpired()
		}
	}
}

func (s *Store) evictExpired() {
	cutoff := time.Now().Add(-s.cfg.TTL)

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, e := range s.sessions {
		// Entries locked by an in-flight request are never evicted.
		if e.session.LastInteraction.Before(cutoff) && e.lock.TryLock() {
			delete(s.sessions, id)
			e.lock.Unlock()
			removed++
		}
	}

	if removed > 0 {
		s.l.Infof(context.Background(), "session sweep removed %d idle sessions", removed)
	}
}
