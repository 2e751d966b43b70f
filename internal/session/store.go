package session

import (
	"sync"
	"time"

	"case-assistant/internal/model"
)

// DefaultMaxHistory caps turns kept per session (10 exchanges).
const DefaultMaxHistory = 20

type sessionEntry struct {
	lock    sync.Mutex // serializes turn processing for this conversation
	session model.Session
}

// Acquire locks the conversation for the duration of one turn and returns a
// working copy of its session plus a release func. Mutations on the copy are
// discarded unless Commit is called before release; a failed pipeline run
// therefore leaves no partial-turn writes.
func (s *Store) Acquire(conversationID string) (model.Session, func()) {
	s.mu.Lock()
	e, ok := s.sessions[conversationID]
	if !ok {
		e = &sessionEntry{
			session: model.Session{
				ConversationID:  conversationID,
				LastInteraction: time.Now(),
			},
		}
		s.sessions[conversationID] = e
	}
	s.mu.Unlock()

	e.lock.Lock()
	return cloneSession(e.session), func() { e.lock.Unlock() }
}

// Commit stores the mutated session copy back. Must be called while the
// Acquire lock for this conversation is still held.
func (s *Store) Commit(sess model.Session) {
	if len(sess.Turns) > s.cfg.MaxHistory {
		sess.Turns = append([]model.Turn(nil), sess.Turns[len(sess.Turns)-s.cfg.MaxHistory:]...)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.sessions[sess.ConversationID]
	if !ok {
		// The sweeper can evict an idle entry between Acquire's map lookup
		// and taking the entry lock. Re-insert instead of dropping a fully
		// processed turn; the fresh LastInteraction keeps it alive.
		e = &sessionEntry{}
		s.sessions[sess.ConversationID] = e
	}
	e.session = sess
}

// Peek returns a copy of the session without locking it. Intended for
// read-only inspection (handlers, tests); turn processing must use Acquire.
func (s *Store) Peek(conversationID string) (model.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.sessions[conversationID]
	if !ok {
		return model.Session{}, false
	}
	return cloneSession(e.session), true
}

// AppendTurn appends a turn to the session copy, keeping turns time-ordered.
func AppendTurn(sess *model.Session, turn model.Turn) {
	if turn.Timestamp.IsZero() {
		turn.Timestamp = time.Now()
	}
	// Monotonic guard: a clock step backwards must not break ordering.
	if n := len(sess.Turns); n > 0 && turn.Timestamp.Before(sess.Turns[n-1].Timestamp) {
		turn.Timestamp = sess.Turns[n-1].Timestamp
	}
	sess.Turns = append(sess.Turns, turn)
	sess.LastInteraction = turn.Timestamp
}

func cloneSession(in model.Session) model.Session {
	out := in
	out.Turns = append([]model.Turn(nil), in.Turns...)
	return out
}
