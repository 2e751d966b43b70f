package model

import "time"

// TurnRole distinguishes who produced a turn.
type TurnRole string

const (
	RoleUser      TurnRole = "user"
	RoleAssistant TurnRole = "assistant"
)

// Turn is one user-or-assistant message within a conversation.
type Turn struct {
	Timestamp time.Time
	Role      TurnRole
	Text      string
	Intent    Intent // empty for assistant turns
}

// Session holds per-conversation memory. ConversationID is stable for the
// lifetime of a logical conversation regardless of transport.
// Invariant: Turns are strictly time-ordered (enforced by the store's
// per-conversation serialization).
type Session struct {
	ConversationID  string
	Turns           []Turn
	ContextSummary  string
	LastInteraction time.Time
}

// UserTurns returns the user-authored turns, oldest first.
func (s *Session) UserTurns() []Turn {
	out := make([]Turn, 0, len(s.Turns))
	for _, t := range s.Turns {
		if t.Role == RoleUser {
			out = append(out, t)
		}
	}
	return out
}

// LastAssistantTurn returns the most recent assistant turn, if any.
func (s *Session) LastAssistantTurn() (Turn, bool) {
	for i := len(s.Turns) - 1; i >= 0; i-- {
		if s.Turns[i].Role == RoleAssistant {
			return s.Turns[i], true
		}
	}
	return Turn{}, false
}
