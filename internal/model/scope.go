package model

// Scope carries the caller identity for a request. It is resolved at the
// delivery boundary and passed through every use case call.
type Scope struct {
	UserID         string
	ConversationID string
	Language       string // BCP 47 primary subtag, e.g. "es", "en"
}

// Lang returns the declared language, defaulting to Spanish.
func (s Scope) Lang() string {
	if s.Language == "" {
		return "es"
	}
	return s.Language
}
