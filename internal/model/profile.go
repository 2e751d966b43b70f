package model

import (
	"strings"
	"time"
)

// EngagementLevel classifies how active a user has been recently.
type EngagementLevel string

const (
	EngagementLow    EngagementLevel = "low"
	EngagementMedium EngagementLevel = "medium"
	EngagementHigh   EngagementLevel = "high"
)

// EngagementWindow is the trailing period interactions are counted over.
const EngagementWindow = 7 * 24 * time.Hour

// UserProfile is long-lived per-user state, independent of any conversation.
type UserProfile struct {
	UserID             string
	Engagement         EngagementLevel
	Interactions       []time.Time // capped rolling window, oldest first
	PreferredLanguage  string
	CommunicationStyle string // e.g. "formal", "casual"
	FirstContact       time.Time
}

// Communication styles recorded on a profile.
const (
	StyleFormal = "formal"
	StyleCasual = "casual"
)

// StyleFor infers a communication register from one message. An empty result
// means no signal; callers keep the previously recorded style.
func StyleFor(message string) string {
	for _, w := range strings.Fields(strings.ToLower(message)) {
		switch strings.Trim(w, ".,;!?¡¿") {
		case "usted", "podría", "quisiera", "disculpe", "senhor", "senhora":
			return StyleFormal
		case "che", "dale", "vos", "jaja", "posta", "hey":
			return StyleCasual
		}
	}
	return ""
}

// EngagementFor maps an interaction count within EngagementWindow to a level.
// Pure function so the store and tests share one definition.
func EngagementFor(recentCount int) EngagementLevel {
	switch {
	case recentCount >= 10:
		return EngagementHigh
	case recentCount >= 3:
		return EngagementMedium
	default:
		return EngagementLow
	}
}

// RecentInteractions counts interactions newer than now minus EngagementWindow.
func (p *UserProfile) RecentInteractions(now time.Time) int {
	cutoff := now.Add(-EngagementWindow)
	n := 0
	for _, ts := range p.Interactions {
		if ts.After(cutoff) {
			n++
		}
	}
	return n
}
