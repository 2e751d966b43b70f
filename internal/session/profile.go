package session

import (
	"time"

	"case-assistant/internal/model"
)

// maxInteractionWindow caps the rolling interaction history per profile.
const maxInteractionWindow = 50

type profileEntry struct {
	profile model.UserProfile
}

// GetOrCreateProfile returns a copy of the user's profile, creating it on
// first contact.
func (s *Store) GetOrCreateProfile(userID string) model.UserProfile {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.profiles[userID]
	if !ok {
		e = &profileEntry{
			profile: model.UserProfile{
				UserID:       userID,
				Engagement:   model.EngagementLow,
				FirstContact: time.Now(),
			},
		}
		s.profiles[userID] = e
	}
	return cloneProfile(e.profile)
}

// RecordInteraction appends an interaction, recomputes the engagement level
// and persists preference updates. Empty language or style leaves the
// previously recorded preference alone. Called once per successfully
// processed turn.
func (s *Store) RecordInteraction(userID, language, style string, now time.Time) model.UserProfile {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.profiles[userID]
	if !ok {
		e = &profileEntry{
			profile: model.UserProfile{
				UserID:       userID,
				FirstContact: now,
			},
		}
		s.profiles[userID] = e
	}

	p := &e.profile
	p.Interactions = append(p.Interactions, now)
	if len(p.Interactions) > maxInteractionWindow {
		p.Interactions = p.Interactions[len(p.Interactions)-maxInteractionWindow:]
	}
	if language != "" {
		p.PreferredLanguage = language
	}
	if style != "" {
		p.CommunicationStyle = style
	}
	p.Engagement = model.EngagementFor(p.RecentInteractions(now))

	return cloneProfile(*p)
}

func cloneProfile(in model.UserProfile) model.UserProfile {
	out := in
	out.Interactions = append([]time.Time(nil), in.Interactions...)
	return out
}
