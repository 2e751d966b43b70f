package intent

import (
	"strings"

	"case-assistant/internal/model"
)

// Lightweight punctuation/keyword heuristics. These run on the raw message
// (not the normalized form) because punctuation carries the signal.

var distressWords = []string{
	"urgente", "urgent", "grave", "muriendo", "dying", "emergencia",
	"emergency", "ayuda por favor", "socorro", "desesperad",
}

var concernWords = []string{
	"preocup", "worried", "triste", "sad", "pobre", "mal", "dolor", "sufr",
}

var positiveWords = []string{
	"gracias", "thank", "genial", "great", "hermoso", "feliz", "obrigad",
	"excelente", "me encanta",
}

// detectTone classifies the emotional charge of a message.
func detectTone(message string) model.EmotionalTone {
	lower := strings.ToLower(message)

	for _, w := range distressWords {
		if strings.Contains(lower, w) {
			return model.ToneDistressed
		}
	}
	if strings.Count(message, "!") >= 2 {
		return model.ToneDistressed
	}
	for _, w := range concernWords {
		if strings.Contains(lower, w) {
			return model.ToneConcerned
		}
	}
	for _, w := range positiveWords {
		if strings.Contains(lower, w) {
			return model.TonePositive
		}
	}
	return model.ToneNeutral
}

var urgentWords = []string{
	"urgente", "urgent", "ya", "ahora", "now", "hoy", "today", "emergencia",
	"emergency", "rapido", "quick", "asap",
}

// detectUrgency classifies how time-critical a message is. Urgency words are
// matched as whole words; "ya" inside "ayuda" must not count.
func detectUrgency(message string) model.Urgency {
	lower := strings.ToLower(message)
	words := make(map[string]bool)
	for _, f := range strings.FieldsFunc(lower, func(r rune) bool {
		return r == ' ' || r == ',' || r == '.' || r == '!' || r == '?'
	}) {
		words[f] = true
	}

	hits := 0
	for _, w := range urgentWords {
		if words[w] {
			hits++
		}
	}

	switch {
	case hits >= 2 || strings.Contains(lower, "emergencia") || strings.Contains(lower, "emergency"):
		return model.UrgencyHigh
	case hits == 1 || strings.Contains(message, "!"):
		return model.UrgencyMedium
	default:
		return model.UrgencyLow
	}
}
