package intent

import (
	"strings"

	"case-assistant/internal/model"
)

// affirmations is one multilingual set of short agreement phrases, matched
// against the normalized message rather than per-locale keyword lists.
var affirmations = map[string]bool{
	"yes": true, "yeah": true, "yep": true, "ok": true, "okay": true,
	"sure": true, "of course": true, "sounds good": true,
	"si": true, "dale": true, "claro": true, "bueno": true, "va": true,
	"obvio": true, "por supuesto": true, "listo": true,
	"sim": true, "claro que sim": true, "ta bom": true,
}

// isAffirmation reports whether the normalized message is a short agreement.
func isAffirmation(normalized string) bool {
	if len(normalized) > 20 {
		return false
	}
	return affirmations[normalized]
}

// topicKeywords map assistant-turn content to a carried-over intent.
// Precedence when one turn touches several topics: donate > share > adopt >
// help, disclosure-bearing topics first (the governor applies its strictest
// rules to those).
var topicKeywords = []struct {
	intent model.Intent
	words  []string
}{
	{model.IntentDonate, []string{"donar", "donacion", "donate", "donation", "monto", "amount", "alias", "transferencia", "transfer", "aporte", "doar"}},
	{model.IntentShare, []string{"compartir", "difundir", "share", "redes", "social", "link", "compartilhar"}},
	{model.IntentAdopt, []string{"adoptar", "adopcion", "transito", "adopt", "foster", "adotar"}},
	{model.IntentHelp, []string{"ayudar", "ayuda", "colaborar", "help", "support", "ajudar"}},
}

// carryOver checks whether the message is a short affirmation answering a
// topic raised in the two preceding turns. Returns the inherited intent, or
// ok=false when the rule does not apply.
func carryOver(normalized string, sess *model.Session) (model.Intent, bool) {
	if sess == nil || len(sess.Turns) == 0 {
		return "", false
	}
	if !isAffirmation(normalized) {
		return "", false
	}

	// Inspect the two preceding turns, most recent first; only assistant
	// turns can raise a topic the user agrees with.
	inspected := 0
	for i := len(sess.Turns) - 1; i >= 0 && inspected < 2; i-- {
		turn := sess.Turns[i]
		inspected++
		if turn.Role != model.RoleAssistant {
			continue
		}

		content := normalize(turn.Text)
		for _, topic := range topicKeywords {
			for _, w := range topic.words {
				if strings.Contains(content, w) {
					return topic.intent, true
				}
			}
		}
	}

	return "", false
}
