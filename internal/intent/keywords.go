package intent

import (
	"strings"

	"case-assistant/internal/model"
)

// fallbackPatterns is the degraded-mode classification table used when no
// embedding provider is available or no cluster clears the threshold.
// Patterns are matched against the normalized (lowercased, diacritic-folded)
// message, so Spanish and Portuguese forms appear pre-folded.
var fallbackPatterns = []struct {
	intent model.Intent
	words  []string
}{
	{model.IntentDonate, []string{"donar", "donacion", "donate", "donation", "aportar", "transferir", "doar", "plata para", "$"}},
	{model.IntentShare, []string{"compartir", "difundir", "share", "redes", "publicar", "compartilhar"}},
	{model.IntentAdopt, []string{"adoptar", "adopcion", "transito", "adopt", "foster", "adotar", "hogar"}},
	{model.IntentContact, []string{"contacto", "contactar", "contact", "hablar con", "rescatista", "responsable", "guardian"}},
	{model.IntentHelp, []string{"ayudar", "ayuda", "colaborar", "help", "ajudar", "que puedo hacer"}},
}

// keywordIntent returns the first pattern table hit, in table order.
// Donate outranks the rest for the same reason as the carry-over table.
func keywordIntent(normalized string) (model.Intent, bool) {
	for _, p := range fallbackPatterns {
		for _, w := range p.words {
			if strings.Contains(normalized, w) {
				return p.intent, true
			}
		}
	}
	return "", false
}
