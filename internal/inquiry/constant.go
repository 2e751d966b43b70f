package inquiry

// MaxMessageLength bounds inbound messages; anything longer is rejected at
// validation, never truncated silently.
const MaxMessageLength = 2000

// AgentType identifies this consumer to the knowledge retrieval service.
const AgentType = "case-assistant"

// DefaultMaxKnowledgeResults caps retrieval fan-out per turn.
const DefaultMaxKnowledgeResults = 3

var apologyByLang = map[string]string{
	"es": "Perdón, tuvimos un problema para responderte. Probá de nuevo en unos minutos.",
	"en": "Sorry, we had a problem answering you. Please try again in a few minutes.",
	"pt": "Desculpe, tivemos um problema para responder. Tente novamente em alguns minutos.",
}

var validationMessageByLang = map[string]string{
	"es": "No pudimos procesar tu mensaje. Revisá que no esté vacío ni sea demasiado largo.",
	"en": "We could not process your message. Check that it is not empty or too long.",
	"pt": "Não conseguimos processar sua mensagem. Verifique se não está vazia nem longa demais.",
}

var rateLimitMessageByLang = map[string]string{
	"es": "Estás enviando mensajes muy seguido. Esperá un momento antes de volver a escribir.",
	"en": "You are sending messages too quickly. Please wait a moment before writing again.",
	"pt": "Você está enviando mensagens rápido demais. Espere um momento antes de escrever de novo.",
}

// Apology returns the localized generation-failure apology.
func Apology(lang string) string { return localized(apologyByLang, lang) }

// ValidationMessage returns the localized rejection text for malformed input.
func ValidationMessage(lang string) string { return localized(validationMessageByLang, lang) }

// RateLimitMessage returns the localized over-limit text.
func RateLimitMessage(lang string) string { return localized(rateLimitMessageByLang, lang) }

func localized(table map[string]string, lang string) string {
	if s, ok := table[lang]; ok {
		return s
	}
	return table["es"]
}
