package governor

const maxHelpSentences = 3

// Topics a help-seeking answer must not drift into unless the user brought
// them up. Matched as case-insensitive substrings over each sentence.
var bannedHelpTopics = []string{
	"adopt",
	"adopción",
	"adopcion",
	"adotar",
	"adoção",
	"foster",
	"tránsito",
	"transito",
	"guardian contact",
	"contacto del guardián",
	"contacto del guardian",
}

// Markers that count as the user explicitly asking about a banned topic.
var bannedTopicRequests = []string{
	"adopt",
	"adopción",
	"adopcion",
	"adoptar",
	"adotar",
	"foster",
	"tránsito",
	"transito",
	"guardián",
	"guardian",
}

// Markers that mean a sentence already prompts for a donation amount.
var amountPromptMarkers = []string{
	"cuánto",
	"cuanto",
	"how much",
	"quanto",
	"monto",
	"amount",
	"importe",
}

// Markers that mean a sentence already carries the verification follow-up.
var verificationMarkers = []string{
	"verifiqu",
	"verificac",
	"verification",
	"verified",
	"comprobante",
}

// Generic payment-destination words screened alongside the concrete aliases.
var aliasMarkers = []string{
	"alias",
	"cbu",
	"cvu",
}

var amountPromptByLang = map[string]string{
	"es": "¿Cuánto te gustaría donar?",
	"en": "How much would you like to donate?",
	"pt": "Quanto você gostaria de doar?",
}

var verificationFollowUpByLang = map[string]string{
	"es": "¿Querés que te confirmemos cuando tu aporte quede verificado?",
	"en": "Would you like us to confirm once your contribution is verified?",
	"pt": "Quer que a gente confirme quando sua contribuição for verificada?",
}

var helpFallbackByLang = map[string]string{
	"es": "Gracias por querer ayudar. Podés colaborar con una donación o compartiendo el caso.",
	"en": "Thank you for wanting to help. You can contribute with a donation or by sharing the case.",
	"pt": "Obrigado por querer ajudar. Você pode colaborar com uma doação ou compartilhando o caso.",
}

// HintHelpSeeking is the structured knowledge tag that triggers the
// help-seeking governance rules even when the resolved intent differs.
const HintHelpSeeking = "help-seeking"

func localized(table map[string]string, lang string) string {
	if s, ok := table[lang]; ok {
		return s
	}
	return table["es"]
}
