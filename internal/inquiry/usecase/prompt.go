package usecase

import (
	"fmt"
	"strings"

	"case-assistant/internal/knowledge"
	"case-assistant/internal/model"
	"case-assistant/pkg/llmprovider"
)

// promptHistoryTurns bounds how much conversation is replayed to the
// generator each turn.
const promptHistoryTurns = 6

var systemByLang = map[string]string{
	"es": "Sos el asistente conversacional de un caso de rescate animal. Respondé cálido, breve y en oraciones simples, sin markdown. Nunca inventes datos del caso: usá solamente los hechos y el conocimiento que te paso abajo. Nunca compartas alias de pago ni datos de contacto por tu cuenta.",
	"en": "You are the conversational assistant for an animal rescue case. Reply warm, brief, in plain sentences, no markdown. Never invent case facts: use only the facts and knowledge provided below. Never share payment aliases or contact details on your own.",
	"pt": "Você é o assistente conversacional de um caso de resgate animal. Responda de forma calorosa, breve e em frases simples, sem markdown. Nunca invente fatos do caso: use apenas os fatos e o conhecimento abaixo. Nunca compartilhe alias de pagamento nem contatos por conta própria.",
}

// buildPrompt assembles the generation request: localized system
// instruction, case facts, retrieved knowledge, the rolling context summary,
// and the tail of the conversation.
func buildPrompt(lang, message string, analysis model.IntentAnalysis, sess *model.Session, profile *model.UserProfile, facts model.CaseFacts, chunks []knowledge.Chunk) *llmprovider.Request {
	var sb strings.Builder

	system, ok := systemByLang[lang]
	if !ok {
		system = systemByLang["es"]
	}
	sb.WriteString(system)
	if profile != nil && profile.CommunicationStyle != "" {
		fmt.Fprintf(&sb, " Match the user's %s register.", profile.CommunicationStyle)
	}

	sb.WriteString("\n\nCase facts:\n")
	writeFact(&sb, "name", facts.Name)
	writeFact(&sb, "species", facts.Species)
	writeFact(&sb, "location", facts.Location)
	writeFact(&sb, "condition", facts.Condition)
	writeFact(&sb, "status", string(facts.Status))

	if len(chunks) > 0 {
		sb.WriteString("\nKnowledge:\n")
		for _, c := range chunks {
			fmt.Fprintf(&sb, "- %s: %s\n", c.Title, c.Content)
		}
	}

	if sess.ContextSummary != "" {
		fmt.Fprintf(&sb, "\nConversation summary: %s\n", sess.ContextSummary)
	}

	fmt.Fprintf(&sb, "\nDetected intent: %s (tone: %s, urgency: %s)\n",
		analysis.Intent, analysis.EmotionalTone, analysis.Urgency)

	messages := historyMessages(sess)
	messages = append(messages, llmprovider.Message{Role: "user", Text: message})

	return &llmprovider.Request{
		SystemInstruction: sb.String(),
		Messages:          messages,
		Temperature:       0.7,
		MaxTokens:         512,
	}
}

func historyMessages(sess *model.Session) []llmprovider.Message {
	turns := sess.Turns
	if len(turns) > promptHistoryTurns {
		turns = turns[len(turns)-promptHistoryTurns:]
	}
	out := make([]llmprovider.Message, 0, len(turns)+1)
	for _, t := range turns {
		role := "user"
		if t.Role == model.RoleAssistant {
			role = "assistant"
		}
		out = append(out, llmprovider.Message{Role: role, Text: t.Text})
	}
	return out
}

func writeFact(sb *strings.Builder, key, value string) {
	if value == "" {
		return
	}
	fmt.Fprintf(sb, "- %s: %s\n", key, value)
}
