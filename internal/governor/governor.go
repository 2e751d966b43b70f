// Package governor is the deterministic rule engine between the generator
// and the user. It rewrites draft text so that conversation-stage invariants
// hold no matter what the generator produced: no payment alias before an
// amount is stated, help answers stay short and on-topic, exactly one
// verification follow-up when an alias is surfaced. It calls no external
// services; the same input always yields the same output.
package governor

import (
	"strings"

	"case-assistant/internal/model"
)

// Input is everything the governor is allowed to look at. UserMessage is the
// current user message, lowercased, used only to decide whether the user
// explicitly asked about an otherwise-banned topic.
type Input struct {
	Draft        string
	Intent       model.Intent
	Language     string
	UserMessage  string
	AmountStated bool
	AliasShown   bool
	Facts        model.CaseFacts
	Hints        []string
}

// Govern applies the governance rules in order and returns the final text.
func Govern(in Input) string {
	lang := in.Language
	if lang == "" {
		lang = "es"
	}

	sentences := splitSentences(stripMarkdown(in.Draft))

	if in.Intent == model.IntentHelp || hasHint(in.Hints, HintHelpSeeking) {
		sentences = governHelp(sentences, in.UserMessage, in.Facts, lang)
	}

	if in.Intent == model.IntentDonate {
		sentences = governDonate(sentences, in, lang)
	}

	return joinSentences(sentences)
}

// governHelp enforces the help-seeking shape: at most three sentences, no
// case-fact repetition, no adoption/foster/guardian-contact drift unless the
// user brought those topics up. An emptied response becomes the fixed
// two-sentence fallback.
func governHelp(sentences []string, userMessage string, facts model.CaseFacts, lang string) []string {
	userAsked := containsAny(userMessage, bannedTopicRequests)

	kept := sentences[:0]
	for _, s := range sentences {
		if containsAny(s, facts.FactTerms()) {
			continue
		}
		if !userAsked && containsAny(s, bannedHelpTopics) {
			continue
		}
		kept = append(kept, s)
	}
	if len(kept) > maxHelpSentences {
		kept = kept[:maxHelpSentences]
	}
	if len(kept) == 0 {
		return splitSentences(localized(helpFallbackByLang, lang))
	}
	return kept
}

// governDonate enforces the donation-stage invariants. Before an amount is
// stated no alias may appear and exactly one amount prompt must; once an
// amount is stated and an alias will be surfaced, a single verification
// follow-up closes the response.
func governDonate(sentences []string, in Input, lang string) []string {
	if !in.AmountStated {
		// Drop whatever prompts the generator improvised and close with the
		// canonical one, so exactly one amount question survives and it is last.
		kept := sentences[:0]
		for _, s := range sentences {
			if mentionsAlias(s, in.Facts) {
				continue
			}
			if containsAny(s, amountPromptMarkers) {
				continue
			}
			kept = append(kept, s)
		}
		kept = append(kept, localized(amountPromptByLang, lang))
		return kept
	}

	if in.AliasShown {
		// Keep at most one verification follow-up, and keep it last.
		kept := make([]string, 0, len(sentences)+1)
		for _, s := range sentences {
			if containsAny(s, verificationMarkers) {
				continue
			}
			kept = append(kept, s)
		}
		kept = append(kept, localized(verificationFollowUpByLang, lang))
		return kept
	}
	return sentences
}

func mentionsAlias(sentence string, facts model.CaseFacts) bool {
	if containsAny(sentence, aliasMarkers) {
		return true
	}
	lower := strings.ToLower(sentence)
	if facts.GuardianAlias != "" && strings.Contains(lower, strings.ToLower(facts.GuardianAlias)) {
		return true
	}
	if facts.AlternateFund != "" && strings.Contains(lower, strings.ToLower(facts.AlternateFund)) {
		return true
	}
	return false
}

func hasHint(hints []string, want string) bool {
	for _, h := range hints {
		if h == want {
			return true
		}
	}
	return false
}
