// Package planner derives the structured quick-action payload for a turn.
// The plan is the single source of truth for what gets disclosed to the
// user (aliases, links, guardian contact); generated free text never decides
// disclosure, it only gets reconciled with the plan by the governor.
package planner

import (
	"strings"

	"case-assistant/internal/model"
	"case-assistant/pkg/amount"
)

// Patterns meaning the user wants a donation path other than the primary
// alias. Matched over the lowercased message.
var alternativeMarkers = []string{
	"otra forma",
	"otras formas",
	"otro medio",
	"otra manera",
	"other way",
	"other ways",
	"another way",
	"outra forma",
	"outras formas",
	"transferencia internacional",
	"paypal",
}

// Markers meaning the message is about fostering or adopting, which makes
// guardian contact relevant.
var fosterAdoptionMarkers = []string{
	"adopt",
	"adopción",
	"adopcion",
	"adotar",
	"adoção",
	"foster",
	"tránsito",
	"transito",
	"hogar de tránsito",
}

// Default donation amounts offered with the amount prompt, in whole pesos.
var defaultSuggestedAmounts = []int{1000, 2500, 5000}

// Plan computes the quick-action payload for the current turn from resolved
// intent, session history, and externally supplied case facts.
func Plan(intent model.Intent, message string, session *model.Session, facts model.CaseFacts) model.QuickActionPlan {
	lower := strings.ToLower(message)

	amountStated := amount.Detect(message) || priorAmountStated(session)
	wantsAlternatives := containsAny(lower, alternativeMarkers)

	plan := model.QuickActionPlan{
		ShowAmountPrompt:    intent == model.IntentDonate && !amountStated,
		ShowPrimaryAlias:    intent == model.IntentDonate && amountStated && facts.HasGuardianAlias() && !wantsAlternatives,
		ShowAlternateAlias:  intent == model.IntentDonate && amountStated && (!facts.HasGuardianAlias() || wantsAlternatives),
		ShowSocialLinks:     intent == model.IntentShare,
		ShowGuardianContact: containsAny(lower, fosterAdoptionMarkers) && facts.HasGuardianID(),
	}
	if plan.ShowAmountPrompt {
		plan.SuggestedAmounts = defaultSuggestedAmounts
	}
	if plan.ShowSocialLinks && facts.HasSocialLinks() {
		plan.SocialLinks = facts.SocialLinks
	}
	return plan
}

// AmountStated reports whether an amount appears in the current message or
// anywhere in the session's prior user turns. Exposed so the governor sees
// the same amount decision the planner made.
func AmountStated(message string, session *model.Session) bool {
	return amount.Detect(message) || priorAmountStated(session)
}

func priorAmountStated(session *model.Session) bool {
	if session == nil {
		return false
	}
	for _, t := range session.UserTurns() {
		if amount.Detect(t.Text) {
			return true
		}
	}
	return false
}

func containsAny(lower string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(lower, m) {
			return true
		}
	}
	return false
}
