package model

// QuickActionPlan is the structured quick-action payload surfaced alongside a
// response. Derived every turn from intent + session state + case facts,
// never persisted and never inferred from generated text.
type QuickActionPlan struct {
	ShowAmountPrompt    bool     `json:"show_amount_prompt"`
	ShowPrimaryAlias    bool     `json:"show_primary_alias"`
	ShowAlternateAlias  bool     `json:"show_alternate_alias"`
	ShowSocialLinks     bool     `json:"show_social_links"`
	ShowGuardianContact bool     `json:"show_guardian_contact"`
	SuggestedAmounts    []int    `json:"suggested_amounts,omitempty"`
	SocialLinks         []string `json:"social_links,omitempty"`
}
