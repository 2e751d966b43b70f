package intent

// Log prefixes
const (
	LogPrefixResolve = "internal.intent.Resolve"
	LogPrefixWarmup  = "internal.intent.Warmup"
)

// Resolver defaults. Threshold is an operational knob surfaced through
// config, not a semantically meaningful constant.
const (
	DefaultThreshold      = 0.70
	DefaultCacheSize      = 1000
	DefaultEmbedCacheSize = 2000

	// ConfidenceCap bounds semantic confidence so the pipeline never treats
	// a similarity score as certainty.
	ConfidenceCap = 0.95

	// CarryOverConfidence is assigned when a short affirmation inherits the
	// topic of the preceding assistant turn.
	CarryOverConfidence = 0.95

	// KeywordConfidence is assigned to keyword-fallback matches.
	KeywordConfidence = 0.6

	// FallbackConfidence is the floor when nothing matched.
	FallbackConfidence = 0.1
)

// suggestedActions maps each intent to the structured action hints the
// planner may surface. These are hints only; disclosure is decided by the
// action planner.
var suggestedActions = map[string][]string{
	"donate":  {"amount_prompt", "show_alias"},
	"share":   {"social_links"},
	"adopt":   {"guardian_contact"},
	"contact": {"guardian_contact"},
	"help":    {"donate", "share"},
	"general": {},
}
