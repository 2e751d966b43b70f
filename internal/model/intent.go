package model

// Intent is the classified purpose of a user message.
type Intent string

const (
	IntentDonate  Intent = "donate"
	IntentShare   Intent = "share"
	IntentAdopt   Intent = "adopt"
	IntentContact Intent = "contact"
	IntentHelp    Intent = "help"
	IntentGeneral Intent = "general"
)

// EmotionalTone is a coarse read of the message's emotional charge.
type EmotionalTone string

const (
	ToneNeutral    EmotionalTone = "neutral"
	TonePositive   EmotionalTone = "positive"
	ToneConcerned  EmotionalTone = "concerned"
	ToneDistressed EmotionalTone = "distressed"
)

// Urgency is a coarse read of how time-critical the message is.
type Urgency string

const (
	UrgencyLow    Urgency = "low"
	UrgencyMedium Urgency = "medium"
	UrgencyHigh   Urgency = "high"
)

// IntentAnalysis is the immutable result of resolving one message.
type IntentAnalysis struct {
	Intent           Intent
	Confidence       float64 // in [0,1]
	SuggestedActions []string
	EmotionalTone    EmotionalTone
	Urgency          Urgency
}
