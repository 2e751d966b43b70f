package inquiry

import "case-assistant/internal/model"

// ProcessInput is one inbound user message plus the externally owned facts
// of the case the conversation is about.
type ProcessInput struct {
	Message string
	Facts   model.CaseFacts
}

// Metadata describes how the response was produced.
type Metadata struct {
	Intent           model.Intent        `json:"intent"`
	Confidence       float64             `json:"confidence"`
	EmotionalTone    model.EmotionalTone `json:"emotional_tone"`
	Urgency          model.Urgency       `json:"urgency"`
	ProcessingTimeMs int64               `json:"processing_time_ms"`
}

// ProcessOutput is the governed response. Success=false means generation
// failed and Message carries a localized apology; ErrorCategory then names
// the internal failure class without exposing diagnostic detail.
type ProcessOutput struct {
	Success       bool
	Message       string
	Actions       model.QuickActionPlan
	Metadata      Metadata
	ErrorCategory Category
}
