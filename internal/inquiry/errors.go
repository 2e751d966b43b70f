package inquiry

import "fmt"

// Category classifies a failure internally. It is logged and returned in
// ProcessOutput but never rendered to the end user directly.
type Category string

const (
	CategoryValidation  Category = "validation"
	CategoryRateLimited Category = "rate_limited"
	CategoryUpstream    Category = "upstream_unavailable"
)

// ValidationError rejects malformed input before it enters the pipeline.
// Never retried.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

var (
	ErrMessageEmpty   = &ValidationError{Field: "message", Reason: "message is empty"}
	ErrMessageTooLong = &ValidationError{Field: "message", Reason: "message exceeds maximum length"}
	ErrMessageMarkup  = &ValidationError{Field: "message", Reason: "message contains disallowed markup"}
)
