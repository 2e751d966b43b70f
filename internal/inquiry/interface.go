package inquiry

import (
	"context"

	"case-assistant/internal/model"
)

// UseCase defines the business logic interface for the inquiry domain.
type UseCase interface {
	// Process runs one user message through the full pipeline: admission,
	// intent resolution, knowledge retrieval, generation, governance, and
	// action planning. A generation failure yields Success=false with a
	// localized apology, not an error; errors are reserved for requests
	// rejected before the pipeline (validation, rate limiting).
	Process(ctx context.Context, sc model.Scope, input ProcessInput) (ProcessOutput, error)
}
