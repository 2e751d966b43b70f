package usecase

import (
	"context"

	"case-assistant/internal/inquiry"
	"case-assistant/internal/intent"
	"case-assistant/internal/knowledge"
	"case-assistant/internal/observability"
	"case-assistant/internal/ratelimit"
	"case-assistant/internal/session"
	pkgLog "case-assistant/pkg/log"
	"case-assistant/pkg/llmprovider"
)

// Generator is the language completion collaborator. Satisfied by
// *llmprovider.Manager; a black box with no determinism or latency promises.
type Generator interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

type implUseCase struct {
	l         pkgLog.Logger
	resolver  intent.Resolver
	retriever knowledge.Retriever
	generator Generator
	store     *session.Store
	limiter   *ratelimit.Limiter
	metrics   *observability.Metrics

	maxKnowledgeResults int
}

// New creates a new inquiry UseCase instance. retriever and generator are
// the external collaborators; metrics may be nil.
func New(
	l pkgLog.Logger,
	resolver intent.Resolver,
	retriever knowledge.Retriever,
	generator Generator,
	store *session.Store,
	limiter *ratelimit.Limiter,
	metrics *observability.Metrics,
) *implUseCase {
	return &implUseCase{
		l:                   l,
		resolver:            resolver,
		retriever:           retriever,
		generator:           generator,
		store:               store,
		limiter:             limiter,
		metrics:             metrics,
		maxKnowledgeResults: inquiry.DefaultMaxKnowledgeResults,
	}
}

// WithMaxKnowledgeResults overrides the retrieval fan-out; zero keeps the
// default.
func (uc *implUseCase) WithMaxKnowledgeResults(n int) *implUseCase {
	if n > 0 {
		uc.maxKnowledgeResults = n
	}
	return uc
}
