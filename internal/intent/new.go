package intent

import (
	"context"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"case-assistant/internal/model"
	"case-assistant/internal/observability"
	pkgLog "case-assistant/pkg/log"
	"case-assistant/pkg/voyage"
)

// Resolver is the interface for intent resolution.
type Resolver interface {
	// Resolve classifies a message in the context of its session and profile.
	// It never returns an error: every degraded path falls back to a lower
	// confidence classification, worst case IntentGeneral at 0.1.
	Resolve(ctx context.Context, message string, sess *model.Session, profile *model.UserProfile) model.IntentAnalysis

	// Warmup precomputes the example-cluster embeddings so the first user
	// message does not pay the batch embedding cost.
	Warmup(ctx context.Context) error
}

// Config tunes the resolver.
type Config struct {
	Threshold      float64 // minimum accepted cosine similarity
	CacheSize      int
	CacheTTL       time.Duration
	EmbedCacheSize int
	EmbedCacheTTL  time.Duration
	EmbedTimeout   time.Duration
}

// SemanticResolver classifies user intent by embedding similarity with a
// keyword fallback.
type SemanticResolver struct {
	l        pkgLog.Logger
	embedder voyage.IVoyage // nil when no embedding provider is configured
	cfg      Config
	metrics  *observability.Metrics // nil-safe, optional

	// results keyed by normalized message text
	cache *expirable.LRU[string, model.IntentAnalysis]
	// embeddings keyed by canonical example text or normalized message
	embedCache *expirable.LRU[string, []float32]

	clusterMu sync.Mutex
	clusters  []exampleCluster // nil until first successful warmup
}

// Ensure SemanticResolver implements Resolver interface
var _ Resolver = (*SemanticResolver)(nil)

// New creates a new SemanticResolver. embedder may be nil, in which case
// classification always uses the keyword fallback.
func New(l pkgLog.Logger, embedder voyage.IVoyage, cfg Config) *SemanticResolver {
	if cfg.Threshold <= 0 {
		cfg.Threshold = DefaultThreshold
	}
	if cfg.CacheSize <= 0 {
		cfg.CacheSize = DefaultCacheSize
	}
	if cfg.EmbedCacheSize <= 0 {
		cfg.EmbedCacheSize = DefaultEmbedCacheSize
	}

	return &SemanticResolver{
		l:          l,
		embedder:   embedder,
		cfg:        cfg,
		cache:      expirable.NewLRU[string, model.IntentAnalysis](cfg.CacheSize, nil, cfg.CacheTTL),
		embedCache: expirable.NewLRU[string, []float32](cfg.EmbedCacheSize, nil, cfg.EmbedCacheTTL),
	}
}

// WithMetrics attaches the Prometheus instruments. Resolution still works
// without them.
func (r *SemanticResolver) WithMetrics(m *observability.Metrics) *SemanticResolver {
	r.metrics = m
	return r
}
