package intent

import (
	"context"
	"fmt"

	"case-assistant/internal/model"
	"case-assistant/internal/observability"
)

// Resolve classifies a message. Resolution order:
//  1. cached result for the normalized message
//  2. context carry-over for short affirmations
//  3. embedding similarity against per-intent example clusters
//  4. keyword fallback
//
// Carry-over results are session-dependent and therefore never cached; the
// cache holds only context-free classifications.
func (r *SemanticResolver) Resolve(ctx context.Context, message string, sess *model.Session, profile *model.UserProfile) model.IntentAnalysis {
	normalized := normalize(message)
	if normalized == "" {
		r.metrics.CountIntentResolution(observability.ResolutionFallback)
		return r.finish(message, model.IntentGeneral, FallbackConfidence)
	}

	if intent, ok := carryOver(normalized, sess); ok {
		r.l.Infof(ctx, "%s: carry-over affirmation resolved to %s", LogPrefixResolve, intent)
		r.metrics.CountIntentResolution(observability.ResolutionCarryOver)
		return r.finish(message, intent, CarryOverConfidence)
	}

	if cached, ok := r.cache.Get(normalized); ok {
		r.metrics.CountIntentResolution(observability.ResolutionCache)
		return cached
	}

	if analysis, ok := r.resolveSemantic(ctx, message, normalized); ok {
		r.metrics.CountIntentResolution(observability.ResolutionSemantic)
		r.cache.Add(normalized, analysis)
		return analysis
	}

	analysis := r.resolveKeyword(ctx, message, normalized)
	r.cache.Add(normalized, analysis)
	return analysis
}

// resolveSemantic classifies by embedding similarity. ok=false when the
// embedding provider is unavailable, errored, or no cluster cleared the
// threshold.
func (r *SemanticResolver) resolveSemantic(ctx context.Context, message, normalized string) (model.IntentAnalysis, bool) {
	if r.embedder == nil {
		return model.IntentAnalysis{}, false
	}

	clusters, err := r.ensureClusters(ctx)
	if err != nil {
		r.l.Warnf(ctx, "%s: example clusters unavailable, falling back to keywords: %v", LogPrefixResolve, err)
		return model.IntentAnalysis{}, false
	}

	vec, err := r.embed(ctx, normalized)
	if err != nil {
		r.l.Warnf(ctx, "%s: embedding failed, falling back to keywords: %v", LogPrefixResolve, err)
		return model.IntentAnalysis{}, false
	}

	best := model.IntentGeneral
	bestScore := 0.0
	for _, c := range clusters {
		score := clusterSimilarity(vec, c.vectors)
		if score > bestScore {
			best = c.intent
			bestScore = score
		}
	}

	if bestScore < r.cfg.Threshold {
		r.l.Debugf(ctx, "%s: best similarity %.3f below threshold %.3f", LogPrefixResolve, bestScore, r.cfg.Threshold)
		return model.IntentAnalysis{}, false
	}

	confidence := bestScore
	if confidence > ConfidenceCap {
		confidence = ConfidenceCap
	}

	r.l.Infof(ctx, "%s: classified as %s (similarity %.3f)", LogPrefixResolve, best, bestScore)
	return r.finish(message, best, confidence), true
}

// resolveKeyword is the degraded-mode path.
func (r *SemanticResolver) resolveKeyword(ctx context.Context, message, normalized string) model.IntentAnalysis {
	if intent, ok := keywordIntent(normalized); ok {
		r.l.Infof(ctx, "%s: keyword fallback classified as %s", LogPrefixResolve, intent)
		r.metrics.CountIntentResolution(observability.ResolutionKeyword)
		return r.finish(message, intent, KeywordConfidence)
	}
	r.metrics.CountIntentResolution(observability.ResolutionFallback)
	return r.finish(message, model.IntentGeneral, FallbackConfidence)
}

// finish attaches tone, urgency and suggested actions.
func (r *SemanticResolver) finish(message string, intent model.Intent, confidence float64) model.IntentAnalysis {
	return model.IntentAnalysis{
		Intent:           intent,
		Confidence:       confidence,
		SuggestedActions: suggestedActions[string(intent)],
		EmotionalTone:    detectTone(message),
		Urgency:          detectUrgency(message),
	}
}

// embed fetches a message embedding through the cache.
func (r *SemanticResolver) embed(ctx context.Context, normalized string) ([]float32, error) {
	if vec, ok := r.embedCache.Get(normalized); ok {
		return vec, nil
	}

	if r.cfg.EmbedTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.cfg.EmbedTimeout)
		defer cancel()
	}

	vecs, err := r.embedder.Embed(ctx, []string{normalized})
	if err != nil {
		return nil, err
	}
	if len(vecs) != 1 {
		return nil, fmt.Errorf("expected 1 embedding, got %d", len(vecs))
	}

	r.embedCache.Add(normalized, vecs[0])
	return vecs[0], nil
}

// Warmup precomputes the example-cluster embeddings.
func (r *SemanticResolver) Warmup(ctx context.Context) error {
	if r.embedder == nil {
		return nil // keyword-only mode
	}
	_, err := r.ensureClusters(ctx)
	return err
}

// ensureClusters lazily embeds all canonical example phrases in one batch.
func (r *SemanticResolver) ensureClusters(ctx context.Context) ([]exampleCluster, error) {
	r.clusterMu.Lock()
	defer r.clusterMu.Unlock()

	if r.clusters != nil {
		return r.clusters, nil
	}

	var texts []string
	for _, e := range intentExamples {
		for _, p := range e.phrases {
			texts = append(texts, normalize(p))
		}
	}

	// One batch call; individual vectors also land in the embed cache so a
	// later cache flush can refill cheaply.
	vecs, err := r.embedder.Embed(ctx, texts)
	if err != nil {
		return nil, fmt.Errorf("embedding example phrases: %w", err)
	}
	if len(vecs) != len(texts) {
		return nil, fmt.Errorf("expected %d embeddings, got %d", len(texts), len(vecs))
	}

	clusters := make([]exampleCluster, 0, len(intentExamples))
	i := 0
	for _, e := range intentExamples {
		c := exampleCluster{intent: e.intent, phrases: e.phrases}
		for range e.phrases {
			r.embedCache.Add(texts[i], vecs[i])
			c.vectors = append(c.vectors, vecs[i])
			i++
		}
		clusters = append(clusters, c)
	}

	r.clusters = clusters
	return clusters, nil
}
