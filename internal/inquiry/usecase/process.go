package usecase

import (
	"context"
	"regexp"
	"strings"
	"time"

	"case-assistant/internal/governor"
	"case-assistant/internal/inquiry"
	"case-assistant/internal/knowledge"
	"case-assistant/internal/model"
	"case-assistant/internal/planner"
	"case-assistant/internal/session"
)

var htmlTag = regexp.MustCompile(`<[^>]+>`)

// Process runs one user message through the full pipeline. Session state is
// committed only after the whole pipeline succeeds; a failed generation
// leaves the conversation exactly as it was.
func (uc *implUseCase) Process(ctx context.Context, sc model.Scope, input inquiry.ProcessInput) (inquiry.ProcessOutput, error) {
	start := time.Now()

	message := strings.TrimSpace(input.Message)
	if err := validate(message, input.Facts); err != nil {
		return inquiry.ProcessOutput{}, err
	}

	if err := uc.limiter.EnforceLimit(sc.UserID); err != nil {
		uc.metrics.CountRateLimited()
		uc.l.Warnf(ctx, "inquiry.Process: user=%s rate limited", sc.UserID)
		return inquiry.ProcessOutput{}, err
	}

	profile := uc.store.GetOrCreateProfile(sc.UserID)
	lang := requestLanguage(sc, &profile)

	sess, release := uc.store.Acquire(sc.ConversationID)
	defer release()

	analysis := uc.resolver.Resolve(ctx, message, &sess, &profile)
	uc.l.Infof(ctx, "inquiry.Process: user=%s intent=%s confidence=%.2f tone=%s",
		sc.UserID, analysis.Intent, analysis.Confidence, analysis.EmotionalTone)

	amountStated := planner.AmountStated(message, &sess)
	plan := planner.Plan(analysis.Intent, message, &sess, input.Facts)

	chunks, hints := uc.retrieveKnowledge(ctx, message)

	draft, err := uc.generator.GenerateContent(ctx, buildPrompt(lang, message, analysis, &sess, &profile, input.Facts, chunks))
	if err != nil {
		uc.metrics.CountUpstreamFailure("generation")
		uc.metrics.CountInquiry(string(analysis.Intent), "generation_failed")
		uc.l.Errorf(ctx, "inquiry.Process: generation failed for user=%s: %v", sc.UserID, err)
		return inquiry.ProcessOutput{
			Success:       false,
			Message:       inquiry.Apology(lang),
			ErrorCategory: inquiry.CategoryUpstream,
			Metadata:      metadata(analysis, start),
		}, nil
	}

	final := governor.Govern(governor.Input{
		Draft:        draft.Text,
		Intent:       analysis.Intent,
		Language:     lang,
		UserMessage:  strings.ToLower(message),
		AmountStated: amountStated,
		AliasShown:   plan.ShowPrimaryAlias || plan.ShowAlternateAlias,
		Facts:        input.Facts,
		Hints:        hints,
	})

	now := time.Now()
	session.AppendTurn(&sess, model.Turn{Timestamp: now, Role: model.RoleUser, Text: message, Intent: analysis.Intent})
	session.AppendTurn(&sess, model.Turn{Timestamp: now, Role: model.RoleAssistant, Text: final})
	sess.ContextSummary = contextSummary(&sess)
	uc.store.Commit(sess)
	uc.store.RecordInteraction(sc.UserID, sc.Language, model.StyleFor(message), now)

	uc.metrics.CountInquiry(string(analysis.Intent), "success")
	uc.metrics.ObserveProcessing(time.Since(start))

	return inquiry.ProcessOutput{
		Success:  true,
		Message:  final,
		Actions:  plan,
		Metadata: metadata(analysis, start),
	}, nil
}

// requestLanguage prefers the language declared on the request, then the
// profile's remembered preference, defaulting to Spanish. Only declared
// languages are ever recorded back onto the profile.
func requestLanguage(sc model.Scope, profile *model.UserProfile) string {
	if sc.Language != "" {
		return sc.Language
	}
	if profile.PreferredLanguage != "" {
		return profile.PreferredLanguage
	}
	return "es"
}

func validate(message string, facts model.CaseFacts) error {
	if message == "" {
		return inquiry.ErrMessageEmpty
	}
	if len(message) > inquiry.MaxMessageLength {
		return inquiry.ErrMessageTooLong
	}
	if htmlTag.MatchString(message) {
		return inquiry.ErrMessageMarkup
	}
	if err := facts.Validate(); err != nil {
		return &inquiry.ValidationError{Field: "case_facts", Reason: err.Error()}
	}
	return nil
}

// retrieveKnowledge degrades to empty hints on failure; the governor then
// runs with default rules instead of failing the request.
func (uc *implUseCase) retrieveKnowledge(ctx context.Context, message string) ([]knowledge.Chunk, []string) {
	out, err := uc.retriever.Retrieve(ctx, knowledge.RetrieveInput{
		Query:      message,
		AgentType:  inquiry.AgentType,
		MaxResults: uc.maxKnowledgeResults,
	})
	if err != nil {
		uc.metrics.CountUpstreamFailure("knowledge")
		uc.l.Warnf(ctx, "inquiry.retrieveKnowledge: degraded to empty hints: %v", err)
		return nil, nil
	}
	return out.Chunks, out.Hints()
}

// contextSummary keeps a compact rolling note of what the conversation has
// been about, for prompt grounding on long sessions.
func contextSummary(sess *model.Session) string {
	var topics []string
	seen := make(map[model.Intent]bool)
	turns := sess.UserTurns()
	for i := len(turns) - 1; i >= 0 && len(topics) < 3; i-- {
		in := turns[i].Intent
		if in == "" || in == model.IntentGeneral || seen[in] {
			continue
		}
		seen[in] = true
		topics = append(topics, string(in))
	}
	if len(topics) == 0 {
		return ""
	}
	return "recent topics: " + strings.Join(topics, ", ")
}

func metadata(analysis model.IntentAnalysis, start time.Time) inquiry.Metadata {
	return inquiry.Metadata{
		Intent:           analysis.Intent,
		Confidence:       analysis.Confidence,
		EmotionalTone:    analysis.EmotionalTone,
		Urgency:          analysis.Urgency,
		ProcessingTimeMs: time.Since(start).Milliseconds(),
	}
}
