package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"case-assistant/internal/inquiry"
	"case-assistant/internal/knowledge"
	"case-assistant/internal/model"
	"case-assistant/internal/ratelimit"
	"case-assistant/internal/session"
	"case-assistant/pkg/llmprovider"
)

func newTestUseCase(t *testing.T, resolver *mockResolver, retriever *mockRetriever, generator *mockGenerator) (*implUseCase, *session.Store) {
	t.Helper()
	store := session.New(&mockLogger{}, session.Config{TTL: time.Hour, MaxHistory: 20})
	t.Cleanup(store.Close)
	limiter := ratelimit.New(100, time.Minute)
	return New(&mockLogger{}, resolver, retriever, generator, store, limiter, nil), store
}

func donateAnalysis(confidence float64) model.IntentAnalysis {
	return model.IntentAnalysis{
		Intent:        model.IntentDonate,
		Confidence:    confidence,
		EmotionalTone: model.ToneNeutral,
		Urgency:       model.UrgencyLow,
	}
}

func testFacts() model.CaseFacts {
	return model.CaseFacts{
		CaseID:        "case-1",
		Name:          "Luna",
		Species:       "perra",
		Status:        model.CaseStatusActive,
		GuardianAlias: "luna.rescate.mp",
		AlternateFund: "fondo.compartido",
	}
}

func TestProcessValidation(t *testing.T) {
	uc, _ := newTestUseCase(t,
		&mockResolver{analysis: donateAnalysis(0.9)},
		&mockRetriever{},
		&mockGenerator{resp: &llmprovider.Response{Text: "Gracias."}},
	)
	sc := model.Scope{UserID: "u1", ConversationID: "c1", Language: "es"}

	cases := []struct {
		name    string
		message string
		facts   model.CaseFacts
	}{
		{name: "empty message", message: "   ", facts: testFacts()},
		{name: "too long", message: strings.Repeat("a", inquiry.MaxMessageLength+1), facts: testFacts()},
		{name: "html markup", message: "hola <script>alert(1)</script>", facts: testFacts()},
		{name: "missing case id", message: "hola", facts: model.CaseFacts{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Process(context.Background(), sc, inquiry.ProcessInput{Message: tc.message, Facts: tc.facts})
			var verr *inquiry.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected *ValidationError, got %v", err)
			}
		})
	}
}

func TestProcessRateLimited(t *testing.T) {
	store := session.New(&mockLogger{}, session.Config{TTL: time.Hour})
	t.Cleanup(store.Close)
	generator := &mockGenerator{resp: &llmprovider.Response{Text: "Gracias."}}
	uc := New(&mockLogger{}, &mockResolver{analysis: donateAnalysis(0.9)}, &mockRetriever{}, generator,
		store, ratelimit.New(1, time.Minute), nil)
	sc := model.Scope{UserID: "u1", ConversationID: "c1"}

	if _, err := uc.Process(context.Background(), sc, inquiry.ProcessInput{Message: "hola", Facts: testFacts()}); err != nil {
		t.Fatalf("first request failed: %v", err)
	}

	_, err := uc.Process(context.Background(), sc, inquiry.ProcessInput{Message: "hola de nuevo", Facts: testFacts()})
	var exceeded *ratelimit.ExceededError
	if !errors.As(err, &exceeded) {
		t.Fatalf("expected *ratelimit.ExceededError, got %v", err)
	}
	if exceeded.RetryAfter <= 0 {
		t.Errorf("expected positive RetryAfter, got %s", exceeded.RetryAfter)
	}
	if generator.calls != 1 {
		t.Errorf("rejected request must not reach the generator, calls=%d", generator.calls)
	}
}

func TestProcessGenerationFailure(t *testing.T) {
	uc, store := newTestUseCase(t,
		&mockResolver{analysis: donateAnalysis(0.9)},
		&mockRetriever{},
		&mockGenerator{err: errors.New("all providers failed")},
	)
	sc := model.Scope{UserID: "u1", ConversationID: "c1", Language: "es"}

	out, err := uc.Process(context.Background(), sc, inquiry.ProcessInput{Message: "Quiero donar", Facts: testFacts()})
	if err != nil {
		t.Fatalf("generation failure must not be a hard error: %v", err)
	}
	if out.Success {
		t.Error("expected Success=false")
	}
	if out.ErrorCategory != inquiry.CategoryUpstream {
		t.Errorf("expected upstream category, got %s", out.ErrorCategory)
	}
	if out.Message != inquiry.Apology("es") {
		t.Errorf("expected localized apology, got %q", out.Message)
	}
	if sess, ok := store.Peek("c1"); ok && len(sess.Turns) > 0 {
		t.Errorf("failed pipeline must not commit turns, got %d", len(sess.Turns))
	}
}

func TestProcessDonateNoAmount(t *testing.T) {
	generator := &mockGenerator{resp: &llmprovider.Response{
		Text: "Gracias por querer ayudar a Luna. Podés transferir al alias luna.rescate.mp.",
	}}
	uc, store := newTestUseCase(t, &mockResolver{analysis: donateAnalysis(0.9)}, &mockRetriever{}, generator)
	sc := model.Scope{UserID: "u1", ConversationID: "c1", Language: "es"}

	out, err := uc.Process(context.Background(), sc, inquiry.ProcessInput{Message: "Quiero donar", Facts: testFacts()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.Success {
		t.Fatal("expected success")
	}
	if !out.Actions.ShowAmountPrompt {
		t.Error("expected ShowAmountPrompt=true")
	}
	if out.Actions.ShowPrimaryAlias {
		t.Error("expected ShowPrimaryAlias=false before an amount")
	}
	if strings.Contains(strings.ToLower(out.Message), "luna.rescate.mp") {
		t.Errorf("alias leaked before amount: %q", out.Message)
	}
	if !strings.HasSuffix(out.Message, "?") {
		t.Errorf("response must end with the amount question: %q", out.Message)
	}
	if out.Metadata.Intent != model.IntentDonate {
		t.Errorf("unexpected metadata intent: %s", out.Metadata.Intent)
	}

	sess, ok := store.Peek("c1")
	if !ok || len(sess.Turns) != 2 {
		t.Fatalf("expected 2 committed turns, got %v", sess.Turns)
	}
	if sess.Turns[0].Intent != model.IntentDonate {
		t.Errorf("user turn should carry the resolved intent, got %s", sess.Turns[0].Intent)
	}
}

func TestProcessDonateAfterAmount(t *testing.T) {
	generator := &mockGenerator{resp: &llmprovider.Response{
		Text: "Genial. Podés transferir al alias luna.rescate.mp.",
	}}
	uc, store := newTestUseCase(t, &mockResolver{analysis: donateAnalysis(0.95)}, &mockRetriever{}, generator)
	sc := model.Scope{UserID: "u1", ConversationID: "c1", Language: "es"}

	// Seed history: the amount was stated on a prior turn.
	sess, release := store.Acquire("c1")
	session.AppendTurn(&sess, model.Turn{Timestamp: time.Now(), Role: model.RoleUser, Text: "Quiero donar $500", Intent: model.IntentDonate})
	session.AppendTurn(&sess, model.Turn{Timestamp: time.Now(), Role: model.RoleAssistant, Text: "¿Cuánto te gustaría donar?"})
	store.Commit(sess)
	release()

	out, err := uc.Process(context.Background(), sc, inquiry.ProcessInput{Message: "Dale", Facts: testFacts()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.Actions.ShowPrimaryAlias {
		t.Error("expected ShowPrimaryAlias=true once the amount was stated")
	}
	if out.Actions.ShowAmountPrompt {
		t.Error("expected ShowAmountPrompt=false once the amount was stated")
	}
	if !strings.HasSuffix(out.Message, "¿Querés que te confirmemos cuando tu aporte quede verificado?") {
		t.Errorf("expected verification follow-up last: %q", out.Message)
	}
}

func TestProcessProfilePreferences(t *testing.T) {
	t.Run("remembered language fills in an undeclared request", func(t *testing.T) {
		generator := &mockGenerator{resp: &llmprovider.Response{Text: "Thanks for wanting to help."}}
		uc, store := newTestUseCase(t, &mockResolver{analysis: donateAnalysis(0.9)}, &mockRetriever{}, generator)
		store.RecordInteraction("u1", "en", "", time.Now())

		sc := model.Scope{UserID: "u1", ConversationID: "c1"}
		out, err := uc.Process(context.Background(), sc, inquiry.ProcessInput{Message: "I want to donate", Facts: testFacts()})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.HasSuffix(out.Message, "How much would you like to donate?") {
			t.Errorf("expected English governance strings from the profile preference: %q", out.Message)
		}
	})

	t.Run("declared language wins over the profile", func(t *testing.T) {
		generator := &mockGenerator{resp: &llmprovider.Response{Text: "Gracias por querer ayudar."}}
		uc, store := newTestUseCase(t, &mockResolver{analysis: donateAnalysis(0.9)}, &mockRetriever{}, generator)
		store.RecordInteraction("u1", "en", "", time.Now())

		sc := model.Scope{UserID: "u1", ConversationID: "c1", Language: "es"}
		out, err := uc.Process(context.Background(), sc, inquiry.ProcessInput{Message: "Quiero donar", Facts: testFacts()})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.HasSuffix(out.Message, "¿Cuánto te gustaría donar?") {
			t.Errorf("declared language should win: %q", out.Message)
		}
	})

	t.Run("register detected from the message is persisted", func(t *testing.T) {
		generator := &mockGenerator{resp: &llmprovider.Response{Text: "Gracias."}}
		uc, store := newTestUseCase(t, &mockResolver{analysis: donateAnalysis(0.9)}, &mockRetriever{}, generator)

		sc := model.Scope{UserID: "u2", ConversationID: "c2", Language: "es"}
		if _, err := uc.Process(context.Background(), sc, inquiry.ProcessInput{Message: "Dale, quiero donar che", Facts: testFacts()}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p := store.GetOrCreateProfile("u2"); p.CommunicationStyle != model.StyleCasual {
			t.Errorf("expected casual register on profile, got %q", p.CommunicationStyle)
		}
	})
}

func TestProcessKnowledgeDegradation(t *testing.T) {
	generator := &mockGenerator{resp: &llmprovider.Response{Text: "Gracias por escribir."}}
	uc, _ := newTestUseCase(t,
		&mockResolver{analysis: model.IntentAnalysis{Intent: model.IntentGeneral, Confidence: 0.5, EmotionalTone: model.ToneNeutral, Urgency: model.UrgencyLow}},
		&mockRetriever{err: errors.New("knowledge service down")},
		generator,
	)
	sc := model.Scope{UserID: "u1", ConversationID: "c1"}

	out, err := uc.Process(context.Background(), sc, inquiry.ProcessInput{Message: "hola", Facts: testFacts()})
	if err != nil {
		t.Fatalf("knowledge failure must degrade, not fail: %v", err)
	}
	if !out.Success {
		t.Error("expected success despite knowledge outage")
	}
	if generator.calls != 1 {
		t.Errorf("generator should still be called, calls=%d", generator.calls)
	}
}

func TestProcessPromptGrounding(t *testing.T) {
	generator := &mockGenerator{resp: &llmprovider.Response{Text: "Gracias."}}
	retriever := &mockRetriever{out: knowledge.RetrieveOutput{
		Chunks: []knowledge.Chunk{{ID: "k1", Title: "Donaciones", Content: "Siempre pedir el monto primero.", RuleHints: []string{"donation-flow"}}},
	}}
	uc, _ := newTestUseCase(t, &mockResolver{analysis: donateAnalysis(0.9)}, retriever, generator)
	sc := model.Scope{UserID: "u1", ConversationID: "c1", Language: "es"}

	if _, err := uc.Process(context.Background(), sc, inquiry.ProcessInput{Message: "Quiero donar", Facts: testFacts()}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	req := generator.lastReq
	if req == nil {
		t.Fatal("generator never called")
	}
	if !strings.Contains(req.SystemInstruction, "Luna") {
		t.Error("case facts missing from system instruction")
	}
	if !strings.Contains(req.SystemInstruction, "Siempre pedir el monto primero.") {
		t.Error("knowledge chunk missing from system instruction")
	}
	if len(req.Messages) == 0 || req.Messages[len(req.Messages)-1].Text != "Quiero donar" {
		t.Error("current message must be the last prompt message")
	}
}
