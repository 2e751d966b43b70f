package usecase

import (
	"context"

	"case-assistant/internal/knowledge"
	"case-assistant/internal/model"
	"case-assistant/pkg/llmprovider"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// Mock intent resolver returning a fixed analysis
type mockResolver struct {
	analysis model.IntentAnalysis
}

func (m *mockResolver) Resolve(ctx context.Context, message string, sess *model.Session, profile *model.UserProfile) model.IntentAnalysis {
	return m.analysis
}

func (m *mockResolver) Warmup(ctx context.Context) error { return nil }

// Mock knowledge retriever
type mockRetriever struct {
	out knowledge.RetrieveOutput
	err error
}

func (m *mockRetriever) Retrieve(ctx context.Context, input knowledge.RetrieveInput) (knowledge.RetrieveOutput, error) {
	return m.out, m.err
}

// Mock generator capturing the last request
type mockGenerator struct {
	resp    *llmprovider.Response
	err     error
	lastReq *llmprovider.Request
	calls   int
}

func (m *mockGenerator) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	m.lastReq = req
	m.calls++
	return m.resp, m.err
}
