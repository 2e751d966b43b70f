package llmprovider_test

import (
	"context"
	"errors"
	"testing"
	"time"

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

// mockProvider is a func-field mock for Provider
type mockProvider struct {
	name     string
	generate func(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
	calls    int
}

func (p *mockProvider) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	p.calls++
	return p.generate(ctx, req)
}

func (p *mockProvider) Name() string  { return p.name }
func (p *mockProvider) Model() string { return p.name + "-model" }

func TestManagerGenerateContent(t *testing.T) {
	req := &llmprovider.Request{
		Messages: []llmprovider.Message{{Role: "user", Text: "hola"}},
	}

	t.Run("First Provider Succeeds", func(t *testing.T) {
		primary := &mockProvider{
			name: "primary",
			generate: func(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
				return &llmprovider.Response{Text: "respuesta"}, nil
			},
		}
		secondary := &mockProvider{
			name: "secondary",
			generate: func(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
				return nil, errors.New("should not be called")
			},
		}
		m := llmprovider.NewManager(
			[]llmprovider.Provider{primary, secondary},
			&llmprovider.Config{FallbackEnabled: true, RetryAttempts: 1},
			&mockLogger{},
		)

		resp, err := m.GenerateContent(context.Background(), req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Text != "respuesta" {
			t.Errorf("unexpected response text: %q", resp.Text)
		}
		if secondary.calls != 0 {
			t.Errorf("secondary provider should not have been called")
		}
	})

	t.Run("Fallback To Second Provider", func(t *testing.T) {
		primary := &mockProvider{
			name: "primary",
			generate: func(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
				return nil, errors.New("primary down")
			},
		}
		secondary := &mockProvider{
			name: "secondary",
			generate: func(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
				return &llmprovider.Response{Text: "fallback"}, nil
			},
		}
		m := llmprovider.NewManager(
			[]llmprovider.Provider{primary, secondary},
			&llmprovider.Config{FallbackEnabled: true, RetryAttempts: 1},
			&mockLogger{},
		)

		resp, err := m.GenerateContent(context.Background(), req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Text != "fallback" {
			t.Errorf("expected fallback response, got %q", resp.Text)
		}
	})

	t.Run("Fallback Disabled Stops After First", func(t *testing.T) {
		primary := &mockProvider{
			name: "primary",
			generate: func(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
				return nil, errors.New("primary down")
			},
		}
		secondary := &mockProvider{
			name: "secondary",
			generate: func(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
				return &llmprovider.Response{Text: "fallback"}, nil
			},
		}
		m := llmprovider.NewManager(
			[]llmprovider.Provider{primary, secondary},
			&llmprovider.Config{FallbackEnabled: false, RetryAttempts: 1},
			&mockLogger{},
		)

		_, err := m.GenerateContent(context.Background(), req)
		if !errors.Is(err, llmprovider.ErrAllProvidersFailed) {
			t.Fatalf("expected ErrAllProvidersFailed, got %v", err)
		}
		if secondary.calls != 0 {
			t.Errorf("secondary provider should not have been called with fallback disabled")
		}
	})

	t.Run("Retry Then Succeed", func(t *testing.T) {
		attempts := 0
		flaky := &mockProvider{
			name: "flaky",
			generate: func(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
				attempts++
				if attempts < 2 {
					return nil, errors.New("transient")
				}
				return &llmprovider.Response{Text: "ok"}, nil
			},
		}
		m := llmprovider.NewManager(
			[]llmprovider.Provider{flaky},
			&llmprovider.Config{RetryAttempts: 3, RetryDelay: time.Millisecond},
			&mockLogger{},
		)

		resp, err := m.GenerateContent(context.Background(), req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Text != "ok" || attempts != 2 {
			t.Errorf("expected success on second attempt, got text=%q attempts=%d", resp.Text, attempts)
		}
	})

	t.Run("No Providers", func(t *testing.T) {
		m := llmprovider.NewManager(nil, &llmprovider.Config{}, &mockLogger{})
		_, err := m.GenerateContent(context.Background(), req)
		if !errors.Is(err, llmprovider.ErrNoProvidersConfigured) {
			t.Fatalf("expected ErrNoProvidersConfigured, got %v", err)
		}
	})
}
