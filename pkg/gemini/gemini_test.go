package gemini_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"case-assistant/pkg/gemini"
)

func TestNewValidation(t *testing.T) {
	if _, err := gemini.New(gemini.Config{}); err == nil {
		t.Error("expected error for missing API key")
	}

	client, err := gemini.New(gemini.Config{APIKey: "test-key"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if client.Model() != gemini.DefaultModel {
		t.Errorf("expected default model %s, got %s", gemini.DefaultModel, client.Model())
	}
}

func TestGenerateContent(t *testing.T) {
	t.Run("success with role mapping", func(t *testing.T) {
		var captured map[string]any
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !strings.Contains(r.URL.Path, ":generateContent") {
				t.Errorf("unexpected path: %s", r.URL.Path)
			}
			if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
				t.Fatalf("failed to decode request: %v", err)
			}
			w.Write([]byte(`{
				"candidates": [{"content": {"role": "model", "parts": [{"text": "Hola, "}, {"text": "gracias por escribir."}]}}],
				"usageMetadata": {"promptTokenCount": 12, "candidatesTokenCount": 8, "totalTokenCount": 20}
			}`))
		}))
		defer srv.Close()

		client, err := gemini.New(gemini.Config{APIKey: "test-key", APIURL: srv.URL})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		resp, err := client.GenerateContent(context.Background(), &gemini.Request{
			SystemInstruction: "Sos un asistente.",
			Messages: []gemini.Message{
				{Role: "user", Text: "Hola"},
				{Role: "assistant", Text: "¡Hola!"},
				{Role: "user", Text: "¿Cómo dono?"},
			},
			Temperature: 0.7,
			MaxTokens:   256,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Text != "Hola, gracias por escribir." {
			t.Errorf("parts not concatenated: %q", resp.Text)
		}
		if resp.Usage.TotalTokens != 20 {
			t.Errorf("unexpected usage: %+v", resp.Usage)
		}

		contents := captured["contents"].([]any)
		second := contents[1].(map[string]any)
		if second["role"] != "model" {
			t.Errorf(`assistant role must map to "model", got %v`, second["role"])
		}
		if captured["system_instruction"] == nil {
			t.Error("system instruction missing from wire request")
		}
	})

	t.Run("api error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
			w.Write([]byte(`{"error": {"message": "quota exceeded"}}`))
		}))
		defer srv.Close()

		client, _ := gemini.New(gemini.Config{APIKey: "test-key", APIURL: srv.URL})
		_, err := client.GenerateContent(context.Background(), &gemini.Request{
			Messages: []gemini.Message{{Role: "user", Text: "Hola"}},
		})
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if !strings.Contains(err.Error(), "429") {
			t.Errorf("error should carry the status code: %v", err)
		}
	})
}
