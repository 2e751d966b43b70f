package knowledge_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"case-assistant/internal/knowledge"
)

func TestClientRetrieve(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/api/v1/retrieve" {
				t.Errorf("unexpected path: %s", r.URL.Path)
			}
			if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
				t.Errorf("unexpected authorization header: %s", got)
			}
			var req map[string]any
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				t.Fatalf("failed to decode request: %v", err)
			}
			if req["query"] != "como dono" {
				t.Errorf("unexpected query: %v", req["query"])
			}
			json.NewEncoder(w).Encode(knowledge.RetrieveOutput{
				Chunks: []knowledge.Chunk{
					{ID: "k1", Title: "Donations", Content: "Use the alias.", RuleHints: []string{"donation-flow"}},
					{ID: "k2", Title: "Verification", Content: "Cases are vetted.", RuleHints: []string{"donation-flow", "verification"}},
				},
				Confidence: 0.91,
			})
		}))
		defer srv.Close()

		client := knowledge.NewClient(srv.URL, "test-key", 2*time.Second)
		out, err := client.Retrieve(context.Background(), knowledge.RetrieveInput{
			Query:      "como dono",
			AgentType:  "case-assistant",
			MaxResults: 3,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Chunks) != 2 {
			t.Fatalf("expected 2 chunks, got %d", len(out.Chunks))
		}
		hints := out.Hints()
		if len(hints) != 2 || hints[0] != "donation-flow" || hints[1] != "verification" {
			t.Errorf("unexpected hints: %v", hints)
		}
	})

	t.Run("api error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte(`{"error":"index rebuilding"}`))
		}))
		defer srv.Close()

		client := knowledge.NewClient(srv.URL, "test-key", 2*time.Second)
		_, err := client.Retrieve(context.Background(), knowledge.RetrieveInput{Query: "hola"})
		if err == nil {
			t.Fatal("expected error, got nil")
		}
	})

	t.Run("context cancelled", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(100 * time.Millisecond)
		}))
		defer srv.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		client := knowledge.NewClient(srv.URL, "", 2*time.Second)
		_, err := client.Retrieve(ctx, knowledge.RetrieveInput{Query: "hola"})
		if err == nil {
			t.Fatal("expected error, got nil")
		}
	})
}
