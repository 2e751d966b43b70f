package knowledge

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client is the HTTP wrapper for the knowledge retrieval REST API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

var _ Retriever = (*Client)(nil)

// NewClient creates a new knowledge retrieval HTTP client.
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type retrieveRequest struct {
	Query      string `json:"query"`
	AgentType  string `json:"agent_type"`
	Audience   string `json:"audience,omitempty"`
	MaxResults int    `json:"max_results"`
}

// Retrieve fetches ranked knowledge snippets via POST /api/v1/retrieve.
func (c *Client) Retrieve(ctx context.Context, input RetrieveInput) (RetrieveOutput, error) {
	url := fmt.Sprintf("%s/api/v1/retrieve", c.baseURL)

	body, err := json.Marshal(retrieveRequest{
		Query:      input.Query,
		AgentType:  input.AgentType,
		Audience:   input.Audience,
		MaxResults: input.MaxResults,
	})
	if err != nil {
		return RetrieveOutput{}, fmt.Errorf("failed to marshal retrieve request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return RetrieveOutput{}, fmt.Errorf("failed to build retrieve request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		httpReq.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.apiKey))
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return RetrieveOutput{}, fmt.Errorf("failed to call knowledge API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return RetrieveOutput{}, fmt.Errorf("knowledge API error %d: %s", resp.StatusCode, string(raw))
	}

	var out RetrieveOutput
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return RetrieveOutput{}, fmt.Errorf("failed to decode knowledge response: %w", err)
	}
	return out, nil
}
