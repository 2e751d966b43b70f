// Package knowledge is the client side of the knowledge retrieval service,
// an external collaborator. Retrieved chunks ground the generator prompt and
// drive the response governor's rule selection via structured RuleHints —
// the governor never matches on chunk titles.
package knowledge

import "context"

// Retriever fetches ranked knowledge snippets for a query.
type Retriever interface {
	Retrieve(ctx context.Context, input RetrieveInput) (RetrieveOutput, error)
}

// RetrieveInput selects what to retrieve.
type RetrieveInput struct {
	Query      string
	AgentType  string // consuming agent, e.g. "case-assistant"
	Audience   string // optional audience tag, e.g. "donor"
	MaxResults int
}

// Chunk is one ranked knowledge snippet.
type Chunk struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Content   string   `json:"content"`
	RuleHints []string `json:"rule_hints"` // governance tags, e.g. "help-seeking"
}

// RetrieveOutput is the ranked retrieval result.
type RetrieveOutput struct {
	Chunks     []Chunk `json:"chunks"`
	Confidence float64 `json:"confidence"`
}

// Hints flattens the rule hints of all chunks, preserving order and
// dropping duplicates.
func (o RetrieveOutput) Hints() []string {
	seen := make(map[string]bool)
	var hints []string
	for _, c := range o.Chunks {
		for _, h := range c.RuleHints {
			if !seen[h] {
				seen[h] = true
				hints = append(hints, h)
			}
		}
	}
	return hints
}
