package assistant

import (
	"context"
	"fmt"
	"strings"

	"github.com/aldenmarsh/fitcoach/internal/llm"
)

// Router classifies a question as arithmetic-requiring or general with one
// constrained completion call.
type Router struct {
	client llm.Client
}

// NewRouter creates a Router backed by the given client.
func NewRouter(client llm.Client) *Router {
	return &Router{client: client}
}

// Route returns true when the question requires the calculator. The
// decision is an exact match of the trimmed, lowercased response against
// "yes"; anything else, including hedged replies like "No, yes it can",
// routes to the general responder. Provider errors propagate to the caller;
// there is no default branch on failure.
func (r *Router) Route(ctx context.Context, question string) (bool, error) {
	resp, err := r.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskRoute,
		SystemPrompt: routeSystemPrompt,
		UserPrompt:   question,
	})
	if err != nil {
		return false, fmt.Errorf("routing question: %w", err)
	}
	return strings.ToLower(strings.TrimSpace(resp.Text)) == "yes", nil
}
