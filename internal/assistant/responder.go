package assistant

import (
	"context"
	"fmt"

	"github.com/aldenmarsh/fitcoach/internal/domain"
	"github.com/aldenmarsh/fitcoach/internal/llm"
)

// RespondRequest carries everything a responder needs to answer a question.
type RespondRequest struct {
	Question       string
	ProfileSummary string
	NotesText      string
	History        []domain.Turn
	UserName       string
}

// GeneralResponder answers questions with a single completion call, no tool
// use. The conversation history is injected verbatim, oldest turn first.
type GeneralResponder struct {
	client llm.Client
}

// NewGeneralResponder creates a GeneralResponder.
func NewGeneralResponder(client llm.Client) *GeneralResponder {
	return &GeneralResponder{client: client}
}

func (r *GeneralResponder) Respond(ctx context.Context, req RespondRequest) (string, error) {
	resp, err := r.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskAnswer,
		SystemPrompt: renderPrompt(generalSystemPrompt, req.UserName, req.ProfileSummary, req.NotesText),
		UserPrompt:   req.Question,
		History:      historyMessages(req.History),
	})
	if err != nil {
		return "", fmt.Errorf("generating answer: %w", err)
	}
	return resp.Text, nil
}

// historyMessages converts conversation turns to provider messages,
// preserving order.
func historyMessages(history []domain.Turn) []llm.Message {
	msgs := make([]llm.Message, 0, len(history))
	for _, t := range history {
		role := llm.RoleUser
		if t.Role == domain.RoleAssistant {
			role = llm.RoleAssistant
		}
		msgs = append(msgs, llm.Message{Role: role, Content: t.Text})
	}
	return msgs
}
