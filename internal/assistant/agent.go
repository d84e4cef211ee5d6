package assistant

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aldenmarsh/fitcoach/internal/llm"
	"go.uber.org/zap"
)

// maxToolIterations caps the tool-calling loop. Exceeding the cap returns
// best-effort output instead of looping forever.
const maxToolIterations = 15

// exhaustedFallback is returned when the loop hits the iteration cap
// without the model ever producing answer text.
const exhaustedFallback = "I wasn't able to finish working that out. Please try rephrasing your question."

// ToolResponder answers arithmetic-requiring questions via a bounded agent
// loop in which the model may invoke the calculator, observe its textual
// result, and either invoke again or produce a final answer.
type ToolResponder struct {
	client llm.Client
	calc   Calculator
	log    *zap.SugaredLogger
}

// NewToolResponder creates a ToolResponder.
func NewToolResponder(client llm.Client, log *zap.SugaredLogger) *ToolResponder {
	return &ToolResponder{client: client, log: log}
}

// calculatorArgs is the expected argument shape of a calculator tool call.
type calculatorArgs struct {
	Expression string `json:"expression"`
}

func (r *ToolResponder) Respond(ctx context.Context, req RespondRequest) (string, error) {
	messages := []llm.Message{{
		Role:    llm.RoleSystem,
		Content: renderPrompt(toolSystemPrompt, req.UserName, req.ProfileSummary, req.NotesText),
	}}
	messages = append(messages, historyMessages(req.History)...)
	messages = append(messages, llm.Message{Role: llm.RoleUser, Content: req.Question})

	tools := []llm.ToolDef{r.calc.Def()}

	var lastText string
	for i := 0; i < maxToolIterations; i++ {
		step, err := r.client.ChatStep(ctx, llm.ChatRequest{
			Task:     llm.TaskToolAnswer,
			Messages: messages,
			Tools:    tools,
		})
		if err != nil {
			return "", fmt.Errorf("agent step %d: %w", i+1, err)
		}

		if len(step.ToolCalls) == 0 {
			if step.Text != "" {
				return step.Text, nil
			}
			// Empty step with no tool calls; keep going up to the cap.
			continue
		}
		if step.Text != "" {
			lastText = step.Text
		}

		messages = append(messages, llm.Message{
			Role:      llm.RoleAssistant,
			Content:   step.Text,
			ToolCalls: step.ToolCalls,
		})
		for _, tc := range step.ToolCalls {
			messages = append(messages, llm.Message{
				Role:       llm.RoleTool,
				Content:    r.execute(tc),
				ToolCallID: tc.ID,
			})
		}
	}

	r.log.Warnw("tool loop hit iteration cap", "iterations", maxToolIterations)
	if lastText != "" {
		return lastText, nil
	}
	return exhaustedFallback, nil
}

// execute runs one tool call. Malformed calls produce an error string fed
// back into the loop, so the model can correct itself on the next step
// rather than aborting the conversation.
func (r *ToolResponder) execute(tc llm.ToolCall) string {
	if tc.Name != CalculatorToolName {
		return fmt.Sprintf("Error: unknown tool %q", tc.Name)
	}
	var args calculatorArgs
	if err := json.Unmarshal([]byte(tc.Arguments), &args); err != nil {
		return fmt.Sprintf("Error: invalid tool arguments: %v", err)
	}
	return r.calc.Evaluate(args.Expression)
}
