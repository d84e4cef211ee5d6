package assistant

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/aldenmarsh/fitcoach/internal/llm"
)

func toolCall(id, args string) llm.ToolCall {
	return llm.ToolCall{ID: id, Name: CalculatorToolName, Arguments: args}
}

func TestToolResponder_CalculatesThenAnswers(t *testing.T) {
	client := &fakeClient{chatScript: []chatStepResult{
		{resp: &llm.ChatResponse{ToolCalls: []llm.ToolCall{toolCall("c1", `{"expression":"2*3"}`)}}},
		{resp: &llm.ChatResponse{Text: "That works out to 6."}},
	}}
	r := NewToolResponder(client, zap.NewNop().Sugar())

	got, err := r.Respond(context.Background(), RespondRequest{Question: "what is 2*3?", UserName: "Alex"})
	require.NoError(t, err)
	assert.Equal(t, "That works out to 6.", got)

	// Second step must carry the assistant turn and the tool result.
	require.Len(t, client.chatReqs, 2)
	second := client.chatReqs[1].Messages
	require.GreaterOrEqual(t, len(second), 4)
	toolMsg := second[len(second)-1]
	assert.Equal(t, llm.RoleTool, toolMsg.Role)
	assert.Equal(t, "c1", toolMsg.ToolCallID)
	assert.Equal(t, "6", toolMsg.Content)
}

func TestToolResponder_MalformedArgumentsFedBack(t *testing.T) {
	client := &fakeClient{chatScript: []chatStepResult{
		{resp: &llm.ChatResponse{ToolCalls: []llm.ToolCall{toolCall("c1", `not json`)}}},
		{resp: &llm.ChatResponse{Text: "done"}},
	}}
	r := NewToolResponder(client, zap.NewNop().Sugar())

	got, err := r.Respond(context.Background(), RespondRequest{Question: "q"})
	require.NoError(t, err)
	assert.Equal(t, "done", got)

	toolMsg := client.chatReqs[1].Messages[len(client.chatReqs[1].Messages)-1]
	assert.Contains(t, toolMsg.Content, "Error: invalid tool arguments")
}

func TestToolResponder_UnknownToolFedBack(t *testing.T) {
	client := &fakeClient{chatScript: []chatStepResult{
		{resp: &llm.ChatResponse{ToolCalls: []llm.ToolCall{{ID: "c1", Name: "python", Arguments: "{}"}}}},
		{resp: &llm.ChatResponse{Text: "done"}},
	}}
	r := NewToolResponder(client, zap.NewNop().Sugar())

	_, err := r.Respond(context.Background(), RespondRequest{Question: "q"})
	require.NoError(t, err)

	toolMsg := client.chatReqs[1].Messages[len(client.chatReqs[1].Messages)-1]
	assert.Contains(t, toolMsg.Content, "unknown tool")
}

func TestToolResponder_IterationCapReturnsLastText(t *testing.T) {
	var script []chatStepResult
	for i := 0; i < maxToolIterations; i++ {
		script = append(script, chatStepResult{resp: &llm.ChatResponse{
			Text:      "partial thought",
			ToolCalls: []llm.ToolCall{toolCall("c", `{"expression":"1+1"}`)},
		}})
	}
	client := &fakeClient{chatScript: script}
	r := NewToolResponder(client, zap.NewNop().Sugar())

	got, err := r.Respond(context.Background(), RespondRequest{Question: "q"})
	require.NoError(t, err)
	assert.Equal(t, "partial thought", got)
	assert.Len(t, client.chatReqs, maxToolIterations)
}

func TestToolResponder_IterationCapWithoutTextUsesFallback(t *testing.T) {
	var script []chatStepResult
	for i := 0; i < maxToolIterations; i++ {
		script = append(script, chatStepResult{resp: &llm.ChatResponse{
			ToolCalls: []llm.ToolCall{toolCall("c", `{"expression":"1+1"}`)},
		}})
	}
	client := &fakeClient{chatScript: script}
	r := NewToolResponder(client, zap.NewNop().Sugar())

	got, err := r.Respond(context.Background(), RespondRequest{Question: "q"})
	require.NoError(t, err)
	assert.Equal(t, exhaustedFallback, got)
}

func TestToolResponder_ProviderErrorPropagates(t *testing.T) {
	client := &fakeClient{chatScript: []chatStepResult{
		{err: llm.ErrTimeout},
	}}
	r := NewToolResponder(client, zap.NewNop().Sugar())

	_, err := r.Respond(context.Background(), RespondRequest{Question: "q"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, llm.ErrTimeout))
}

func TestToolResponder_RegistersCalculatorTool(t *testing.T) {
	client := &fakeClient{chatScript: []chatStepResult{
		{resp: &llm.ChatResponse{Text: "no math needed after all"}},
	}}
	r := NewToolResponder(client, zap.NewNop().Sugar())

	_, err := r.Respond(context.Background(), RespondRequest{Question: "q"})
	require.NoError(t, err)
	require.Len(t, client.chatReqs, 1)
	require.Len(t, client.chatReqs[0].Tools, 1)
	assert.Equal(t, CalculatorToolName, client.chatReqs[0].Tools[0].Name)
	assert.Equal(t, llm.TaskToolAnswer, client.chatReqs[0].Task)
}
