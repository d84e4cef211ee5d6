package assistant

import (
	"context"

	"github.com/aldenmarsh/fitcoach/internal/llm"
)

// fakeClient is a scripted llm.Client for assistant tests. Generate replies
// come from generateFn; ChatStep replies are consumed from chatScript in
// order. All requests are recorded.
type fakeClient struct {
	generateFn func(req llm.GenerateRequest) (*llm.GenerateResponse, error)
	chatScript []chatStepResult
	embedFn    func(text string) ([]float32, error)

	generateReqs []llm.GenerateRequest
	chatReqs     []llm.ChatRequest
}

type chatStepResult struct {
	resp *llm.ChatResponse
	err  error
}

func (f *fakeClient) Generate(ctx context.Context, req llm.GenerateRequest) (*llm.GenerateResponse, error) {
	f.generateReqs = append(f.generateReqs, req)
	if f.generateFn == nil {
		return &llm.GenerateResponse{Text: ""}, nil
	}
	return f.generateFn(req)
}

func (f *fakeClient) ChatStep(ctx context.Context, req llm.ChatRequest) (*llm.ChatResponse, error) {
	f.chatReqs = append(f.chatReqs, req)
	if len(f.chatScript) == 0 {
		return &llm.ChatResponse{}, nil
	}
	step := f.chatScript[0]
	f.chatScript = f.chatScript[1:]
	return step.resp, step.err
}

func (f *fakeClient) Embed(ctx context.Context, text string) ([]float32, error) {
	if f.embedFn == nil {
		return []float32{1, 0, 0}, nil
	}
	return f.embedFn(text)
}

// textClient returns a fakeClient whose Generate always answers with text.
func textClient(text string) *fakeClient {
	return &fakeClient{
		generateFn: func(llm.GenerateRequest) (*llm.GenerateResponse, error) {
			return &llm.GenerateResponse{Text: text}, nil
		},
	}
}
