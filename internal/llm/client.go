package llm

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// Message is one turn of a provider conversation. ToolCalls is set on
// assistant turns that request tool use; ToolCallID is set on tool-result
// turns.
type Message struct {
	Role       string
	Content    string
	ToolCalls  []ToolCall
	ToolCallID string
}

// Message roles.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleTool      = "tool"
)

// ToolCall is a provider request to invoke a registered tool.
type ToolCall struct {
	ID        string
	Name      string
	Arguments string // raw JSON object
}

// ToolDef describes a tool the provider may invoke during a chat step.
type ToolDef struct {
	Name        string
	Description string
	Parameters  map[string]any // JSON schema
}

// GenerateRequest holds the parameters for a single completion call.
// History, when present, is injected between the system prompt and the
// user prompt in order (oldest first).
type GenerateRequest struct {
	Task         TaskType
	SystemPrompt string
	UserPrompt   string
	History      []Message
	Temperature  *float64 // nil uses task default
	MaxTokens    *int     // nil uses task default
}

// GenerateResponse holds the result of a single completion call.
type GenerateResponse struct {
	Text      string
	Model     string
	LatencyMs int64
}

// ChatRequest holds one step of a tool-calling conversation.
type ChatRequest struct {
	Task     TaskType
	Messages []Message
	Tools    []ToolDef
}

// ChatResponse is the provider's reply to one chat step: either final text
// or one or more tool calls to execute.
type ChatResponse struct {
	Text      string
	ToolCalls []ToolCall
	Model     string
	LatencyMs int64
}

// Client provides access to the completion provider. Implementations must
// be safe for reuse across sequential requests; construct once at process
// start. Every call is attempted exactly once; recovery policy belongs to
// the callers that have one.
type Client interface {
	// Generate sends a prompt and returns the raw text response.
	Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error)

	// ChatStep performs one step of a tool-calling conversation.
	ChatStep(ctx context.Context, req ChatRequest) (*ChatResponse, error)

	// Embed returns the embedding vector for the given text.
	Embed(ctx context.Context, text string) ([]float32, error)
}

// openaiClient implements Client against an OpenAI-compatible HTTP API.
type openaiClient struct {
	cfg      Config
	api      *openai.Client
	observer Observer
}

// NewClient creates a Client for the configured OpenAI-compatible endpoint.
func NewClient(cfg Config, observer Observer) Client {
	if observer == nil {
		observer = NoopObserver{}
	}
	apiCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		apiCfg.BaseURL = cfg.BaseURL
	}
	return &openaiClient{
		cfg:      cfg,
		api:      openai.NewClientWithConfig(apiCfg),
		observer: observer,
	}
}

func (c *openaiClient) Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	start := time.Now()

	taskCfg := c.cfg.Tasks[req.Task]
	temp := taskCfg.Temperature
	if req.Temperature != nil {
		temp = *req.Temperature
	}
	maxTok := taskCfg.MaxTokens
	if req.MaxTokens != nil {
		maxTok = *req.MaxTokens
	}

	ctx, cancel := c.taskContext(ctx, req.Task)
	defer cancel()

	messages := make([]openai.ChatCompletionMessage, 0, len(req.History)+2)
	if req.SystemPrompt != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: req.SystemPrompt,
		})
	}
	for _, m := range req.History {
		messages = append(messages, toAPIMessage(m))
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: req.UserPrompt,
	})

	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.cfg.Model,
		Messages:    messages,
		Temperature: float32(temp),
		MaxTokens:   maxTok,
	})
	latency := time.Since(start).Milliseconds()
	if err != nil {
		mapped := c.mapError(ctx, err)
		c.report(req.Task, latency, mapped)
		return nil, mapped
	}
	if len(resp.Choices) == 0 {
		c.report(req.Task, latency, ErrEmptyResponse)
		return nil, ErrEmptyResponse
	}

	c.report(req.Task, latency, nil)
	return &GenerateResponse{
		Text:      resp.Choices[0].Message.Content,
		Model:     resp.Model,
		LatencyMs: latency,
	}, nil
}

func (c *openaiClient) ChatStep(ctx context.Context, req ChatRequest) (*ChatResponse, error) {
	start := time.Now()
	taskCfg := c.cfg.Tasks[req.Task]

	ctx, cancel := c.taskContext(ctx, req.Task)
	defer cancel()

	messages := make([]openai.ChatCompletionMessage, 0, len(req.Messages))
	for _, m := range req.Messages {
		messages = append(messages, toAPIMessage(m))
	}

	tools := make([]openai.Tool, 0, len(req.Tools))
	for _, t := range req.Tools {
		tools = append(tools, openai.Tool{
			Type: openai.ToolTypeFunction,
			Function: &openai.FunctionDefinition{
				Name:        t.Name,
				Description: t.Description,
				Parameters:  t.Parameters,
			},
		})
	}

	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.cfg.Model,
		Messages:    messages,
		Temperature: float32(taskCfg.Temperature),
		MaxTokens:   taskCfg.MaxTokens,
		Tools:       tools,
	})
	latency := time.Since(start).Milliseconds()
	if err != nil {
		mapped := c.mapError(ctx, err)
		c.report(req.Task, latency, mapped)
		return nil, mapped
	}
	if len(resp.Choices) == 0 {
		c.report(req.Task, latency, ErrEmptyResponse)
		return nil, ErrEmptyResponse
	}

	choice := resp.Choices[0].Message
	out := &ChatResponse{
		Text:      choice.Content,
		Model:     resp.Model,
		LatencyMs: latency,
	}
	for _, tc := range choice.ToolCalls {
		out.ToolCalls = append(out.ToolCalls, ToolCall{
			ID:        tc.ID,
			Name:      tc.Function.Name,
			Arguments: tc.Function.Arguments,
		})
	}

	c.report(req.Task, latency, nil)
	return out, nil
}

func (c *openaiClient) Embed(ctx context.Context, text string) ([]float32, error) {
	ctx, cancel := context.WithTimeout(ctx, time.Duration(c.cfg.TimeoutMs)*time.Millisecond)
	defer cancel()

	resp, err := c.api.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Input: []string{text},
		Model: openai.EmbeddingModel(c.cfg.EmbeddingModel),
	})
	if err != nil {
		return nil, c.mapError(ctx, err)
	}
	if len(resp.Data) == 0 || len(resp.Data[0].Embedding) == 0 {
		return nil, fmt.Errorf("embeddings: %w", ErrEmptyResponse)
	}
	return resp.Data[0].Embedding, nil
}

func (c *openaiClient) taskContext(ctx context.Context, task TaskType) (context.Context, context.CancelFunc) {
	timeoutMs := c.cfg.TaskTimeout(task)
	return context.WithTimeout(ctx, time.Duration(timeoutMs)*time.Millisecond)
}

// mapError folds transport failures into the package error taxonomy so
// callers can branch with errors.Is.
func (c *openaiClient) mapError(ctx context.Context, err error) error {
	if ctx.Err() != nil {
		return fmt.Errorf("%w: %v", ErrTimeout, ctx.Err())
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
	}
	return err
}

func (c *openaiClient) report(task TaskType, latencyMs int64, err error) {
	event := CallEvent{
		Task:      task,
		Model:     c.cfg.Model,
		LatencyMs: latencyMs,
		Success:   err == nil,
	}
	if err != nil {
		event.ErrorCode = errorCode(err)
	}
	c.observer.OnCallComplete(event)
}

func toAPIMessage(m Message) openai.ChatCompletionMessage {
	out := openai.ChatCompletionMessage{
		Role:       m.Role,
		Content:    m.Content,
		ToolCallID: m.ToolCallID,
	}
	for _, tc := range m.ToolCalls {
		out.ToolCalls = append(out.ToolCalls, openai.ToolCall{
			ID:   tc.ID,
			Type: openai.ToolTypeFunction,
			Function: openai.FunctionCall{
				Name:      tc.Name,
				Arguments: tc.Arguments,
			},
		})
	}
	return out
}

func errorCode(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrTimeout):
		return "TIMEOUT"
	case errors.Is(err, ErrProviderUnavailable):
		return "UNAVAILABLE"
	case errors.Is(err, ErrInvalidOutput):
		return "INVALID_OUTPUT"
	case errors.Is(err, ErrEmptyResponse):
		return "EMPTY_RESPONSE"
	default:
		return "UNKNOWN"
	}
}
