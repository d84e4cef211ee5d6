package llm

import "errors"

// TaskType identifies the kind of LLM task being performed. Each task gets
// its own generation parameters and timeout.
type TaskType string

const (
	// TaskRoute is the yes/no classification deciding whether a question
	// needs the calculator.
	TaskRoute TaskType = "route"
	// TaskAnswer is a direct conversational answer with no tool use.
	TaskAnswer TaskType = "answer"
	// TaskToolAnswer is one step of the tool-calling loop.
	TaskToolAnswer TaskType = "tool_answer"
	// TaskMacro is the one-shot macro target generation.
	TaskMacro TaskType = "macro"
)

// TaskConfig holds per-task generation parameters.
type TaskConfig struct {
	Temperature float64
	MaxTokens   int
	TimeoutMs   int // overrides global if > 0
}

// Config holds all configuration for the completion provider.
type Config struct {
	APIKey         string
	BaseURL        string
	Model          string
	EmbeddingModel string
	TimeoutMs      int
	LogCalls       bool
	Tasks          map[TaskType]TaskConfig
}

// ErrMissingAPIKey indicates no provider credential was configured. This is
// fatal at startup for any command that talks to the provider.
var ErrMissingAPIKey = errors.New("provider api key not configured")

// DefaultConfig returns a Config with defaults for an OpenAI-compatible
// hosted endpoint. The API key must still be supplied.
func DefaultConfig() Config {
	return Config{
		BaseURL:        "https://api.groq.com/openai/v1",
		Model:          "llama-3.3-70b-versatile",
		EmbeddingModel: "text-embedding-3-small",
		TimeoutMs:      30000,
		Tasks: map[TaskType]TaskConfig{
			TaskRoute:      {Temperature: 0.1, MaxTokens: 8, TimeoutMs: 10000},
			TaskAnswer:     {Temperature: 0.1, MaxTokens: 1024, TimeoutMs: 30000},
			TaskToolAnswer: {Temperature: 0.1, MaxTokens: 1024, TimeoutMs: 30000},
			TaskMacro:      {Temperature: 0.1, MaxTokens: 256, TimeoutMs: 15000},
		},
	}
}

// Validate checks that the configuration can produce a working client.
func (c Config) Validate() error {
	if c.APIKey == "" {
		return ErrMissingAPIKey
	}
	return nil
}

// TaskTimeout returns the effective timeout for a given task type. Uses the
// task-specific timeout if set, otherwise the global timeout.
func (c Config) TaskTimeout(task TaskType) int {
	if tc, ok := c.Tasks[task]; ok && tc.TimeoutMs > 0 {
		return tc.TimeoutMs
	}
	return c.TimeoutMs
}
