package llm

import "errors"

var (
	// ErrProviderUnavailable indicates the completion provider could not
	// be reached.
	ErrProviderUnavailable = errors.New("completion provider unavailable")

	// ErrTimeout indicates the request exceeded the configured timeout.
	ErrTimeout = errors.New("llm request timed out")

	// ErrInvalidOutput indicates the LLM response could not be parsed
	// into the expected structured format.
	ErrInvalidOutput = errors.New("invalid llm output format")

	// ErrEmptyResponse indicates the provider returned no choices.
	ErrEmptyResponse = errors.New("provider returned empty response")
)
