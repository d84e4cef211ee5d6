package assistant

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aldenmarsh/fitcoach/internal/llm"
)

func TestRouter_ExactMatch(t *testing.T) {
	tests := []struct {
		name     string
		response string
		want     bool
	}{
		{"plain yes", "yes", true},
		{"capitalized", "Yes", true},
		{"padded", "  YES \n", true},
		{"plain no", "no", false},
		{"hedged reply", "No, yes it can", false},
		{"verbose yes", "yes, it requires arithmetic", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := NewRouter(textClient(tt.response))
			got, err := router.Route(context.Background(), "how much protein per day?")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRouter_SameQuestionSameDecision(t *testing.T) {
	router := NewRouter(textClient("yes"))
	for i := 0; i < 3; i++ {
		got, err := router.Route(context.Background(), "what is 2+2?")
		require.NoError(t, err)
		assert.True(t, got)
	}
}

func TestRouter_ProviderErrorPropagates(t *testing.T) {
	client := &fakeClient{
		generateFn: func(llm.GenerateRequest) (*llm.GenerateResponse, error) {
			return nil, llm.ErrProviderUnavailable
		},
	}
	router := NewRouter(client)
	_, err := router.Route(context.Background(), "question")
	require.Error(t, err)
	assert.True(t, errors.Is(err, llm.ErrProviderUnavailable))
}

func TestRouter_UsesRouteTask(t *testing.T) {
	client := textClient("no")
	router := NewRouter(client)
	_, err := router.Route(context.Background(), "question")
	require.NoError(t, err)
	require.Len(t, client.generateReqs, 1)
	assert.Equal(t, llm.TaskRoute, client.generateReqs[0].Task)
	assert.Equal(t, "question", client.generateReqs[0].UserPrompt)
}
