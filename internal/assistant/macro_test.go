package assistant

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/aldenmarsh/fitcoach/internal/domain"
	"github.com/aldenmarsh/fitcoach/internal/llm"
)

func TestMacroGenerator_ParsesWellFormedResponse(t *testing.T) {
	g := NewMacroGenerator(textClient(`{"protein": 180, "calories": 2800, "fat": 80, "carbs": 320}`), zap.NewNop().Sugar())

	got, err := g.Generate(context.Background(), domain.GeneralInfo{Name: "Alex"}, []string{"Muscle Gain"})
	require.NoError(t, err)
	assert.Equal(t, domain.MacroTargets{Protein: 180, Calories: 2800, Fat: 80, Carbs: 320}, got)
}

func TestMacroGenerator_CodeFencedResponse(t *testing.T) {
	g := NewMacroGenerator(textClient("```json\n{\"protein\": 160, \"calories\": 2400, \"fat\": 65, \"carbs\": 280}\n```"), zap.NewNop().Sugar())

	got, err := g.Generate(context.Background(), domain.GeneralInfo{}, nil)
	require.NoError(t, err)
	assert.Equal(t, 160.0, got.Protein)
}

func TestMacroGenerator_UnparsableResponseUsesFallback(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"prose", "I recommend eating more protein."},
		{"negative values", `{"protein": -1, "calories": 2500, "fat": 70, "carbs": 300}`},
		{"missing fields", `{"protein": 150}`},
		{"empty", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewMacroGenerator(textClient(tt.text), zap.NewNop().Sugar())
			got, err := g.Generate(context.Background(), domain.GeneralInfo{}, nil)
			require.NoError(t, err)
			assert.Equal(t, domain.MacroTargets{Protein: 150, Calories: 2500, Fat: 70, Carbs: 300}, got)
		})
	}
}

func TestMacroGenerator_ProviderErrorPropagates(t *testing.T) {
	client := &fakeClient{
		generateFn: func(llm.GenerateRequest) (*llm.GenerateResponse, error) {
			return nil, llm.ErrProviderUnavailable
		},
	}
	g := NewMacroGenerator(client, zap.NewNop().Sugar())

	_, err := g.Generate(context.Background(), domain.GeneralInfo{}, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, llm.ErrProviderUnavailable))
}

func TestMacroGenerator_UsesMacroTask(t *testing.T) {
	client := textClient(`{"protein": 150, "calories": 2500, "fat": 70, "carbs": 300}`)
	g := NewMacroGenerator(client, zap.NewNop().Sugar())

	_, err := g.Generate(context.Background(), domain.GeneralInfo{Name: "Alex"}, []string{"Fat Loss"})
	require.NoError(t, err)
	require.Len(t, client.generateReqs, 1)
	assert.Equal(t, llm.TaskMacro, client.generateReqs[0].Task)
	assert.Contains(t, client.generateReqs[0].UserPrompt, "Fat Loss")
}
