package llm

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type macroDoc struct {
	Protein  float64 `json:"protein"`
	Calories float64 `json:"calories"`
}

func TestExtractJSON_BareObject(t *testing.T) {
	got, err := ExtractJSON[macroDoc](`{"protein": 150, "calories": 2500}`, nil)
	require.NoError(t, err)
	assert.Equal(t, 150.0, got.Protein)
	assert.Equal(t, 2500.0, got.Calories)
}

func TestExtractJSON_CodeFenced(t *testing.T) {
	raw := "```json\n{\"protein\": 150, \"calories\": 2500}\n```"
	got, err := ExtractJSON[macroDoc](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, 150.0, got.Protein)
}

func TestExtractJSON_SurroundingProse(t *testing.T) {
	raw := `Here are your targets: {"protein": 150, "calories": 2500} - enjoy!`
	got, err := ExtractJSON[macroDoc](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, 2500.0, got.Calories)
}

func TestExtractJSON_BracesInsideStrings(t *testing.T) {
	type doc struct {
		Note string `json:"note"`
	}
	raw := `{"note": "use {curly} braces and a \" quote"}`
	got, err := ExtractJSON[doc](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, `use {curly} braces and a " quote`, got.Note)
}

func TestExtractJSON_NestedObject(t *testing.T) {
	type inner struct {
		A int `json:"a"`
	}
	type outer struct {
		In inner `json:"in"`
	}
	got, err := ExtractJSON[outer](`{"in": {"a": 7}}`, nil)
	require.NoError(t, err)
	assert.Equal(t, 7, got.In.A)
}

func TestExtractJSON_NoObject(t *testing.T) {
	_, err := ExtractJSON[macroDoc]("no json here", nil)
	assert.True(t, errors.Is(err, ErrInvalidOutput))
}

func TestExtractJSON_UnbalancedObject(t *testing.T) {
	_, err := ExtractJSON[macroDoc](`{"protein": 150`, nil)
	assert.True(t, errors.Is(err, ErrInvalidOutput))
}

func TestExtractJSON_MalformedJSON(t *testing.T) {
	_, err := ExtractJSON[macroDoc](`{protein: 150}`, nil)
	assert.True(t, errors.Is(err, ErrInvalidOutput))
}

func TestExtractJSON_ValidatorRejects(t *testing.T) {
	validator := func(d macroDoc) error {
		if d.Protein <= 0 {
			return fmt.Errorf("protein must be positive")
		}
		return nil
	}
	_, err := ExtractJSON[macroDoc](`{"protein": 0, "calories": 2500}`, validator)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidOutput))

	got, err := ExtractJSON[macroDoc](`{"protein": 1, "calories": 2500}`, validator)
	require.NoError(t, err)
	assert.Equal(t, 1.0, got.Protein)
}
