package assistant

import (
	"context"
	"errors"
	"fmt"

	"github.com/aldenmarsh/fitcoach/internal/domain"
	"github.com/aldenmarsh/fitcoach/internal/llm"
	"go.uber.org/zap"
)

// fallbackMacros is returned whenever the provider's output cannot be
// parsed as a macro document. The user is never blocked on a malformed AI
// response; these exact values are part of the contract.
var fallbackMacros = domain.MacroTargets{
	Protein:  150,
	Calories: 2500,
	Fat:      70,
	Carbs:    300,
}

// MacroGenerator produces a structured nutrient-target document from a
// profile and goal list via a one-shot completion.
type MacroGenerator struct {
	client llm.Client
	log    *zap.SugaredLogger
}

// NewMacroGenerator creates a MacroGenerator.
func NewMacroGenerator(client llm.Client, log *zap.SugaredLogger) *MacroGenerator {
	return &MacroGenerator{client: client, log: log}
}

// Generate returns recommended daily macro targets. Provider errors
// propagate; unparsable provider output yields the fixed fallback document.
func (g *MacroGenerator) Generate(ctx context.Context, general domain.GeneralInfo, goals []string) (domain.MacroTargets, error) {
	summary := ProfileSummary(&domain.Profile{General: general})

	resp, err := g.client.Generate(ctx, llm.GenerateRequest{
		Task:       llm.TaskMacro,
		UserPrompt: renderMacroPrompt(summary, goals),
	})
	if err != nil {
		return domain.MacroTargets{}, fmt.Errorf("generating macros: %w", err)
	}

	targets, err := llm.ExtractJSON[domain.MacroTargets](resp.Text, validateMacros)
	if err != nil {
		if errors.Is(err, llm.ErrInvalidOutput) {
			g.log.Warnw("unparsable macro response, using fallback", "error", err)
			return fallbackMacros, nil
		}
		return domain.MacroTargets{}, err
	}
	return targets, nil
}

func validateMacros(m domain.MacroTargets) error {
	if m.Protein <= 0 || m.Calories <= 0 || m.Fat <= 0 || m.Carbs <= 0 {
		return fmt.Errorf("all macro values must be positive, got %+v", m)
	}
	return nil
}
