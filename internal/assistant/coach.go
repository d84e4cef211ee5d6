// Package assistant implements the question-answering core: context
// assembly, arithmetic/general routing, the two responders, the calculator
// capability and macro recommendation generation.
package assistant

import (
	"context"
	"errors"
	"strings"

	"github.com/aldenmarsh/fitcoach/internal/domain"
	"go.uber.org/zap"
)

// ErrEmptyQuestion is returned when a question is blank. Validation happens
// before any provider call.
var ErrEmptyQuestion = errors.New("question must not be empty")

// Coach answers fitness questions using a profile and note context. One
// instance serves the whole process; construct once and reuse.
type Coach struct {
	assembler *Assembler
	router    *Router
	tools     *ToolResponder
	general   *GeneralResponder
	log       *zap.SugaredLogger
}

// NewCoach wires the assistant pipeline.
func NewCoach(assembler *Assembler, router *Router, tools *ToolResponder, general *GeneralResponder, log *zap.SugaredLogger) *Coach {
	return &Coach{
		assembler: assembler,
		router:    router,
		tools:     tools,
		general:   general,
		log:       log,
	}
}

// Ask answers one question. Control flow: assemble (profile summary, notes
// text), route, then dispatch to the tool-using or general responder. The
// caller owns the conversation history and appends the new turns itself.
func (c *Coach) Ask(ctx context.Context, question string, profile *domain.Profile, history []domain.Turn) (string, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return "", ErrEmptyQuestion
	}

	summary, notes := c.assembler.Assemble(ctx, question, profile)

	needsMath, err := c.router.Route(ctx, question)
	if err != nil {
		return "", err
	}
	c.log.Debugw("routed question", "needs_math", needsMath)

	req := RespondRequest{
		Question:       question,
		ProfileSummary: summary,
		NotesText:      notes,
		History:        history,
		UserName:       profile.DisplayName(),
	}
	if needsMath {
		return c.tools.Respond(ctx, req)
	}
	return c.general.Respond(ctx, req)
}
