package service

import (
	"context"
	"errors"
	"strings"

	"github.com/aldenmarsh/fitcoach/internal/domain"
	"github.com/aldenmarsh/fitcoach/internal/repository"
	"github.com/aldenmarsh/fitcoach/internal/vector"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrEmptyNote is returned when note ingestion is attempted with blank text.
var ErrEmptyNote = errors.New("note text must not be empty")

type noteService struct {
	notes    repository.NoteRepo
	embedder vector.Embedder
	log      *zap.SugaredLogger
}

// NewNoteService builds the note ingestion service. embedder may be nil, in
// which case notes are stored without embeddings and similarity search falls
// back to recency.
func NewNoteService(notes repository.NoteRepo, embedder vector.Embedder, log *zap.SugaredLogger) NoteService {
	return &noteService{notes: notes, embedder: embedder, log: log}
}

// Add stores a note for the given user. The embedding is computed best
// effort: a provider failure downgrades the note to recency-only retrieval
// instead of failing ingestion.
func (s *noteService) Add(ctx context.Context, userID string, text string) (*domain.Note, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyNote
	}

	n := &domain.Note{
		ID:         uuid.New().String(),
		UserID:     userID,
		Text:       text,
		IngestedAt: touchNow(),
	}

	if s.embedder != nil {
		emb, err := s.embedder.Embed(ctx, text)
		if err != nil {
			s.log.Warnw("embedding note failed, storing without vector", "note_id", n.ID, "error", err)
		} else {
			n.Embedding = emb
		}
	}

	if err := s.notes.Create(ctx, n); err != nil {
		return nil, err
	}
	return n, nil
}

func (s *noteService) GetByID(ctx context.Context, id string) (*domain.Note, error) {
	return s.notes.GetByID(ctx, id)
}

func (s *noteService) ListByUser(ctx context.Context, userID string) ([]*domain.Note, error) {
	return s.notes.ListByUser(ctx, userID)
}

func (s *noteService) Delete(ctx context.Context, id string) error {
	return s.notes.Delete(ctx, id)
}
