package repository

import (
	"context"
	"errors"

	"github.com/aldenmarsh/fitcoach/internal/domain"
)

// ErrNotFound is returned when a lookup matches no row. Callers treat it as
// an absence, not a failure.
var ErrNotFound = errors.New("not found")

type ProfileRepo interface {
	Create(ctx context.Context, p *domain.Profile) error
	GetByID(ctx context.Context, id string) (*domain.Profile, error)
	// GetByName matches the trimmed name exactly. Name acts as a soft
	// unique key: the first match wins, no uniqueness constraint exists.
	GetByName(ctx context.Context, name string) (*domain.Profile, error)
	ListNames(ctx context.Context) ([]string, error)
	UpdateGeneral(ctx context.Context, id string, g domain.GeneralInfo) error
	UpdateGoals(ctx context.Context, id string, goals []string) error
	UpdateNutrition(ctx context.Context, id string, n domain.NutritionTargets) error
	// Delete returns ErrNotFound when no profile has the given id.
	Delete(ctx context.Context, id string) error
}

type NoteRepo interface {
	Create(ctx context.Context, n *domain.Note) error
	GetByID(ctx context.Context, id string) (*domain.Note, error)
	// ListByUser returns the user's notes ordered by ingestion timestamp
	// descending (newest first).
	ListByUser(ctx context.Context, userID string) ([]*domain.Note, error)
	// Delete returns ErrNotFound when no note has the given id.
	Delete(ctx context.Context, id string) error
	// DeleteByUser removes every note owned by the given profile id,
	// succeeding even when the user has none. Used by the profile
	// deletion cascade.
	DeleteByUser(ctx context.Context, userID string) error
}
