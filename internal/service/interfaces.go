package service

import (
	"context"

	"github.com/aldenmarsh/fitcoach/internal/domain"
)

type ProfileService interface {
	GetOrCreateByName(ctx context.Context, name string) (*domain.Profile, error)
	GetByName(ctx context.Context, name string) (*domain.Profile, error)
	GetByID(ctx context.Context, id string) (*domain.Profile, error)
	ListNames(ctx context.Context) ([]string, error)
	SaveGeneral(ctx context.Context, id string, general domain.GeneralInfo) error
	SaveGoals(ctx context.Context, id string, goals []string) error
	SaveNutrition(ctx context.Context, id string, targets domain.NutritionTargets) error
	DeleteByName(ctx context.Context, name string) error
}

type NoteService interface {
	Add(ctx context.Context, userID string, text string) (*domain.Note, error)
	GetByID(ctx context.Context, id string) (*domain.Note, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Note, error)
	Delete(ctx context.Context, id string) error
}
