package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aldenmarsh/fitcoach/internal/db"
	"github.com/aldenmarsh/fitcoach/internal/domain"
	"github.com/aldenmarsh/fitcoach/internal/repository"
	"github.com/google/uuid"
)

// ErrEmptyName is returned when a profile lookup or creation is attempted
// with a blank name.
var ErrEmptyName = errors.New("profile name must not be empty")

type profileService struct {
	profiles repository.ProfileRepo
	uow      db.UnitOfWork
}

func NewProfileService(profiles repository.ProfileRepo, uow db.UnitOfWork) ProfileService {
	return &profileService{profiles: profiles, uow: uow}
}

// GetOrCreateByName returns the oldest profile with the given name, creating
// a fresh one when none exists. Names are matched exactly after trimming.
func (s *profileService) GetOrCreateByName(ctx context.Context, name string) (*domain.Profile, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}

	p, err := s.profiles.GetByName(ctx, name)
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	p = domain.NewProfile(uuid.New().String(), name)
	if err := s.profiles.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("creating profile %q: %w", name, err)
	}
	return p, nil
}

func (s *profileService) GetByName(ctx context.Context, name string) (*domain.Profile, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	return s.profiles.GetByName(ctx, name)
}

func (s *profileService) GetByID(ctx context.Context, id string) (*domain.Profile, error) {
	return s.profiles.GetByID(ctx, id)
}

func (s *profileService) ListNames(ctx context.Context) ([]string, error) {
	return s.profiles.ListNames(ctx)
}

func (s *profileService) SaveGeneral(ctx context.Context, id string, general domain.GeneralInfo) error {
	if strings.TrimSpace(general.Name) == "" {
		return ErrEmptyName
	}
	return s.profiles.UpdateGeneral(ctx, id, general)
}

func (s *profileService) SaveGoals(ctx context.Context, id string, goals []string) error {
	return s.profiles.UpdateGoals(ctx, id, goals)
}

func (s *profileService) SaveNutrition(ctx context.Context, id string, targets domain.NutritionTargets) error {
	return s.profiles.UpdateNutrition(ctx, id, targets)
}

// DeleteByName removes a profile and every note attached to it. Notes carry
// no foreign key to profiles, so the cascade runs explicitly inside one
// transaction.
func (s *profileService) DeleteByName(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}

	p, err := s.profiles.GetByName(ctx, name)
	if err != nil {
		return err
	}

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txProfiles := repository.NewSQLiteProfileRepo(tx)
		txNotes := repository.NewSQLiteNoteRepo(tx)

		if err := txNotes.DeleteByUser(ctx, p.ID); err != nil {
			return fmt.Errorf("deleting notes for profile %s: %w", p.ID, err)
		}
		return txProfiles.Delete(ctx, p.ID)
	})
}

// touchNow is shared by the note service for ingestion timestamps.
func touchNow() time.Time {
	return time.Now().UTC()
}
