package testutil

import (
	"time"

	"github.com/aldenmarsh/fitcoach/internal/domain"
	"github.com/google/uuid"
)

// Profile options
type ProfileOption func(*domain.Profile)

func WithAge(age int) ProfileOption {
	return func(p *domain.Profile) {
		p.General.Age = &age
	}
}

func WithWeight(kg float64) ProfileOption {
	return func(p *domain.Profile) {
		p.General.Weight = &kg
	}
}

func WithHeight(cm float64) ProfileOption {
	return func(p *domain.Profile) {
		p.General.Height = &cm
	}
}

func WithGender(g string) ProfileOption {
	return func(p *domain.Profile) {
		p.General.Gender = g
	}
}

func WithActivityLevel(level string) ProfileOption {
	return func(p *domain.Profile) {
		p.General.ActivityLevel = level
	}
}

func WithGoals(goals ...string) ProfileOption {
	return func(p *domain.Profile) {
		p.Goals = goals
	}
}

func WithNutrition(calories, protein, fat, carbs float64) ProfileOption {
	return func(p *domain.Profile) {
		p.Nutrition = domain.NutritionTargets{
			Calories: &calories,
			Protein:  &protein,
			Fat:      &fat,
			Carbs:    &carbs,
		}
	}
}

func NewTestProfile(name string, opts ...ProfileOption) *domain.Profile {
	p := domain.NewProfile(uuid.New().String(), name)
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Note options
type NoteOption func(*domain.Note)

func WithIngestedAt(ts time.Time) NoteOption {
	return func(n *domain.Note) {
		n.IngestedAt = ts
	}
}

func WithEmbedding(emb []float32) NoteOption {
	return func(n *domain.Note) {
		n.Embedding = emb
	}
}

func NewTestNote(userID, text string, opts ...NoteOption) *domain.Note {
	n := &domain.Note{
		ID:         uuid.New().String(),
		UserID:     userID,
		Text:       text,
		IngestedAt: time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}
