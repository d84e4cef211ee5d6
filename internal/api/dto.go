package api

import (
	"time"

	"github.com/aldenmarsh/fitcoach/internal/domain"
)

type generalPayload struct {
	Name          string   `json:"name"`
	Age           *int     `json:"age"`
	Weight        *float64 `json:"weight"`
	Height        *float64 `json:"height"`
	Gender        string   `json:"gender"`
	ActivityLevel string   `json:"activity_level"`
}

type nutritionPayload struct {
	Calories *float64 `json:"calories"`
	Protein  *float64 `json:"protein"`
	Fat      *float64 `json:"fat"`
	Carbs    *float64 `json:"carbs"`
}

type profilePayload struct {
	ID        string           `json:"id"`
	General   generalPayload   `json:"general"`
	Goals     []string         `json:"goals"`
	Nutrition nutritionPayload `json:"nutrition"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

type notePayload struct {
	ID         string    `json:"id"`
	Text       string    `json:"text"`
	IngestedAt time.Time `json:"ingested_at"`
}

type turnPayload struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

func toGeneralPayload(g domain.GeneralInfo) generalPayload {
	return generalPayload{
		Name:          g.Name,
		Age:           g.Age,
		Weight:        g.Weight,
		Height:        g.Height,
		Gender:        g.Gender,
		ActivityLevel: g.ActivityLevel,
	}
}

func (p generalPayload) toDomain() domain.GeneralInfo {
	return domain.GeneralInfo{
		Name:          p.Name,
		Age:           p.Age,
		Weight:        p.Weight,
		Height:        p.Height,
		Gender:        p.Gender,
		ActivityLevel: p.ActivityLevel,
	}
}

func toNutritionPayload(n domain.NutritionTargets) nutritionPayload {
	return nutritionPayload{Calories: n.Calories, Protein: n.Protein, Fat: n.Fat, Carbs: n.Carbs}
}

func (p nutritionPayload) toDomain() domain.NutritionTargets {
	return domain.NutritionTargets{Calories: p.Calories, Protein: p.Protein, Fat: p.Fat, Carbs: p.Carbs}
}

func toProfilePayload(p *domain.Profile) profilePayload {
	return profilePayload{
		ID:        p.ID,
		General:   toGeneralPayload(p.General),
		Goals:     p.Goals,
		Nutrition: toNutritionPayload(p.Nutrition),
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func toNotePayload(n *domain.Note) notePayload {
	return notePayload{ID: n.ID, Text: n.Text, IngestedAt: n.IngestedAt}
}

func toTurns(payloads []turnPayload) []domain.Turn {
	turns := make([]domain.Turn, 0, len(payloads))
	for _, t := range payloads {
		turns = append(turns, domain.Turn{Role: domain.Role(t.Role), Text: t.Text})
	}
	return turns
}
