package domain

import "time"

// GeneralInfo holds the demographic portion of a profile. Every field is
// optional until the user saves it; pointer fields distinguish "never set"
// from a zero value.
type GeneralInfo struct {
	Name          string
	Age           *int
	Weight        *float64 // kilograms
	Height        *float64 // centimeters
	Gender        string
	ActivityLevel string
}

// NutritionTargets holds the daily macro targets of a profile.
type NutritionTargets struct {
	Calories *float64
	Protein  *float64
	Fat      *float64
	Carbs    *float64
}

// Profile is one user's persisted record. The ID is assigned once at
// creation and never changes. Field groups (general, goals, nutrition) are
// saved independently of each other.
type Profile struct {
	ID        string
	General   GeneralInfo
	Goals     []string
	Nutrition NutritionTargets
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewProfile returns a profile with only the name set and everything else
// empty, matching first-contact creation semantics.
func NewProfile(id, name string) *Profile {
	now := time.Now().UTC()
	return &Profile{
		ID:        id,
		General:   GeneralInfo{Name: name},
		Goals:     []string{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// DisplayName returns the profile's name, or "there" when no name is set.
// Responder prompts address the user by this value.
func (p *Profile) DisplayName() string {
	if p == nil || p.General.Name == "" {
		return "there"
	}
	return p.General.Name
}
