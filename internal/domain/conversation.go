package domain

// Role identifies the author of a conversation turn.
type Role string

const (
	RoleHuman     Role = "human"
	RoleAssistant Role = "assistant"
)

// Turn is one ephemeral (role, text) pair of a conversation. Turns live in
// session memory only and are never persisted.
type Turn struct {
	Role Role
	Text string
}

// MacroTargets is the structured result of macro recommendation generation.
type MacroTargets struct {
	Protein  float64 `json:"protein"`
	Calories float64 `json:"calories"`
	Fat      float64 `json:"fat"`
	Carbs    float64 `json:"carbs"`
}
