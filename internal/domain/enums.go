package domain

// Genders lists the selectable gender labels, as shown in the profile form.
var Genders = []string{"Male", "Female", "Other"}

// ActivityLevels lists the selectable activity levels, least to most active.
var ActivityLevels = []string{
	"Sedentary",
	"Lightly Active",
	"Moderately Active",
	"Very Active",
	"Super Active",
}

// GoalOptions lists the selectable fitness goals.
var GoalOptions = []string{"Muscle Gain", "Fat Loss", "Stay Active"}
