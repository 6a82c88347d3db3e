package models

// RegisterRequest is the body of POST /api/auth/register.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// GenerateRequest is the body of POST /api/meals/generate. It carries the
// preference tuple the generator receives; the wire names are part of the
// public API contract and must not change.
type GenerateRequest struct {
	DietaryPreference DietaryPreference `json:"dietaryPreference"`
	Allergies         []string          `json:"allergies"`
	NutritionalGoal   NutritionalGoal   `json:"nutritionalGoal"`
	NumberOfMeals     int               `json:"numberOfMeals"`
	PreferredCuisine  string            `json:"preferredCuisine"`
}
