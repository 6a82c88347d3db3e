package models

import "time"

// DietaryPreference enumerates the dietary profiles a user can choose from.
type DietaryPreference string

// Supported dietary preferences. DietOmnivore is the registration default.
const (
	DietOmnivore    DietaryPreference = "omnivore"
	DietVegetarian  DietaryPreference = "vegetarian"
	DietVegan       DietaryPreference = "vegan"
	DietKeto        DietaryPreference = "keto"
	DietGlutenFree  DietaryPreference = "gluten-free"
	DietPescatarian DietaryPreference = "pescatarian"
	DietOther       DietaryPreference = "other"
)

// Valid reports whether d is one of the supported dietary preferences.
func (d DietaryPreference) Valid() bool {
	switch d {
	case DietOmnivore, DietVegetarian, DietVegan, DietKeto, DietGlutenFree, DietPescatarian, DietOther:
		return true
	}
	return false
}

// NutritionalGoal enumerates the nutrition targets a user can pursue.
type NutritionalGoal string

// Supported nutritional goals. GoalMaintenance is the registration default.
const (
	GoalMaintenance NutritionalGoal = "maintenance"
	GoalWeightLoss  NutritionalGoal = "weight-loss"
	GoalMuscleGain  NutritionalGoal = "muscle-gain"
	GoalOther       NutritionalGoal = "other"
)

// Valid reports whether g is one of the supported nutritional goals.
func (g NutritionalGoal) Valid() bool {
	switch g {
	case GoalMaintenance, GoalWeightLoss, GoalMuscleGain, GoalOther:
		return true
	}
	return false
}

// User represents an account entity used for authentication and for seeding
// meal-plan generation with dietary preferences.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"id"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// Email is the unique user identifier used during authentication.
	Email string `json:"email"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// This value MUST be a derived value, never plaintext, and is never
	// serialized to JSON.
	PasswordHash string `json:"-"`

	// DietaryPreference is the user's chosen dietary profile.
	DietaryPreference DietaryPreference `json:"dietaryPreference"`

	// Allergies lists free-text allergy entries.
	Allergies []string `json:"allergies"`

	// NutritionalGoal is the user's chosen nutrition target.
	NutritionalGoal NutritionalGoal `json:"nutritionalGoal"`

	// PreferredCuisine is free text; defaults to "any" at registration.
	PreferredCuisine string `json:"preferredCuisine"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// PublicUser is the minimal identity shape returned alongside issued tokens.
type PublicUser struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Public returns the minimal identity view of the user.
func (u User) Public() PublicUser {
	return PublicUser{ID: u.UserID, Name: u.Name, Email: u.Email}
}

// ProfileUpdate describes a partial update of a user's profile.
// Only non-nil fields are applied; a nil field leaves the stored value
// unchanged. Distinguishing "absent" from "explicitly empty" at the type
// level is deliberate: a truthiness check cannot express that difference.
type ProfileUpdate struct {
	// UserID is the owner of the profile to update. Required.
	UserID int64 `json:"-"`

	// Name is the new display name. If nil, the field will not be updated.
	Name *string `json:"name,omitempty"`

	// Email is the new unique email. If nil, the field will not be updated.
	Email *string `json:"email,omitempty"`

	// DietaryPreference is the new dietary profile.
	// If nil, the field will not be updated.
	DietaryPreference *DietaryPreference `json:"dietaryPreference,omitempty"`

	// Allergies replaces the stored allergy list.
	// If nil, the field will not be updated.
	Allergies *[]string `json:"allergies,omitempty"`

	// NutritionalGoal is the new nutrition target.
	// If nil, the field will not be updated.
	NutritionalGoal *NutritionalGoal `json:"nutritionalGoal,omitempty"`

	// PreferredCuisine is the new cuisine preference.
	// If nil, the field will not be updated.
	PreferredCuisine *string `json:"preferredCuisine,omitempty"`
}

// Empty reports whether the update carries no fields to apply.
func (p ProfileUpdate) Empty() bool {
	return p.Name == nil &&
		p.Email == nil &&
		p.DietaryPreference == nil &&
		p.Allergies == nil &&
		p.NutritionalGoal == nil &&
		p.PreferredCuisine == nil
}
