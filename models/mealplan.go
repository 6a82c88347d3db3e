package models

import "time"

// MealType enumerates the slot a generated meal occupies within a day.
type MealType string

// Supported meal types. MealLunch is the default when a type is unspecified.
const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
	MealSnack     MealType = "snack"
)

// Meal is a single generated meal entry inside a plan.
type Meal struct {
	// Name is the display name of the meal.
	Name string `json:"name"`

	// Description is a short human-readable summary.
	Description string `json:"description"`

	// Ingredients is the ordered ingredient list; order matters because the
	// grocery list preserves first-occurrence order across meals.
	Ingredients []string `json:"ingredients"`

	// PrepTime is free text, e.g. "10 minutes".
	PrepTime string `json:"prepTime"`

	// Calories is the meal's caloric content in kcal.
	Calories int `json:"calories"`

	// Protein, Carbs and Fat are macro amounts in grams.
	Protein int `json:"protein"`
	Carbs   int `json:"carbs"`
	Fat     int `json:"fat"`

	// MealType is the slot the meal occupies (breakfast/lunch/dinner/snack).
	MealType MealType `json:"mealType"`
}

// GroceryList buckets every ingredient encountered across a plan's meals into
// five fixed categories. Each bucket preserves insertion order and retains
// duplicate entries (one per occurrence across meals).
type GroceryList struct {
	Produce  []string `json:"produce"`
	Grains   []string `json:"grains"`
	Proteins []string `json:"proteins"`
	Dairy    []string `json:"dairy"`
	Pantry   []string `json:"pantry"`
}

// MealPlan is a persisted, immutable plan bound to the user who generated it.
// Read access is restricted to the owner.
type MealPlan struct {
	// PlanID is the internal unique identifier of the plan.
	PlanID int64 `json:"id"`

	// UserID is the owner the plan is bound to at creation.
	UserID int64 `json:"-"`

	// User is the minimal identity of the owner, populated on reads.
	User PublicUser `json:"user"`

	// The four generation inputs plus the requested meal count, recorded
	// verbatim as supplied by the caller.
	DietaryPreference DietaryPreference `json:"dietaryPreference"`
	Allergies         []string          `json:"allergies"`
	NutritionalGoal   NutritionalGoal   `json:"nutritionalGoal"`
	NumberOfMeals     int               `json:"numberOfMeals"`
	PreferredCuisine  string            `json:"preferredCuisine"`

	// Meals is the ordered generated meal sequence.
	Meals []Meal `json:"meals"`

	// GroceryList is the categorised ingredient list derived from Meals.
	GroceryList GroceryList `json:"groceryList"`

	// CreatedAt is the timestamp when the plan was generated and stored.
	CreatedAt time.Time `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the MealPlan model.
func (m MealPlan) TableName() string {
	return "meal_plans"
}
