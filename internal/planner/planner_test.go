package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vivek7557/meal-pre-ai-agent/models"
)

func generateRequest(numberOfMeals int) models.GenerateRequest {
	return models.GenerateRequest{
		DietaryPreference: models.DietVegetarian,
		Allergies:         []string{"peanuts"},
		NutritionalGoal:   models.GoalWeightLoss,
		NumberOfMeals:     numberOfMeals,
		PreferredCuisine:  "mediterranean",
	}
}

func TestGenerate_MealTypeSequence(t *testing.T) {
	tests := []struct {
		name     string
		count    int
		expected []models.MealType
	}{
		{
			name:     "single meal",
			count:    1,
			expected: []models.MealType{models.MealBreakfast},
		},
		{
			name:  "full cycle",
			count: 4,
			expected: []models.MealType{
				models.MealBreakfast, models.MealLunch, models.MealDinner, models.MealSnack,
			},
		},
		{
			name:  "wraps around after four",
			count: 5,
			expected: []models.MealType{
				models.MealBreakfast, models.MealLunch, models.MealDinner, models.MealSnack,
				models.MealBreakfast,
			},
		},
		{
			name:  "two weeks of meals",
			count: 14,
			expected: []models.MealType{
				models.MealBreakfast, models.MealLunch, models.MealDinner, models.MealSnack,
				models.MealBreakfast, models.MealLunch, models.MealDinner, models.MealSnack,
				models.MealBreakfast, models.MealLunch, models.MealDinner, models.MealSnack,
				models.MealBreakfast, models.MealLunch,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := Generate(generateRequest(tt.count))

			require.Len(t, plan.Meals, tt.count)
			for i, meal := range plan.Meals {
				assert.Equal(t, tt.expected[i], meal.MealType, "meal %d", i)
			}
		})
	}
}

func TestGenerate_FixedTemplatePerType(t *testing.T) {
	plan := Generate(generateRequest(4))
	require.Len(t, plan.Meals, 4)

	breakfast := plan.Meals[0]
	assert.Equal(t, "Mediterranean Breakfast Bowl", breakfast.Name)
	assert.Equal(t, []string{"Greek yogurt", "Honey", "Mixed berries", "Almonds"}, breakfast.Ingredients)
	assert.Equal(t, "10 minutes", breakfast.PrepTime)
	assert.Equal(t, 320, breakfast.Calories)
	assert.Equal(t, 18, breakfast.Protein)
	assert.Equal(t, 28, breakfast.Carbs)
	assert.Equal(t, 16, breakfast.Fat)

	dinner := plan.Meals[2]
	assert.Equal(t, "Herb-Crusted Salmon with Roasted Vegetables", dinner.Name)
	assert.Equal(t, 520, dinner.Calories)

	snack := plan.Meals[3]
	assert.Equal(t, "Mediterranean Hummus with Veggies", snack.Name)
	assert.Equal(t, 180, snack.Calories)
}

// TestGenerate_IgnoresPreferenceInputs pins the as-built behavior: only the
// meal count affects the output, never the other request fields.
func TestGenerate_IgnoresPreferenceInputs(t *testing.T) {
	base := Generate(generateRequest(6))

	other := Generate(models.GenerateRequest{
		DietaryPreference: models.DietVegan,
		Allergies:         []string{"shellfish", "dairy"},
		NutritionalGoal:   models.GoalMuscleGain,
		NumberOfMeals:     6,
		PreferredCuisine:  "japanese",
	})

	assert.Equal(t, base, other)
}

func TestGenerate_Deterministic(t *testing.T) {
	first := Generate(generateRequest(7))
	second := Generate(generateRequest(7))

	assert.Equal(t, first, second)
}

func TestGenerate_NonPositiveCount(t *testing.T) {
	for _, count := range []int{0, -3} {
		plan := Generate(generateRequest(count))
		assert.Empty(t, plan.Meals)
		assert.Empty(t, plan.GroceryList.Pantry)
	}
}

func TestGenerate_GroceryCategorisation(t *testing.T) {
	// One full cycle touches every template once.
	plan := Generate(generateRequest(4))
	list := plan.GroceryList

	assert.Equal(t, []string{"Cucumber", "Tomatoes", "Zucchini", "Eggplant", "Bell peppers", "Carrots", "Cucumber"}, list.Produce)
	assert.Equal(t, []string{"Quinoa"}, list.Grains)
	assert.Equal(t, []string{"Almonds", "Chickpeas", "Salmon", "Chickpeas"}, list.Proteins)
	assert.Equal(t, []string{"Greek yogurt", "Feta cheese"}, list.Dairy)
	// Everything not in a membership list falls into pantry.
	assert.Equal(t, []string{"Honey", "Mixed berries", "Olives", "Herbs", "Olive oil", "Tahini", "Lemon", "Garlic"}, list.Pantry)
}

// TestGenerate_FiveMealsDoublesBreakfastIngredients checks the documented
// example: five meals wrap around to a second breakfast, so the grocery list
// carries two copies of each breakfast ingredient.
func TestGenerate_FiveMealsDoublesBreakfastIngredients(t *testing.T) {
	plan := Generate(generateRequest(5))
	list := plan.GroceryList

	assert.Equal(t, 2, countOccurrences(list.Dairy, "Greek yogurt"))
	assert.Equal(t, 2, countOccurrences(list.Proteins, "Almonds"))
	assert.Equal(t, 2, countOccurrences(list.Pantry, "Honey"))
	assert.Equal(t, 2, countOccurrences(list.Pantry, "Mixed berries"))
}

func TestGenerate_KnownIngredientBuckets(t *testing.T) {
	plan := Generate(generateRequest(3)) // includes the dinner template

	assert.Contains(t, plan.GroceryList.Proteins, "Salmon")
	assert.NotContains(t, plan.GroceryList.Pantry, "Salmon")
}

func TestMealTemplate_UnknownTypeFallsBackToLunch(t *testing.T) {
	meal := mealTemplate(models.MealType("brunch"))
	assert.Equal(t, "Quinoa Mediterranean Salad", meal.Name)
}

func TestMealTemplate_CopiesIngredients(t *testing.T) {
	first := mealTemplate(models.MealBreakfast)
	first.Ingredients[0] = "mutated"

	second := mealTemplate(models.MealBreakfast)
	assert.Equal(t, "Greek yogurt", second.Ingredients[0])
}

func countOccurrences(list []string, value string) int {
	n := 0
	for _, v := range list {
		if v == value {
			n++
		}
	}
	return n
}
