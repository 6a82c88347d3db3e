package planner

import "github.com/vivek7557/meal-pre-ai-agent/models"

// baseMeals maps each meal type to its single fixed template. The records are
// part of the API contract: names, ingredient order, and macros are asserted
// by consumers of stored plans.
var baseMeals = map[models.MealType]models.Meal{
	models.MealBreakfast: {
		Name:        "Mediterranean Breakfast Bowl",
		Description: "Greek yogurt with honey, mixed berries, and almonds",
		Ingredients: []string{"Greek yogurt", "Honey", "Mixed berries", "Almonds"},
		PrepTime:    "10 minutes",
		Calories:    320,
		Protein:     18,
		Carbs:       28,
		Fat:         16,
		MealType:    models.MealBreakfast,
	},
	models.MealLunch: {
		Name:        "Quinoa Mediterranean Salad",
		Description: "Quinoa with chickpeas, cucumber, tomatoes, olives, and feta",
		Ingredients: []string{"Quinoa", "Chickpeas", "Cucumber", "Tomatoes", "Olives", "Feta cheese"},
		PrepTime:    "20 minutes",
		Calories:    450,
		Protein:     16,
		Carbs:       58,
		Fat:         18,
		MealType:    models.MealLunch,
	},
	models.MealDinner: {
		Name:        "Herb-Crusted Salmon with Roasted Vegetables",
		Description: "Salmon with herbs and roasted Mediterranean vegetables",
		Ingredients: []string{"Salmon", "Herbs", "Zucchini", "Eggplant", "Bell peppers", "Olive oil"},
		PrepTime:    "30 minutes",
		Calories:    520,
		Protein:     32,
		Carbs:       18,
		Fat:         32,
		MealType:    models.MealDinner,
	},
	models.MealSnack: {
		Name:        "Mediterranean Hummus with Veggies",
		Description: "Homemade hummus with fresh vegetables",
		Ingredients: []string{"Chickpeas", "Tahini", "Lemon", "Garlic", "Carrots", "Cucumber"},
		PrepTime:    "15 minutes",
		Calories:    180,
		Protein:     6,
		Carbs:       20,
		Fat:         9,
		MealType:    models.MealSnack,
	},
}

// mealTemplate returns a copy of the template for the given meal type with a
// freshly allocated ingredient slice, so callers can never mutate the shared
// template. Unknown types fall back to the lunch template, matching the
// model-level default.
func mealTemplate(mealType models.MealType) models.Meal {
	meal, ok := baseMeals[mealType]
	if !ok {
		meal = baseMeals[models.MealLunch]
	}

	meal.Ingredients = append([]string(nil), meal.Ingredients...)
	return meal
}
