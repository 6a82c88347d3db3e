// Package planner implements deterministic meal-plan generation.
//
// Generation is a pure function of the requested meal count: meal types cycle
// breakfast → lunch → dinner → snack, each type maps to exactly one fixed
// template, and every ingredient is bucketed into one of five fixed grocery
// categories. The remaining preference inputs (dietary preference, allergies,
// nutritional goal, cuisine) are accepted and recorded with the plan but do
// not influence the output; callers and the test suite rely on this as-built
// behavior, so any future personalization must be a deliberate API change.
package planner

import (
	"github.com/vivek7557/meal-pre-ai-agent/models"
)

// mealTypeOrder is the per-day cycle applied to meal index i via i mod 4.
var mealTypeOrder = [4]models.MealType{
	models.MealBreakfast,
	models.MealLunch,
	models.MealDinner,
	models.MealSnack,
}

// Plan is the result of a generation run: the ordered meal sequence and the
// categorised grocery list derived from it.
type Plan struct {
	Meals       []models.Meal
	GroceryList models.GroceryList
}

// Generate produces a plan for the given request.
//
// NumberOfMeals is taken as supplied: the generator performs no range
// validation, so out-of-range values simply produce that many repeating
// meals (the HTTP boundary enforces the 1–14 range). A non-positive count
// yields an empty plan.
func Generate(req models.GenerateRequest) Plan {
	plan := Plan{
		Meals:       make([]models.Meal, 0, max(req.NumberOfMeals, 0)),
		GroceryList: emptyGroceryList(),
	}

	for i := 0; i < req.NumberOfMeals; i++ {
		meal := mealTemplate(mealTypeOrder[i%4])
		plan.Meals = append(plan.Meals, meal)
		addToGroceryList(&plan.GroceryList, meal.Ingredients)
	}

	return plan
}
