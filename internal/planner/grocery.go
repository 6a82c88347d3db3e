package planner

import "github.com/vivek7557/meal-pre-ai-agent/models"

// Static membership lists driving ingredient categorisation. An ingredient
// found in none of them lands in the pantry bucket.
var (
	dairyIngredients   = []string{"Greek yogurt", "Feta cheese"}
	grainIngredients   = []string{"Quinoa", "Rice", "Pasta"}
	proteinIngredients = []string{"Chickpeas", "Salmon", "Almonds"}
	produceIngredients = []string{"Tomatoes", "Cucumber", "Carrots", "Bell peppers", "Zucchini", "Eggplant"}
)

// emptyGroceryList returns a grocery list with all five buckets allocated so
// that JSON serialization yields [] rather than null for empty categories.
func emptyGroceryList() models.GroceryList {
	return models.GroceryList{
		Produce:  []string{},
		Grains:   []string{},
		Proteins: []string{},
		Dairy:    []string{},
		Pantry:   []string{},
	}
}

// addToGroceryList appends each ingredient, in order, to the bucket its
// membership list dictates. Duplicates are retained: a plan with two
// breakfasts lists every breakfast ingredient twice.
func addToGroceryList(list *models.GroceryList, ingredients []string) {
	for _, ingredient := range ingredients {
		switch {
		case contains(dairyIngredients, ingredient):
			list.Dairy = append(list.Dairy, ingredient)
		case contains(grainIngredients, ingredient):
			list.Grains = append(list.Grains, ingredient)
		case contains(proteinIngredients, ingredient):
			list.Proteins = append(list.Proteins, ingredient)
		case contains(produceIngredients, ingredient):
			list.Produce = append(list.Produce, ingredient)
		default:
			list.Pantry = append(list.Pantry, ingredient)
		}
	}
}

func contains(list []string, value string) bool {
	for _, v := range list {
		if v == value {
			return true
		}
	}
	return false
}
