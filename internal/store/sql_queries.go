package store

import (
	sq "github.com/Masterminds/squirrel"
	"github.com/vivek7557/meal-pre-ai-agent/models"
)

const (
	createUser = `INSERT INTO users (name, email, password_hash, dietary_preference, allergies, nutritional_goal, preferred_cuisine)
    VALUES ($1, $2, $3, $4, $5, $6, $7)
    RETURNING user_id, name, email, password_hash, dietary_preference, allergies, nutritional_goal, preferred_cuisine, created_at;`

	findUserByEmail = `SELECT user_id, name, email, password_hash, dietary_preference, allergies, nutritional_goal, preferred_cuisine, created_at
    FROM users
    WHERE email = $1;`

	findUserByID = `SELECT user_id, name, email, password_hash, dietary_preference, allergies, nutritional_goal, preferred_cuisine, created_at
    FROM users
    WHERE user_id = $1;`

	saveMealPlan = `INSERT INTO meal_plans (user_id, dietary_preference, allergies, nutritional_goal, number_of_meals, preferred_cuisine, meals, grocery_list)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    RETURNING plan_id, created_at;`
)

// psql is the shared squirrel statement builder configured for PostgreSQL
// dollar placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// mealPlanColumns is the column list shared by every meal-plan SELECT. The
// owner's name and email are joined in so that reads can populate the plan's
// user view without a second round trip.
var mealPlanColumns = []string{
	"p.plan_id",
	"p.user_id",
	"p.dietary_preference",
	"p.allergies",
	"p.nutritional_goal",
	"p.number_of_meals",
	"p.preferred_cuisine",
	"p.meals",
	"p.grocery_list",
	"p.created_at",
	"u.name",
	"u.email",
}

// buildSelectMealPlanByID builds the SELECT returning a single plan joined
// with its owner's identity.
func buildSelectMealPlanByID(planID int64) (string, []any, error) {
	return psql.
		Select(mealPlanColumns...).
		From("meal_plans p").
		Join("users u ON u.user_id = p.user_id").
		Where(sq.Eq{"p.plan_id": planID}).
		ToSql()
}

// buildSelectMealPlansByOwner builds the SELECT returning all plans of one
// user, most recent first.
func buildSelectMealPlansByOwner(userID int64) (string, []any, error) {
	return psql.
		Select(mealPlanColumns...).
		From("meal_plans p").
		Join("users u ON u.user_id = p.user_id").
		Where(sq.Eq{"p.user_id": userID}).
		OrderBy("p.created_at DESC", "p.plan_id DESC").
		ToSql()
}

// buildUpdateProfileQuery builds the partial profile UPDATE: only non-nil
// fields of the update record produce SET clauses, so absent fields are left
// untouched rather than cleared. Returns [ErrBuildingSQLQuery] when the
// update carries nothing to set.
func buildUpdateProfileQuery(update models.ProfileUpdate, allergiesJSON []byte) (string, []any, error) {
	builder := psql.Update("users")
	hasFields := false

	if update.Name != nil {
		builder = builder.Set("name", *update.Name)
		hasFields = true
	}

	if update.Email != nil {
		builder = builder.Set("email", *update.Email)
		hasFields = true
	}

	if update.DietaryPreference != nil {
		builder = builder.Set("dietary_preference", string(*update.DietaryPreference))
		hasFields = true
	}

	if update.Allergies != nil {
		builder = builder.Set("allergies", allergiesJSON)
		hasFields = true
	}

	if update.NutritionalGoal != nil {
		builder = builder.Set("nutritional_goal", string(*update.NutritionalGoal))
		hasFields = true
	}

	if update.PreferredCuisine != nil {
		builder = builder.Set("preferred_cuisine", *update.PreferredCuisine)
		hasFields = true
	}

	if !hasFields {
		return "", nil, ErrBuildingSQLQuery
	}

	return builder.
		Where(sq.Eq{"user_id": update.UserID}).
		Suffix("RETURNING user_id, name, email, password_hash, dietary_preference, allergies, nutritional_goal, preferred_cuisine, created_at").
		ToSql()
}
