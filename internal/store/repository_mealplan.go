package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/vivek7557/meal-pre-ai-agent/internal/logger"
	"github.com/vivek7557/meal-pre-ai-agent/models"
)

// mealPlanRepository is the PostgreSQL-backed implementation of
// [MealPlanRepository]. Meal sequences and grocery lists are stored as JSONB
// documents inside the "meal_plans" table; the owning user's identity is
// joined in on every read.
type mealPlanRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewMealPlanRepository constructs a [MealPlanRepository] backed by the
// provided database connection and logger.
func NewMealPlanRepository(db *DB, logger *logger.Logger) MealPlanRepository {
	logger.Debug().Msg("creating meal plan repository")
	return &mealPlanRepository{
		db:     db,
		logger: logger,
	}
}

// SaveMealPlan persists a new plan bound to plan.UserID and returns it with
// the server-assigned PlanID and CreatedAt. The generated meal sequence and
// grocery list are stored as JSONB payloads.
func (r *mealPlanRepository) SaveMealPlan(ctx context.Context, plan models.MealPlan) (models.MealPlan, error) {
	log := logger.FromContext(ctx)

	allergiesJSON, err := marshalAllergies(plan.Allergies)
	if err != nil {
		return models.MealPlan{}, err
	}

	mealsJSON, err := json.Marshal(plan.Meals)
	if err != nil {
		return models.MealPlan{}, fmt.Errorf("%w: %w", ErrEncodingPayload, err)
	}

	groceryJSON, err := json.Marshal(plan.GroceryList)
	if err != nil {
		return models.MealPlan{}, fmt.Errorf("%w: %w", ErrEncodingPayload, err)
	}

	row := r.db.QueryRowContext(ctx, saveMealPlan,
		plan.UserID, string(plan.DietaryPreference), allergiesJSON,
		string(plan.NutritionalGoal), plan.NumberOfMeals, plan.PreferredCuisine,
		mealsJSON, groceryJSON,
	)

	if err := row.Scan(&plan.PlanID, &plan.CreatedAt); err != nil {
		log.Err(err).Str("func", "*mealPlanRepository.SaveMealPlan").Msg("error saving meal plan")
		return models.MealPlan{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return plan, nil
}

// FindMealPlansByOwner returns every plan of the given user, most recent
// first. A user with no plans yields an empty slice.
func (r *mealPlanRepository) FindMealPlansByOwner(ctx context.Context, userID int64) ([]models.MealPlan, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectMealPlansByOwner(userID)
	if err != nil {
		log.Err(err).Str("func", "*mealPlanRepository.FindMealPlansByOwner").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*mealPlanRepository.FindMealPlansByOwner").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	plans := make([]models.MealPlan, 0)
	for rows.Next() {
		plan, err := scanMealPlan(rows)
		if err != nil {
			log.Err(err).Str("func", "*mealPlanRepository.FindMealPlansByOwner").Msg("error scanning row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}

		plans = append(plans, plan)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return plans, nil
}

// FindMealPlanByID returns the plan with the given identifier, regardless of
// who owns it; ownership is the service layer's concern. An empty result set
// is mapped to [ErrMealPlanNotFound].
func (r *mealPlanRepository) FindMealPlanByID(ctx context.Context, planID int64) (models.MealPlan, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectMealPlanByID(planID)
	if err != nil {
		log.Err(err).Str("func", "*mealPlanRepository.FindMealPlanByID").Msg("error building query")
		return models.MealPlan{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*mealPlanRepository.FindMealPlanByID").Msg("error executing query")
		return models.MealPlan{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return models.MealPlan{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		return models.MealPlan{}, ErrMealPlanNotFound
	}

	plan, err := scanMealPlan(rows)
	if err != nil {
		log.Err(err).Str("func", "*mealPlanRepository.FindMealPlanByID").Msg("error scanning row")
		return models.MealPlan{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return plan, nil
}

// scanMealPlan scans one joined meal_plans row ([mealPlanColumns] order) into
// a [models.MealPlan], decoding the JSONB payloads and populating the owner's
// public identity from the joined users columns.
func scanMealPlan(rows *sql.Rows) (models.MealPlan, error) {
	var plan models.MealPlan
	var allergiesJSON, mealsJSON, groceryJSON []byte

	err := rows.Scan(
		&plan.PlanID, &plan.UserID,
		&plan.DietaryPreference, &allergiesJSON,
		&plan.NutritionalGoal, &plan.NumberOfMeals, &plan.PreferredCuisine,
		&mealsJSON, &groceryJSON, &plan.CreatedAt,
		&plan.User.Name, &plan.User.Email,
	)
	if err != nil {
		return models.MealPlan{}, err
	}

	plan.User.ID = plan.UserID

	plan.Allergies, err = unmarshalAllergies(allergiesJSON)
	if err != nil {
		return models.MealPlan{}, err
	}

	if err := json.Unmarshal(mealsJSON, &plan.Meals); err != nil {
		return models.MealPlan{}, fmt.Errorf("%w: %w", ErrEncodingPayload, err)
	}

	if err := json.Unmarshal(groceryJSON, &plan.GroceryList); err != nil {
		return models.MealPlan{}, fmt.Errorf("%w: %w", ErrEncodingPayload, err)
	}

	return plan, nil
}
