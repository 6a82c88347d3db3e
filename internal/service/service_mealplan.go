package service

import (
	"context"
	"fmt"

	"github.com/vivek7557/meal-pre-ai-agent/internal/logger"
	"github.com/vivek7557/meal-pre-ai-agent/internal/planner"
	"github.com/vivek7557/meal-pre-ai-agent/internal/store"
	"github.com/vivek7557/meal-pre-ai-agent/internal/validators"
	"github.com/vivek7557/meal-pre-ai-agent/models"
)

// mealPlanService is the concrete implementation of MealPlanService. It runs
// the deterministic planner over a validated preference tuple and persists
// the result, and it exposes per-owner plan retrieval.
type mealPlanService struct {
	mealPlanRepository store.MealPlanRepository
	userRepository     store.UserRepository
	validator          validators.Validator
	logger             *logger.Logger
}

// NewMealPlanService constructs a MealPlanService on top of the given
// repositories. The UserRepository is needed to attach the owner's identity
// to freshly generated plans.
func NewMealPlanService(mealPlanRepository store.MealPlanRepository, userRepository store.UserRepository, validator validators.Validator, logger *logger.Logger) MealPlanService {
	return &mealPlanService{
		mealPlanRepository: mealPlanRepository,
		userRepository:     userRepository,
		validator:          validator,
		logger:             logger,
	}
}

// GeneratePlan validates the preference tuple, generates the meal sequence
// and grocery list, and persists the plan bound to userID.
//
// Returns the saved plan with its identity, creation timestamp, and the
// owner's public identity populated, or:
//   - A *validators.ValidationError for a malformed request.
//   - A wrapped storage error when the owner lookup or the insert fails.
func (m *mealPlanService) GeneratePlan(ctx context.Context, userID int64, request models.GenerateRequest) (models.MealPlan, error) {
	log := logger.FromContext(ctx)

	if err := m.validator.Validate(ctx, request); err != nil {
		log.Error().Err(err).Int64("userID", userID).Msg("invalid generation request provided")
		return models.MealPlan{}, err
	}

	owner, err := m.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		log.Err(err).Int64("userID", userID).Msg("plan owner lookup failed")
		return models.MealPlan{}, fmt.Errorf("plan owner lookup failed: %w", err)
	}

	if request.Allergies == nil {
		request.Allergies = []string{}
	}

	generated := planner.Generate(request)

	plan := models.MealPlan{
		UserID:            userID,
		DietaryPreference: request.DietaryPreference,
		Allergies:         request.Allergies,
		NutritionalGoal:   request.NutritionalGoal,
		NumberOfMeals:     request.NumberOfMeals,
		PreferredCuisine:  request.PreferredCuisine,
		Meals:             generated.Meals,
		GroceryList:       generated.GroceryList,
	}

	savedPlan, err := m.mealPlanRepository.SaveMealPlan(ctx, plan)
	if err != nil {
		log.Err(err).Int64("userID", userID).Msg("meal plan save failed")
		return models.MealPlan{}, fmt.Errorf("meal plan save failed: %w", err)
	}

	savedPlan.User = owner.Public()

	return savedPlan, nil
}

// ListPlans returns every plan of the given user, most recent first.
func (m *mealPlanService) ListPlans(ctx context.Context, userID int64) ([]models.MealPlan, error) {
	log := logger.FromContext(ctx)

	plans, err := m.mealPlanRepository.FindMealPlansByOwner(ctx, userID)
	if err != nil {
		log.Err(err).Int64("userID", userID).Msg("meal plan listing failed")
		return nil, fmt.Errorf("meal plan listing failed: %w", err)
	}

	return plans, nil
}

// GetPlan returns a single plan after confirming userID owns it.
//
// Returns a wrapped store.ErrMealPlanNotFound when the plan does not exist,
// and ErrNotPlanOwner when it exists but belongs to someone else. The two
// outcomes are deliberately distinct so the transport layer can answer 404
// and 401 respectively.
func (m *mealPlanService) GetPlan(ctx context.Context, userID int64, planID int64) (models.MealPlan, error) {
	log := logger.FromContext(ctx)

	plan, err := m.mealPlanRepository.FindMealPlanByID(ctx, planID)
	if err != nil {
		log.Err(err).Int64("planID", planID).Msg("meal plan lookup failed")
		return models.MealPlan{}, fmt.Errorf("meal plan lookup failed: %w", err)
	}

	if plan.UserID != userID {
		log.Error().
			Int64("planID", planID).
			Int64("ownerID", plan.UserID).
			Int64("userID", userID).
			Msg("meal plan requested by non-owner")
		return models.MealPlan{}, ErrNotPlanOwner
	}

	return plan, nil
}
