package store

import (
	"context"

	"github.com/vivek7557/meal-pre-ai-agent/models"
)

// UserRepository is the persistence boundary for user accounts and profiles.
type UserRepository interface {
	// CreateUser persists a new user and returns it with server-assigned
	// fields populated. Returns ErrEmailAlreadyExists on a duplicate email.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail returns the user owning the given email, or
	// ErrNoUserWasFound.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// FindUserByID returns the user with the given id, or ErrNoUserWasFound.
	FindUserByID(ctx context.Context, userID int64) (models.User, error)

	// UpdateProfile applies the non-nil fields of update to the stored
	// profile and returns the updated record. Returns ErrNoUserWasFound when
	// the user no longer exists and ErrEmailAlreadyExists when the new email
	// is taken.
	UpdateProfile(ctx context.Context, update models.ProfileUpdate) (models.User, error)
}

// MealPlanRepository is the persistence boundary for generated meal plans.
// Plans are immutable after creation: there are no update or delete methods
// on purpose.
type MealPlanRepository interface {
	// SaveMealPlan persists a new plan bound to its owner and returns it
	// with the assigned identity and creation timestamp.
	SaveMealPlan(ctx context.Context, plan models.MealPlan) (models.MealPlan, error)

	// FindMealPlansByOwner returns all plans of the given user, most recent
	// first. An owner with no plans yields an empty slice, not an error.
	FindMealPlansByOwner(ctx context.Context, userID int64) ([]models.MealPlan, error)

	// FindMealPlanByID returns the plan with the given id regardless of
	// owner, or ErrMealPlanNotFound. Ownership is enforced at the service
	// layer so that a foreign plan can be reported as unauthorized rather
	// than missing.
	FindMealPlanByID(ctx context.Context, planID int64) (models.MealPlan, error)
}
