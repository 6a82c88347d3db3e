// Package adapter provides a typed HTTP client for the meal-planner server.
//
// The primary abstraction is [ServerAdapter], which decouples consumers from
// the wire protocol. The package ships an HTTP/REST implementation
// ([NewHTTPServerAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/vivek7557/meal-pre-ai-agent/models"
)

// ServerAdapter defines transport-agnostic communication with the
// meal-planner server. Implementations are responsible for serialisation,
// auth token management, and mapping transport-level errors to the sentinel
// values defined in this package.
type ServerAdapter interface {
	// SetToken stores the auth token that will be attached to all subsequent
	// authenticated requests. It should be called immediately after a
	// successful Register or Login.
	SetToken(token string)

	// Token returns the auth token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Register creates a new account. On success it stores the returned
	// token via SetToken and returns the created user's public identity.
	Register(ctx context.Context, req models.RegisterRequest) (models.PublicUser, error)

	// Login authenticates an existing account. On success it stores the
	// returned token via SetToken and returns the user's public identity.
	Login(ctx context.Context, req models.LoginRequest) (models.PublicUser, error)

	// WhoAmI fetches the full record of the authenticated user.
	WhoAmI(ctx context.Context) (models.User, error)

	// GetProfile fetches the authenticated user's profile.
	GetProfile(ctx context.Context) (models.User, error)

	// UpdateProfile applies a partial profile update and returns the updated
	// user record. Only non-nil fields of update are sent.
	UpdateProfile(ctx context.Context, update models.ProfileUpdate) (models.User, error)

	// GeneratePlan requests a new meal plan for the given preferences and
	// returns the stored plan.
	GeneratePlan(ctx context.Context, req models.GenerateRequest) (models.MealPlan, error)

	// MyPlans lists the authenticated user's plans, newest first.
	MyPlans(ctx context.Context) ([]models.MealPlan, error)

	// GetPlan fetches a single plan by id. Returns [ErrNotFound] (wrapped)
	// when no such plan exists and [ErrUnauthorized] when the plan belongs
	// to another user.
	GetPlan(ctx context.Context, planID int64) (models.MealPlan, error)
}
