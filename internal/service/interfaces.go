package service

import (
	"context"

	"github.com/vivek7557/meal-pre-ai-agent/models"
)

type AuthService interface {
	RegisterUser(ctx context.Context, request models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, request models.LoginRequest) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type ProfileService interface {
	GetProfile(ctx context.Context, userID int64) (models.User, error)
	UpdateProfile(ctx context.Context, update models.ProfileUpdate) (models.User, error)
}

type MealPlanService interface {
	GeneratePlan(ctx context.Context, userID int64, request models.GenerateRequest) (models.MealPlan, error)
	ListPlans(ctx context.Context, userID int64) ([]models.MealPlan, error)
	GetPlan(ctx context.Context, userID int64, planID int64) (models.MealPlan, error)
}
