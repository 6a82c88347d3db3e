package service

import (
	"github.com/vivek7557/meal-pre-ai-agent/internal/config"
	"github.com/vivek7557/meal-pre-ai-agent/internal/logger"
	"github.com/vivek7557/meal-pre-ai-agent/internal/store"
	"github.com/vivek7557/meal-pre-ai-agent/internal/validators"
)

type Services struct {
	AuthService     AuthService
	ProfileService  ProfileService
	MealPlanService MealPlanService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	validator := validators.NewRequestValidator(cfg.App.PasswordMinLength)

	return &Services{
		AuthService:     NewAuthService(storages.UserRepository, validator, cfg.App, logger),
		ProfileService:  NewProfileService(storages.UserRepository, validator, logger),
		MealPlanService: NewMealPlanService(storages.MealPlanRepository, storages.UserRepository, validator, logger),
	}
}
