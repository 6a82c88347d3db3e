package http

import (
	"github.com/vivek7557/meal-pre-ai-agent/internal/logger"
	"github.com/vivek7557/meal-pre-ai-agent/internal/service"
)

type Handler struct {
	services *service.Services

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		logger:   logger,
	}
}
