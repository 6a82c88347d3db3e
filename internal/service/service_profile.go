package service

import (
	"context"
	"fmt"

	"github.com/vivek7557/meal-pre-ai-agent/internal/logger"
	"github.com/vivek7557/meal-pre-ai-agent/internal/store"
	"github.com/vivek7557/meal-pre-ai-agent/internal/validators"
	"github.com/vivek7557/meal-pre-ai-agent/models"
)

// profileService is the concrete implementation of ProfileService. It reads
// and partially updates user profiles through the UserRepository.
type profileService struct {
	userRepository store.UserRepository
	validator      validators.Validator
	logger         *logger.Logger
}

// NewProfileService constructs a ProfileService on top of the given
// UserRepository.
func NewProfileService(userRepository store.UserRepository, validator validators.Validator, logger *logger.Logger) ProfileService {
	return &profileService{
		userRepository: userRepository,
		validator:      validator,
		logger:         logger,
	}
}

// GetProfile returns the full profile of the given user.
//
// Returns store.ErrNoUserWasFound when the account no longer exists.
func (p *profileService) GetProfile(ctx context.Context, userID int64) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := p.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		log.Err(err).Int64("userID", userID).Msg("profile lookup failed")
		return models.User{}, fmt.Errorf("profile lookup failed: %w", err)
	}

	return user, nil
}

// UpdateProfile applies the supplied partial update and returns the profile
// as stored afterwards. Fields the update does not carry stay untouched.
//
// Returns a *validators.ValidationError for a malformed update, or a wrapped
// storage error (store.ErrNoUserWasFound, store.ErrEmailAlreadyExists) when
// persistence fails.
func (p *profileService) UpdateProfile(ctx context.Context, update models.ProfileUpdate) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := p.validator.Validate(ctx, update); err != nil {
		log.Error().Err(err).Int64("userID", update.UserID).Msg("invalid profile update provided")
		return models.User{}, err
	}

	user, err := p.userRepository.UpdateProfile(ctx, update)
	if err != nil {
		log.Err(err).Int64("userID", update.UserID).Msg("profile update failed")
		return models.User{}, fmt.Errorf("profile update failed: %w", err)
	}

	return user, nil
}
