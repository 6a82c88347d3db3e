package http

import (
	"encoding/json"
	"net/http"

	"github.com/vivek7557/meal-pre-ai-agent/internal/logger"
	"github.com/vivek7557/meal-pre-ai-agent/internal/utils"
	"github.com/vivek7557/meal-pre-ai-agent/models"
)

// register handles POST /api/auth/register: creates the account and answers
// with a signed token plus the new user's public identity.
func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Success: false, Message: msgInvalidJSON}, http.StatusBadRequest)
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, request)
	if err != nil {
		log.Err(err).Str("email", request.Email).Msg("user registration failed")
		writeError(w, r, err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, registeredUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.AuthResponse{
		Success: true,
		Token:   token.String(),
		User:    registeredUser.Public(),
	}, http.StatusOK)
}

// login handles POST /api/auth/login: verifies credentials and answers with
// a fresh token plus the user's public identity.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Success: false, Message: msgInvalidJSON}, http.StatusBadRequest)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, request)
	if err != nil {
		log.Err(err).Str("email", request.Email).Msg("user login failed")
		writeError(w, r, err)
		return
	}

	log.Debug().Int64("id", foundUser.UserID).Msg("user successfully logged in")

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.AuthResponse{
		Success: true,
		Token:   token.String(),
		User:    foundUser.Public(),
	}, http.StatusOK)
}

// whoAmI handles GET /api/auth: returns the authenticated user's full
// profile (the password hash never serialises).
func (h *Handler) whoAmI(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in authenticated request context")
		utils.WriteJSON(w, models.ErrorResponse{Success: false, Message: msgTokenInvalid}, http.StatusUnauthorized)
		return
	}

	user, err := h.services.ProfileService.GetProfile(ctx, userID)
	if err != nil {
		log.Err(err).Int64("userID", userID).Msg("profile lookup failed")
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.UserResponse{Success: true, User: user}, http.StatusOK)
}
