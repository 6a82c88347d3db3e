package http

import (
	"encoding/json"
	"net/http"

	"github.com/vivek7557/meal-pre-ai-agent/internal/logger"
	"github.com/vivek7557/meal-pre-ai-agent/internal/utils"
	"github.com/vivek7557/meal-pre-ai-agent/models"
)

// getProfile handles GET /api/users/profile.
func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
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

	utils.WriteJSON(w, models.DataResponse{Success: true, Data: user}, http.StatusOK)
}

// updateProfile handles PUT /api/users/profile. The body is a partial
// update: absent fields stay untouched, supplied fields are validated and
// replace the stored values.
func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in authenticated request context")
		utils.WriteJSON(w, models.ErrorResponse{Success: false, Message: msgTokenInvalid}, http.StatusUnauthorized)
		return
	}

	var update models.ProfileUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Success: false, Message: msgInvalidJSON}, http.StatusBadRequest)
		return
	}
	update.UserID = userID

	user, err := h.services.ProfileService.UpdateProfile(ctx, update)
	if err != nil {
		log.Err(err).Int64("userID", userID).Msg("profile update failed")
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.DataResponse{Success: true, Data: user}, http.StatusOK)
}
