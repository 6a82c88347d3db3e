package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/vivek7557/meal-pre-ai-agent/internal/logger"
	"github.com/vivek7557/meal-pre-ai-agent/internal/utils"
	"github.com/vivek7557/meal-pre-ai-agent/models"
)

// generatePlan handles POST /api/meals/generate: runs the planner over the
// submitted preference tuple and persists the result for the caller.
func (h *Handler) generatePlan(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in authenticated request context")
		utils.WriteJSON(w, models.ErrorResponse{Success: false, Message: msgTokenInvalid}, http.StatusUnauthorized)
		return
	}

	var request models.GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Success: false, Message: msgInvalidJSON}, http.StatusBadRequest)
		return
	}

	plan, err := h.services.MealPlanService.GeneratePlan(ctx, userID, request)
	if err != nil {
		log.Err(err).Int64("userID", userID).Msg("meal plan generation failed")
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.DataResponse{Success: true, Data: plan}, http.StatusOK)
}

// myPlans handles GET /api/meals/my-plans: lists the caller's plans, most
// recent first.
func (h *Handler) myPlans(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in authenticated request context")
		utils.WriteJSON(w, models.ErrorResponse{Success: false, Message: msgTokenInvalid}, http.StatusUnauthorized)
		return
	}

	plans, err := h.services.MealPlanService.ListPlans(ctx, userID)
	if err != nil {
		log.Err(err).Int64("userID", userID).Msg("meal plan listing failed")
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.DataResponse{Success: true, Data: plans}, http.StatusOK)
}

// getPlan handles GET /api/meals/{id}: returns one plan if the caller owns
// it. A non-numeric id can never match a stored plan, so it reports the same
// 404 a missing plan does.
func (h *Handler) getPlan(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in authenticated request context")
		utils.WriteJSON(w, models.ErrorResponse{Success: false, Message: msgTokenInvalid}, http.StatusUnauthorized)
		return
	}

	planID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		log.Err(err).Str("id", chi.URLParam(r, "id")).Msg("malformed meal plan id")
		utils.WriteJSON(w, models.ErrorResponse{Success: false, Message: msgPlanNotFound}, http.StatusNotFound)
		return
	}

	plan, err := h.services.MealPlanService.GetPlan(ctx, userID, planID)
	if err != nil {
		log.Err(err).Int64("planID", planID).Msg("meal plan retrieval failed")
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.DataResponse{Success: true, Data: plan}, http.StatusOK)
}
