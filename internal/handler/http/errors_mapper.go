package http

import (
	"errors"
	"net/http"

	"github.com/vivek7557/meal-pre-ai-agent/internal/logger"
	"github.com/vivek7557/meal-pre-ai-agent/internal/service"
	"github.com/vivek7557/meal-pre-ai-agent/internal/store"
	"github.com/vivek7557/meal-pre-ai-agent/internal/utils"
	"github.com/vivek7557/meal-pre-ai-agent/internal/validators"
	"github.com/vivek7557/meal-pre-ai-agent/models"
)

// mappedError pairs the HTTP status with the user-facing message for one
// well-known failure. Anything not listed surfaces as a generic 500.
type mappedError struct {
	status  int
	message string
}

var errorStatusMap = map[error]mappedError{
	service.ErrWrongPassword:           {http.StatusBadRequest, msgInvalidCredentials},
	service.ErrTokenIsExpiredOrInvalid: {http.StatusUnauthorized, msgTokenInvalid},
	service.ErrNotPlanOwner:            {http.StatusUnauthorized, msgNotAuthorized},

	store.ErrEmailAlreadyExists: {http.StatusConflict, msgUserExists},
	store.ErrNoUserWasFound:     {http.StatusNotFound, msgUserNotFound},
	store.ErrMealPlanNotFound:   {http.StatusNotFound, msgPlanNotFound},
	store.ErrMealPlanNotSaved:   {http.StatusInternalServerError, msgServerError},

	store.ErrBuildingSQLQuery: {http.StatusInternalServerError, msgServerError},
	store.ErrExecutingQuery:   {http.StatusInternalServerError, msgServerError},
	store.ErrScanningRow:      {http.StatusInternalServerError, msgServerError},
	store.ErrScanningRows:     {http.StatusInternalServerError, msgServerError},
	store.ErrEncodingPayload:  {http.StatusInternalServerError, msgServerError},
}

// writeError renders err as the uniform failure envelope.
//
// A *validators.ValidationError becomes 400 with the per-field errors array;
// every other error is matched against errorStatusMap via [errors.Is], and
// unknown errors fall back to 500 with a generic message so internal detail
// never leaks to the client.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	var vErr *validators.ValidationError
	if errors.As(err, &vErr) {
		fieldErrors := make([]models.FieldError, 0, len(vErr.Messages))
		for _, msg := range vErr.Messages {
			fieldErrors = append(fieldErrors, models.FieldError{Msg: msg})
		}

		utils.WriteJSON(w, models.ErrorResponse{Success: false, Errors: fieldErrors}, http.StatusBadRequest)
		return
	}

	for target, mapped := range errorStatusMap {
		if errors.Is(err, target) {
			utils.WriteJSON(w, models.ErrorResponse{Success: false, Message: mapped.message}, mapped.status)
			return
		}
	}

	log.Err(err).Msg("unexpected error reached the transport layer")
	utils.WriteJSON(w, models.ErrorResponse{Success: false, Message: msgServerError}, http.StatusInternalServerError)
}
