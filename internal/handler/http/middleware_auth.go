// Package http implements the HTTP transport layer of the application.
// It provides middleware, route handlers, and request/response utilities
// for the REST API. Authentication, logging, and tracing concerns are all
// handled at this layer before requests are forwarded to the service layer.
package http

import (
	"context"
	"net/http"

	"github.com/vivek7557/meal-pre-ai-agent/internal/logger"
	"github.com/vivek7557/meal-pre-ai-agent/internal/utils"
	"github.com/vivek7557/meal-pre-ai-agent/models"
)

// authTokenHeader carries the JWT on every authenticated request. The header
// name (not a Bearer scheme) is part of the wire contract.
const authTokenHeader = "x-auth-token"

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It reads the "x-auth-token" header, validates the token via
// [service.AuthService.ParseToken], and on success stores the authenticated
// user's ID in the request context under [utils.UserIDCtxKey] before
// delegating to the next handler.
//
// The middleware rejects requests with HTTP 401 Unauthorized when the header
// is absent ([ErrNoAuthToken]) or when the token fails verification
// ([ErrInvalidAuthToken]). Rejection events are logged using the
// context-scoped logger obtained via [logger.FromRequest].
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString := r.Header.Get(authTokenHeader)
		if tokenString == "" {
			log.Err(ErrNoAuthToken).Send()
			utils.WriteJSON(w, models.ErrorResponse{Success: false, Message: msgNoToken}, http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Err(err).Msg("error occurred during parsing token")
			utils.WriteJSON(w, models.ErrorResponse{Success: false, Message: msgTokenInvalid}, http.StatusUnauthorized)
			return
		}

		// Store the authenticated user's ID in the context so that downstream
		// handlers can retrieve it without re-parsing the token.
		ctx = context.WithValue(ctx, utils.UserIDCtxKey, token.UserID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
