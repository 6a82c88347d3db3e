package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vivek7557/meal-pre-ai-agent/internal/service"
	"github.com/vivek7557/meal-pre-ai-agent/internal/store"
	"github.com/vivek7557/meal-pre-ai-agent/internal/validators"
	"github.com/vivek7557/meal-pre-ai-agent/models"
)

// ─────────────────────────────────────────────
// getProfile
// ─────────────────────────────────────────────

func TestGetProfile_Success(t *testing.T) {
	profile := &mockProfileService{
		getProfileFn: func(_ context.Context, userID int64) (models.User, error) {
			return models.User{UserID: userID, Name: "John", Email: "john@example.com"}, nil
		},
	}
	h := newTestHandler(t, &service.Services{ProfileService: profile})

	req := authedRequest(http.MethodGet, "/api/users/profile", "", 3)
	rec := httptest.NewRecorder()

	h.getProfile(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Success bool        `json:"success"`
		Data    models.User `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, int64(3), resp.Data.UserID)
}

func TestGetProfile_MissingContextUserID(t *testing.T) {
	h := newTestHandler(t, &service.Services{ProfileService: &mockProfileService{}})

	req := httptest.NewRequest(http.MethodGet, "/api/users/profile", nil)
	rec := httptest.NewRecorder()

	h.getProfile(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

// ─────────────────────────────────────────────
// updateProfile
// ─────────────────────────────────────────────

func TestUpdateProfile_Success(t *testing.T) {
	var received models.ProfileUpdate
	profile := &mockProfileService{
		updateProfileFn: func(_ context.Context, update models.ProfileUpdate) (models.User, error) {
			received = update
			return models.User{UserID: update.UserID, Name: *update.Name}, nil
		},
	}
	h := newTestHandler(t, &service.Services{ProfileService: profile})

	req := authedRequest(http.MethodPut, "/api/users/profile", `{"name":"Johnny"}`, 3)
	rec := httptest.NewRecorder()

	h.updateProfile(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(3), received.UserID, "owner id must come from the token, not the body")
	require.NotNil(t, received.Name)
	assert.Equal(t, "Johnny", *received.Name)
	assert.Nil(t, received.Email, "absent body fields must decode to nil")
}

func TestUpdateProfile_PartialBodyKeepsOtherFieldsNil(t *testing.T) {
	var received models.ProfileUpdate
	profile := &mockProfileService{
		updateProfileFn: func(_ context.Context, update models.ProfileUpdate) (models.User, error) {
			received = update
			return models.User{}, nil
		},
	}
	h := newTestHandler(t, &service.Services{ProfileService: profile})

	body := `{"dietaryPreference":"vegan","allergies":["Dairy"]}`
	req := authedRequest(http.MethodPut, "/api/users/profile", body, 3)
	rec := httptest.NewRecorder()

	h.updateProfile(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, received.DietaryPreference)
	assert.Equal(t, models.DietVegan, *received.DietaryPreference)
	require.NotNil(t, received.Allergies)
	assert.Equal(t, []string{"Dairy"}, *received.Allergies)
	assert.Nil(t, received.Name)
	assert.Nil(t, received.NutritionalGoal)
	assert.Nil(t, received.PreferredCuisine)
}

func TestUpdateProfile_ValidationErrors(t *testing.T) {
	profile := &mockProfileService{
		updateProfileFn: func(_ context.Context, _ models.ProfileUpdate) (models.User, error) {
			return models.User{}, &validators.ValidationError{Messages: []string{validators.MsgEmailInvalid}}
		},
	}
	h := newTestHandler(t, &service.Services{ProfileService: profile})

	req := authedRequest(http.MethodPut, "/api/users/profile", `{"email":"nope"}`, 3)
	rec := httptest.NewRecorder()

	h.updateProfile(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeError(t, rec)
	require.Len(t, resp.Errors, 1)
	assert.Equal(t, validators.MsgEmailInvalid, resp.Errors[0].Msg)
}

func TestUpdateProfile_EmailTaken(t *testing.T) {
	profile := &mockProfileService{
		updateProfileFn: func(_ context.Context, _ models.ProfileUpdate) (models.User, error) {
			return models.User{}, store.ErrEmailAlreadyExists
		},
	}
	h := newTestHandler(t, &service.Services{ProfileService: profile})

	req := authedRequest(http.MethodPut, "/api/users/profile", `{"email":"taken@example.com"}`, 3)
	rec := httptest.NewRecorder()

	h.updateProfile(rec, req)

	require.Equal(t, http.StatusConflict, rec.Code)
}

func TestUpdateProfile_InvalidJSON(t *testing.T) {
	h := newTestHandler(t, &service.Services{ProfileService: &mockProfileService{}})

	req := authedRequest(http.MethodPut, "/api/users/profile", "{oops", 3)
	rec := httptest.NewRecorder()

	h.updateProfile(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid JSON was passed", decodeError(t, rec).Message)
}
