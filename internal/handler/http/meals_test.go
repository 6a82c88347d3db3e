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
// Mock MealPlanService
// ─────────────────────────────────────────────

type mockMealPlanService struct {
	generateFn func(ctx context.Context, userID int64, request models.GenerateRequest) (models.MealPlan, error)
	listFn     func(ctx context.Context, userID int64) ([]models.MealPlan, error)
	getFn      func(ctx context.Context, userID int64, planID int64) (models.MealPlan, error)
}

func (m *mockMealPlanService) GeneratePlan(ctx context.Context, userID int64, request models.GenerateRequest) (models.MealPlan, error) {
	return m.generateFn(ctx, userID, request)
}

func (m *mockMealPlanService) ListPlans(ctx context.Context, userID int64) ([]models.MealPlan, error) {
	return m.listFn(ctx, userID)
}

func (m *mockMealPlanService) GetPlan(ctx context.Context, userID int64, planID int64) (models.MealPlan, error) {
	return m.getFn(ctx, userID, planID)
}

func mealsHandler(t *testing.T, meals *mockMealPlanService) *Handler {
	t.Helper()
	return newTestHandler(t, &service.Services{MealPlanService: meals})
}

var generateBody = `{"dietaryPreference":"vegetarian","allergies":[],"nutritionalGoal":"weight-loss","numberOfMeals":4,"preferredCuisine":"Mediterranean"}`

// ─────────────────────────────────────────────
// generatePlan
// ─────────────────────────────────────────────

func TestGeneratePlan_Success(t *testing.T) {
	meals := &mockMealPlanService{
		generateFn: func(_ context.Context, userID int64, request models.GenerateRequest) (models.MealPlan, error) {
			return models.MealPlan{
				PlanID:        7,
				UserID:        userID,
				NumberOfMeals: request.NumberOfMeals,
				User:          models.PublicUser{ID: userID, Name: "John", Email: "john@example.com"},
			}, nil
		},
	}
	h := mealsHandler(t, meals)

	req := authedRequest(http.MethodPost, "/api/meals/generate", generateBody, 1)
	rec := httptest.NewRecorder()

	h.generatePlan(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Success bool            `json:"success"`
		Data    models.MealPlan `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, int64(7), resp.Data.PlanID)
	assert.Equal(t, 4, resp.Data.NumberOfMeals)
	assert.Equal(t, "John", resp.Data.User.Name)
}

func TestGeneratePlan_ValidationError(t *testing.T) {
	meals := &mockMealPlanService{
		generateFn: func(_ context.Context, _ int64, _ models.GenerateRequest) (models.MealPlan, error) {
			return models.MealPlan{}, &validators.ValidationError{Messages: []string{validators.MsgMissingRequired}}
		},
	}
	h := mealsHandler(t, meals)

	req := authedRequest(http.MethodPost, "/api/meals/generate", `{}`, 1)
	rec := httptest.NewRecorder()

	h.generatePlan(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeError(t, rec)
	require.Len(t, resp.Errors, 1)
	assert.Equal(t, validators.MsgMissingRequired, resp.Errors[0].Msg)
}

func TestGeneratePlan_MissingContextUserID(t *testing.T) {
	h := mealsHandler(t, &mockMealPlanService{})

	req := httptest.NewRequest(http.MethodPost, "/api/meals/generate", nil)
	rec := httptest.NewRecorder()

	h.generatePlan(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGeneratePlan_StorageFailure(t *testing.T) {
	meals := &mockMealPlanService{
		generateFn: func(_ context.Context, _ int64, _ models.GenerateRequest) (models.MealPlan, error) {
			return models.MealPlan{}, store.ErrExecutingQuery
		},
	}
	h := mealsHandler(t, meals)

	req := authedRequest(http.MethodPost, "/api/meals/generate", generateBody, 1)
	rec := httptest.NewRecorder()

	h.generatePlan(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Server error", decodeError(t, rec).Message)
}

// ─────────────────────────────────────────────
// myPlans
// ─────────────────────────────────────────────

func TestMyPlans_Success(t *testing.T) {
	meals := &mockMealPlanService{
		listFn: func(_ context.Context, userID int64) ([]models.MealPlan, error) {
			return []models.MealPlan{{PlanID: 2, UserID: userID}, {PlanID: 1, UserID: userID}}, nil
		},
	}
	h := mealsHandler(t, meals)

	req := authedRequest(http.MethodGet, "/api/meals/my-plans", "", 1)
	rec := httptest.NewRecorder()

	h.myPlans(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Success bool              `json:"success"`
		Data    []models.MealPlan `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 2)
	assert.Equal(t, int64(2), resp.Data[0].PlanID)
}

func TestMyPlans_EmptyListSerialisesAsArray(t *testing.T) {
	meals := &mockMealPlanService{
		listFn: func(_ context.Context, _ int64) ([]models.MealPlan, error) {
			return []models.MealPlan{}, nil
		},
	}
	h := mealsHandler(t, meals)

	req := authedRequest(http.MethodGet, "/api/meals/my-plans", "", 1)
	rec := httptest.NewRecorder()

	h.myPlans(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"data":[]`)
}

// ─────────────────────────────────────────────
// getPlan
// ─────────────────────────────────────────────

// routedRequest pushes the request through the full router so chi URL params
// are populated.
func routedGetPlan(t *testing.T, h *Handler, target string, userID int64) *httptest.ResponseRecorder {
	t.Helper()

	// An always-accepting token parser stands in for the auth middleware's
	// service dependency.
	h.services.AuthService = &mockAuthService{
		parseTokenFn: func(_ context.Context, _ string) (models.Token, error) {
			return models.Token{UserID: userID}, nil
		},
	}

	router := h.Init()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	req.Header.Set("x-auth-token", "stub")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)
	return rec
}

func TestGetPlan_Success(t *testing.T) {
	meals := &mockMealPlanService{
		getFn: func(_ context.Context, userID int64, planID int64) (models.MealPlan, error) {
			return models.MealPlan{PlanID: planID, UserID: userID}, nil
		},
	}
	h := mealsHandler(t, meals)

	rec := routedGetPlan(t, h, "/api/meals/7", 1)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":7`)
}

func TestGetPlan_NotFound(t *testing.T) {
	meals := &mockMealPlanService{
		getFn: func(_ context.Context, _ int64, _ int64) (models.MealPlan, error) {
			return models.MealPlan{}, store.ErrMealPlanNotFound
		},
	}
	h := mealsHandler(t, meals)

	rec := routedGetPlan(t, h, "/api/meals/404", 1)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Meal plan not found", decodeError(t, rec).Message)
}

func TestGetPlan_ForeignOwner(t *testing.T) {
	meals := &mockMealPlanService{
		getFn: func(_ context.Context, _ int64, _ int64) (models.MealPlan, error) {
			return models.MealPlan{}, service.ErrNotPlanOwner
		},
	}
	h := mealsHandler(t, meals)

	rec := routedGetPlan(t, h, "/api/meals/7", 2)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "User not authorized", decodeError(t, rec).Message)
}

func TestGetPlan_MalformedID(t *testing.T) {
	meals := &mockMealPlanService{
		getFn: func(_ context.Context, _ int64, _ int64) (models.MealPlan, error) {
			t.Fatal("service must not be called for a malformed id")
			return models.MealPlan{}, nil
		},
	}
	h := mealsHandler(t, meals)

	rec := routedGetPlan(t, h, "/api/meals/not-a-number", 1)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Meal plan not found", decodeError(t, rec).Message)
}
