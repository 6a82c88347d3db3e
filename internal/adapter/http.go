package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/vivek7557/meal-pre-ai-agent/internal/config"
	"github.com/vivek7557/meal-pre-ai-agent/internal/logger"
	"github.com/vivek7557/meal-pre-ai-agent/models"

	"github.com/go-resty/resty/v2"
)

// authTokenHeader carries the token on authenticated requests. The name is
// part of the wire contract.
const authTokenHeader = "x-auth-token"

type httpServerAdapter struct {
	client *resty.Client

	token string

	logger *logger.Logger
}

// userEnvelope mirrors the server's success envelope for user payloads.
type userEnvelope struct {
	Success bool        `json:"success"`
	Data    models.User `json:"data"`
}

type planEnvelope struct {
	Success bool            `json:"success"`
	Data    models.MealPlan `json:"data"`
}

type plansEnvelope struct {
	Success bool              `json:"success"`
	Data    []models.MealPlan `json:"data"`
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL from
// cfg.HTTPAddress and configures the underlying resty client with the
// resolved base URL and request timeout.
//
// Returns an error if cfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(cfg config.Server, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed)
// for use in the x-auth-token header of all subsequent authenticated requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter]. It returns the auth token currently held
// by the adapter, or an empty string if none has been set.
func (h *httpServerAdapter) Token() string {
	return h.token
}

// Register implements [ServerAdapter]. It POSTs the new account data to
// POST /api/auth/register. On success the token from the response body is
// stored via SetToken.
func (h *httpServerAdapter) Register(ctx context.Context, req models.RegisterRequest) (models.PublicUser, error) {
	var auth models.AuthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&auth).
		Post("/api/auth/register")
	if err != nil {
		return models.PublicUser{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.PublicUser{}, err
	}

	h.SetToken(auth.Token)
	return auth.User, nil
}

// Login implements [ServerAdapter]. It POSTs the credentials to
// POST /api/auth/login. On success the token from the response body is
// stored via SetToken.
func (h *httpServerAdapter) Login(ctx context.Context, req models.LoginRequest) (models.PublicUser, error) {
	var auth models.AuthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&auth).
		Post("/api/auth/login")
	if err != nil {
		return models.PublicUser{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.PublicUser{}, err
	}

	h.SetToken(auth.Token)
	return auth.User, nil
}

// WhoAmI implements [ServerAdapter]. It GETs /api/auth and returns the full
// record of the user the stored token belongs to.
func (h *httpServerAdapter) WhoAmI(ctx context.Context) (models.User, error) {
	var envelope models.UserResponse

	resp, err := h.authedRequest(ctx).
		SetResult(&envelope).
		Get("/api/auth")
	if err != nil {
		return models.User{}, fmt.Errorf("whoami request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return envelope.User, nil
}

// GetProfile implements [ServerAdapter]. It GETs /api/users/profile.
func (h *httpServerAdapter) GetProfile(ctx context.Context) (models.User, error) {
	var envelope userEnvelope

	resp, err := h.authedRequest(ctx).
		SetResult(&envelope).
		Get("/api/users/profile")
	if err != nil {
		return models.User{}, fmt.Errorf("get profile request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return envelope.Data, nil
}

// UpdateProfile implements [ServerAdapter]. It PUTs the partial update to
// PUT /api/users/profile; nil fields of update are omitted from the body.
func (h *httpServerAdapter) UpdateProfile(ctx context.Context, update models.ProfileUpdate) (models.User, error) {
	var envelope userEnvelope

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(update).
		SetResult(&envelope).
		Put("/api/users/profile")
	if err != nil {
		return models.User{}, fmt.Errorf("update profile request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return envelope.Data, nil
}

// GeneratePlan implements [ServerAdapter]. It POSTs the preference tuple to
// POST /api/meals/generate and returns the stored plan.
func (h *httpServerAdapter) GeneratePlan(ctx context.Context, req models.GenerateRequest) (models.MealPlan, error) {
	var envelope planEnvelope

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&envelope).
		Post("/api/meals/generate")
	if err != nil {
		return models.MealPlan{}, fmt.Errorf("generate plan request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.MealPlan{}, err
	}

	return envelope.Data, nil
}

// MyPlans implements [ServerAdapter]. It GETs /api/meals/my-plans.
func (h *httpServerAdapter) MyPlans(ctx context.Context) ([]models.MealPlan, error) {
	var envelope plansEnvelope

	resp, err := h.authedRequest(ctx).
		SetResult(&envelope).
		Get("/api/meals/my-plans")
	if err != nil {
		return nil, fmt.Errorf("my plans request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return envelope.Data, nil
}

// GetPlan implements [ServerAdapter]. It GETs /api/meals/{id}.
func (h *httpServerAdapter) GetPlan(ctx context.Context, planID int64) (models.MealPlan, error) {
	var envelope planEnvelope

	resp, err := h.authedRequest(ctx).
		SetResult(&envelope).
		Get("/api/meals/" + strconv.FormatInt(planID, 10))
	if err != nil {
		return models.MealPlan{}, fmt.Errorf("get plan request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.MealPlan{}, err
	}

	return envelope.Data, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader(authTokenHeader, token)
	}
	return req
}
