package models

// FieldError describes a single failed validation check. The "msg" wire name
// is what API consumers already parse and must not change.
type FieldError struct {
	Msg string `json:"msg"`
}

// AuthResponse is returned by register and login on success. It carries the
// signed token plus the minimal identity of the authenticated user.
type AuthResponse struct {
	Success bool       `json:"success"`
	Token   string     `json:"token"`
	User    PublicUser `json:"user"`
}

// UserResponse wraps a user record under the "user" key; returned by
// GET /api/auth.
type UserResponse struct {
	Success bool `json:"success"`
	User    User `json:"user"`
}

// DataResponse is the generic success envelope wrapping a payload under the
// "data" key, used by the profile and meal-plan routes.
type DataResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

// ErrorResponse is the uniform failure envelope. Message is set for single
// errors; Errors is set for field-level validation failures.
type ErrorResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message,omitempty"`
	Errors  []FieldError `json:"errors,omitempty"`
}
