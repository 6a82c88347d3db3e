package http

import "errors"

// Sentinel errors produced while reading the "x-auth-token" HTTP header.
// Callers can match against them with [errors.Is].
var (
	// ErrNoAuthToken is returned by the auth middleware when the incoming
	// request does not carry an "x-auth-token" header at all.
	ErrNoAuthToken = errors.New("no token, authorization denied")

	// ErrInvalidAuthToken is returned when a token was supplied but failed
	// signature, issuer, or expiry verification.
	ErrInvalidAuthToken = errors.New("token is not valid")
)

// User-facing messages of the failure envelope. The exact wording is part of
// the wire contract and must not change.
const (
	msgNoToken            = "No token, authorization denied"
	msgTokenInvalid       = "Token is not valid"
	msgInvalidCredentials = "Invalid credentials"
	msgUserExists         = "User already exists"
	msgUserNotFound       = "User not found"
	msgPlanNotFound       = "Meal plan not found"
	msgNotAuthorized      = "User not authorized"
	msgServerError        = "Server error"
	msgInvalidJSON        = "Invalid JSON was passed"
)
