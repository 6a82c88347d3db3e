package service

import "errors"

var (
	ErrWrongPassword = errors.New("wrong password")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrNotPlanOwner = errors.New("meal plan belongs to another user")
)
