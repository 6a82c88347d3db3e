package validators

import (
	"errors"
	"strings"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")
)

// User-facing validation messages. The register, login and profile flows
// surface these verbatim in the response errors array.
const (
	MsgNameRequired          = "Name is required"
	MsgEmailInvalid          = "Please include a valid email"
	MsgPasswordRequired      = "Password is required"
	MsgNoFieldsToUpdate      = "At least one field must be provided for update"
	MsgInvalidDietPreference = "Invalid dietary preference"
	MsgInvalidGoal           = "Invalid nutritional goal"
	MsgMissingRequired       = "Missing required fields"
	MsgMealCountOutOfRange   = "Number of meals must be between 1 and 14"
)

// ValidationError aggregates every field message produced while validating a
// single request, so callers see all problems at once rather than the first.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Messages, "; ")
}

// newValidationError returns nil when there are no messages, so call sites
// can return its result directly.
func newValidationError(messages []string) error {
	if len(messages) == 0 {
		return nil
	}

	return &ValidationError{Messages: messages}
}
