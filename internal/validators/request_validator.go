package validators

import (
	"context"
	"fmt"
	"regexp"

	"github.com/vivek7557/meal-pre-ai-agent/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate to restrict validation to a subset
// of fields (field-level scoping).
const (
	// FieldName targets the user's display name.
	FieldName = "name"

	// FieldEmail targets the user's email address.
	FieldEmail = "email"

	// FieldPassword targets the plaintext password of a credentials request.
	FieldPassword = "password"

	// FieldDietaryPreference targets the dietary profile field.
	FieldDietaryPreference = "dietary_preference"

	// FieldNutritionalGoal targets the nutrition target field.
	FieldNutritionalGoal = "nutritional_goal"

	// FieldNumberOfMeals targets the requested meal count of a generation
	// request.
	FieldNumberOfMeals = "number_of_meals"

	// FieldPreferredCuisine targets the cuisine preference field.
	FieldPreferredCuisine = "preferred_cuisine"
)

// Bounds on the number of meals a single generation request may ask for.
// Two weeks of daily meals is the most the planner will produce in one call.
const (
	MinMealsPerPlan = 1
	MaxMealsPerPlan = 14
)

// emailPattern is the address shape accepted at registration and login.
var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// RequestValidator implements the Validator interface for every request model
// accepted over HTTP: RegisterRequest, LoginRequest, ProfileUpdate, and
// GenerateRequest. Both value and pointer forms are supported, and variadic
// field names allow targeted re-validation of a subset of fields.
//
// All failures for a request are collected into a single *ValidationError so
// the caller can report every problem at once.
type RequestValidator struct {
	passwordMinLength int
}

// NewRequestValidator constructs a RequestValidator enforcing the given
// minimum password length and returns it as the Validator interface.
func NewRequestValidator(passwordMinLength int) Validator {
	return &RequestValidator{passwordMinLength: passwordMinLength}
}

// Validate dispatches validation to the appropriate type-specific method
// based on the dynamic type of obj. Returns ErrUnsupportedType if obj does
// not match any known request model.
func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		return v.validateRegisterRequest(ctx, value, fields...)
	case *models.RegisterRequest:
		return v.validateRegisterRequest(ctx, *value, fields...)

	case models.LoginRequest:
		return v.validateLoginRequest(ctx, value, fields...)
	case *models.LoginRequest:
		return v.validateLoginRequest(ctx, *value, fields...)

	case models.ProfileUpdate:
		return v.validateProfileUpdate(ctx, value, fields...)
	case *models.ProfileUpdate:
		return v.validateProfileUpdate(ctx, *value, fields...)

	case models.GenerateRequest:
		return v.validateGenerateRequest(ctx, value, fields...)
	case *models.GenerateRequest:
		return v.validateGenerateRequest(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validEmail reports whether email matches the accepted address shape.
func validEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// validateRegisterRequest checks name presence, email shape, and password
// length. Default validated fields: Name, Email, Password.
func (v *RequestValidator) validateRegisterRequest(_ context.Context, request models.RegisterRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldEmail, FieldPassword}
	}

	var messages []string
	for _, f := range fields {
		switch f {
		case FieldName:
			if request.Name == "" {
				messages = append(messages, MsgNameRequired)
			}
		case FieldEmail:
			if !validEmail(request.Email) {
				messages = append(messages, MsgEmailInvalid)
			}
		case FieldPassword:
			if len(request.Password) < v.passwordMinLength {
				messages = append(messages, fmt.Sprintf("Password must be at least %d characters", v.passwordMinLength))
			}
		default:
			return ErrUnknownField
		}
	}

	return newValidationError(messages)
}

// validateLoginRequest checks email shape and password presence. Password
// length is deliberately not enforced here: the stored hash decides.
func (v *RequestValidator) validateLoginRequest(_ context.Context, request models.LoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	var messages []string
	for _, f := range fields {
		switch f {
		case FieldEmail:
			if !validEmail(request.Email) {
				messages = append(messages, MsgEmailInvalid)
			}
		case FieldPassword:
			if request.Password == "" {
				messages = append(messages, MsgPasswordRequired)
			}
		default:
			return ErrUnknownField
		}
	}

	return newValidationError(messages)
}

// validateProfileUpdate checks only the fields the update actually carries:
// a nil pointer means "leave unchanged" and is never a failure. A supplied
// name must be non-empty, a supplied email must be well-formed, and supplied
// enum fields must name known values. An update carrying nothing at all is
// rejected outright.
func (v *RequestValidator) validateProfileUpdate(_ context.Context, update models.ProfileUpdate, fields ...string) error {
	if update.Empty() {
		return newValidationError([]string{MsgNoFieldsToUpdate})
	}

	if len(fields) == 0 {
		fields = []string{FieldName, FieldEmail, FieldDietaryPreference, FieldNutritionalGoal}
	}

	var messages []string
	for _, f := range fields {
		switch f {
		case FieldName:
			if update.Name != nil && *update.Name == "" {
				messages = append(messages, MsgNameRequired)
			}
		case FieldEmail:
			if update.Email != nil && !validEmail(*update.Email) {
				messages = append(messages, MsgEmailInvalid)
			}
		case FieldDietaryPreference:
			if update.DietaryPreference != nil && !update.DietaryPreference.Valid() {
				messages = append(messages, MsgInvalidDietPreference)
			}
		case FieldNutritionalGoal:
			if update.NutritionalGoal != nil && !update.NutritionalGoal.Valid() {
				messages = append(messages, MsgInvalidGoal)
			}
		default:
			return ErrUnknownField
		}
	}

	return newValidationError(messages)
}

// validateGenerateRequest requires dietary preference, nutritional goal,
// meal count, and cuisine to be present, and bounds the meal count to
// [MinMealsPerPlan, MaxMealsPerPlan]. Allergies are optional.
func (v *RequestValidator) validateGenerateRequest(_ context.Context, request models.GenerateRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldDietaryPreference, FieldNutritionalGoal, FieldNumberOfMeals, FieldPreferredCuisine}
	}

	var messages []string
	missing := false
	for _, f := range fields {
		switch f {
		case FieldDietaryPreference:
			if request.DietaryPreference == "" {
				missing = true
			}
		case FieldNutritionalGoal:
			if request.NutritionalGoal == "" {
				missing = true
			}
		case FieldNumberOfMeals:
			switch {
			case request.NumberOfMeals == 0:
				missing = true
			case request.NumberOfMeals < MinMealsPerPlan || request.NumberOfMeals > MaxMealsPerPlan:
				messages = append(messages, MsgMealCountOutOfRange)
			}
		case FieldPreferredCuisine:
			if request.PreferredCuisine == "" {
				missing = true
			}
		default:
			return ErrUnknownField
		}
	}

	if missing {
		messages = append([]string{MsgMissingRequired}, messages...)
	}

	return newValidationError(messages)
}
