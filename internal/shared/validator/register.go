package validator

import (
	"fmt"
	"log/slog"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Struct tags for request DTOs
const (
	TagEmail      = "user_email"
	TagUsername   = "username"
	TagPhone      = "eg_phone"
	TagNationalID = "eg_national_id"
)

// GetValidator returns the validator instance from Gin binding
func GetValidator() (*validator.Validate, error) {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil, fmt.Errorf("binding engine is %T, not *validator.Validate", binding.Validator.Engine())
	}
	return v, nil
}

// RegisterAll registers the user field tags on Gin's binding engine.
// Calling it again replaces the previous registrations.
func RegisterAll() error {
	v, err := GetValidator()
	if err != nil {
		return fmt.Errorf("get validator engine: %w", err)
	}

	rules := []struct {
		tag string
		fn  validator.Func
	}{
		{TagEmail, fieldRule(ValidateEmail)},
		{TagUsername, fieldRule(ValidateUsername)},
		{TagPhone, fieldRule(ValidatePhoneNumber)},
		{TagNationalID, fieldRule(ValidateNationalID)},
	}

	for _, r := range rules {
		if err := v.RegisterValidation(r.tag, r.fn); err != nil {
			return fmt.Errorf("register %s validator: %w", r.tag, err)
		}
	}

	slog.Info("Field validators registered", "validators", []string{TagEmail, TagUsername, TagPhone, TagNationalID})
	return nil
}

// fieldRule adapts one of the pointer-taking validators to a string struct field.
func fieldRule(check func(*string) bool) validator.Func {
	return func(fl validator.FieldLevel) bool {
		value := fl.Field().String()
		return check(&value)
	}
}
