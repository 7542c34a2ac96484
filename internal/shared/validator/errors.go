package validator

import (
	"errors"
	"fmt"

	sharedError "github.com/user-validation/go-api-server/internal/shared/error"
	"github.com/go-playground/validator/v10"
)

// ToErrorResponse converts gin binding/validator errors into a standardized response.
func ToErrorResponse(err error) (*sharedError.ErrorResponse, bool) {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil, false
	}

	if len(validationErrors) == 0 {
		return nil, false
	}

	// Only the first failing field is reported
	fieldErr := validationErrors[0]
	message := getErrorMessage(fieldErr)

	resp := sharedError.ValidationFailed
	resp.Message = message
	return &resp, true
}

// getErrorMessage returns user-friendly error message for validation error
func getErrorMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("'%s' is required.", fe.Field())
	case TagEmail:
		return "Email address format is invalid."
	case TagUsername:
		return "Username must be 3 to 20 letters, digits or underscores."
	case TagPhone:
		return "Phone number must be an Egyptian mobile number (01XXXXXXXXX or 201XXXXXXXXX)."
	case TagNationalID:
		return "National ID is invalid."
	default:
		return fmt.Sprintf("'%s' is invalid.", fe.Field())
	}
}
