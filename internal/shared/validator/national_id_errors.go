package validator

import (
	"net/http"

	sharedError "github.com/user-validation/go-api-server/internal/shared/error"
)

const (
	nationalIDEmpty       = "NATIONAL_ID_EMPTY"       // errInfo
	nationalIDFormat      = "NATIONAL_ID_FORMAT"      // errInfo
	nationalIDCentury     = "NATIONAL_ID_CENTURY"     // errInfo
	nationalIDMonth       = "NATIONAL_ID_MONTH"       // errInfo
	nationalIDDay         = "NATIONAL_ID_DAY"         // errInfo
	nationalIDGovernorate = "NATIONAL_ID_GOVERNORATE" // errInfo
	nationalIDDate        = "NATIONAL_ID_DATE"        // errInfo
)

var (
	ErrNationalIDEmpty       = sharedError.NewDomainError(nationalIDEmpty)
	ErrNationalIDFormat      = sharedError.NewDomainError(nationalIDFormat)
	ErrNationalIDCentury     = sharedError.NewDomainError(nationalIDCentury)
	ErrNationalIDMonth       = sharedError.NewDomainError(nationalIDMonth)
	ErrNationalIDDay         = sharedError.NewDomainError(nationalIDDay)
	ErrNationalIDGovernorate = sharedError.NewDomainError(nationalIDGovernorate)
	ErrNationalIDDate        = sharedError.NewDomainError(nationalIDDate)
)

func init() {
	register := func(errInfo, code, message string) {
		sharedError.RegisterDomainErrorResponse(errInfo, sharedError.ErrorResponse{
			Status:  http.StatusUnprocessableEntity,
			Code:    code,
			Message: message,
		})
	}

	register(nationalIDEmpty, "NATIONAL-ID-001", "National ID is required.")
	register(nationalIDFormat, "NATIONAL-ID-002", "National ID must be exactly 14 digits.")
	register(nationalIDCentury, "NATIONAL-ID-003", "National ID must start with 2 or 3.")
	register(nationalIDMonth, "NATIONAL-ID-004", "National ID birth month is out of range.")
	register(nationalIDDay, "NATIONAL-ID-005", "National ID birth day is out of range.")
	register(nationalIDGovernorate, "NATIONAL-ID-006", "National ID governorate code is out of range.")
	register(nationalIDDate, "NATIONAL-ID-007", "National ID birth date does not exist.")
}
