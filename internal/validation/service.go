package validation

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/user-validation/go-api-server/internal/shared/logger"
	"github.com/user-validation/go-api-server/internal/shared/validator"
)

// Field names a validated user field as it appears in responses.
type Field string

const (
	FieldEmail       Field = "email"
	FieldUsername    Field = "username"
	FieldPhoneNumber Field = "phoneNumber"
	FieldNationalID  Field = "nationalId"
)

type rule struct {
	check func(*string) bool
	mask  func(string) string
}

type ValidationService struct {
	rules map[Field]rule
}

func NewValidationService() *ValidationService {
	return &ValidationService{
		rules: map[Field]rule{
			FieldEmail:       {check: validator.ValidateEmail, mask: logger.MaskEmail},
			FieldUsername:    {check: validator.ValidateUsername, mask: func(s string) string { return s }},
			FieldPhoneNumber: {check: validator.ValidatePhoneNumber, mask: logger.MaskDigits},
			FieldNationalID:  {check: validator.ValidateNationalID, mask: logger.MaskDigits},
		},
	}
}

// Check runs the rule for field. Unknown fields are rejected like invalid input.
func (s *ValidationService) Check(ctx context.Context, field Field, value *string) bool {
	log := logger.FromContext(ctx)

	r, ok := s.rules[field]
	if !ok {
		log.Warn("Unknown validation field", "field", field)
		return false
	}

	valid := r.check(value)
	log.Debug("Field validated", "field", field, "value", maskedValue(r.mask, value), "valid", valid)
	return valid
}

// DecodeNationalID validates value and returns its decoded parts.
// Errors wrap the validator.ErrNationalID* sentinels.
func (s *ValidationService) DecodeNationalID(ctx context.Context, value *string) (*NationalIDResponse, error) {
	log := logger.FromContext(ctx)

	if value == nil {
		return nil, fmt.Errorf("decode national id: %w", validator.ErrNationalIDEmpty)
	}

	id, err := validator.ParseNationalID(*value)
	if err != nil {
		log.Debug("National ID rejected", "value", logger.MaskDigits(*value), "error", err)
		return nil, fmt.Errorf("decode national id: %w", err)
	}

	return &NationalIDResponse{
		BirthDate:   id.BirthDate.Format("2006-01-02"),
		Century:     id.Century,
		Governorate: id.Governorate,
		Sequence:    id.Sequence,
		CheckDigit:  id.CheckDigit,
	}, nil
}

func maskedValue(mask func(string) string, value *string) slog.Value {
	if value == nil {
		return slog.StringValue("<nil>")
	}
	return slog.StringValue(mask(*value))
}
