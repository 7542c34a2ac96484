package validation

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/user-validation/go-api-server/internal/shared/logger"
)

func TestCheck_LogsMaskedValues(t *testing.T) {
	var buf bytes.Buffer
	ctx := logger.WithLogger(context.Background(), slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	service := NewValidationService()

	nationalID := "29812251234567"
	email := "ramy@example.com"

	assert.True(t, service.Check(ctx, FieldNationalID, &nationalID))
	assert.True(t, service.Check(ctx, FieldEmail, &email))

	out := buf.String()
	assert.NotContains(t, out, nationalID)
	assert.Contains(t, out, "**********4567")
	assert.NotContains(t, out, "ramy@")
	assert.Contains(t, out, "r***@example.com")
}

func TestCheck_UnknownFieldIsRejected(t *testing.T) {
	value := "anything"

	assert.False(t, NewValidationService().Check(context.Background(), Field("password"), &value))
}

func TestCheck_NilValue(t *testing.T) {
	service := NewValidationService()

	for _, field := range []Field{FieldEmail, FieldUsername, FieldPhoneNumber, FieldNationalID} {
		assert.False(t, service.Check(context.Background(), field, nil), field)
	}
}
