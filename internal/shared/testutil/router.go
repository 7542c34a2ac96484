package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/user-validation/go-api-server/internal/shared/validator"
)

// SetupTestRouter creates a test Gin router without middleware
func SetupTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	if err := validator.RegisterAll(); err != nil {
		t.Fatalf("Failed to register validators: %v", err)
	}

	return gin.New()
}

// TestRequest describes one request. Body is JSON encoded unless it is a RawBody.
type TestRequest struct {
	Method  string
	URL     string
	Body    any
	Headers map[string]string
}

// RawBody is sent verbatim, for malformed payloads
type RawBody string

// ExecuteRequest executes a test HTTP request and returns the response
func ExecuteRequest(t *testing.T, router *gin.Engine, req TestRequest) *httptest.ResponseRecorder {
	t.Helper()

	var bodyReader io.Reader
	switch body := req.Body.(type) {
	case nil:
	case RawBody:
		bodyReader = strings.NewReader(string(body))
	default:
		bodyBytes, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Failed to marshal request body: %v", err)
		}
		bodyReader = bytes.NewReader(bodyBytes)
	}

	httpReq := httptest.NewRequest(req.Method, req.URL, bodyReader)
	httpReq.Header.Set("Content-Type", "application/json")
	for k, v := range req.Headers {
		httpReq.Header.Set(k, v)
	}

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httpReq)

	return recorder
}

// ParseResponse parses the JSON response body into the given struct
func ParseResponse(t *testing.T, recorder *httptest.ResponseRecorder, v any) {
	t.Helper()

	if err := json.Unmarshal(recorder.Body.Bytes(), v); err != nil {
		t.Fatalf("Failed to parse response body: %v", err)
	}
}

// Ptr returns a pointer to s, for optional request fields
func Ptr(s string) *string {
	return &s
}
