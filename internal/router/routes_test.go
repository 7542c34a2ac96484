package router_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/user-validation/go-api-server/internal/bootstrap"
	"github.com/user-validation/go-api-server/internal/router"
	sharedError "github.com/user-validation/go-api-server/internal/shared/error"
	"github.com/user-validation/go-api-server/internal/shared/middleware"
	"github.com/user-validation/go-api-server/internal/shared/testutil"
	"github.com/user-validation/go-api-server/internal/shared/validator"
	"github.com/user-validation/go-api-server/internal/validation"
)

// setupEngine builds the production middleware chain and routes
func setupEngine(t *testing.T) *gin.Engine {
	t.Helper()

	cfg := testutil.NewTestConfig()
	engine := bootstrap.NewBootstrap(cfg).SetupEngine()
	require.NoError(t, validator.RegisterAll())
	router.Setup(engine, cfg)
	return engine
}

func TestHealth(t *testing.T) {
	engine := setupEngine(t)

	recorder := testutil.ExecuteRequest(t, engine, testutil.TestRequest{
		Method: http.MethodGet,
		URL:    "/health",
	})

	require.Equal(t, http.StatusOK, recorder.Code)

	var body map[string]any
	testutil.ParseResponse(t, recorder, &body)
	assert.Equal(t, "healthy", body["status"])
}

func TestRoutes_ValidationEndpoints(t *testing.T) {
	engine := setupEngine(t)

	testCases := []struct {
		url   string
		value string
	}{
		{"/api/v1/validations/email", "user@mail.company.com"},
		{"/api/v1/validations/username", "ramy_gomaa"},
		{"/api/v1/validations/phone-number", "01555555555"},
		{"/api/v1/validations/national-id", "29812251234567"},
	}

	for _, tc := range testCases {
		t.Run(tc.url, func(t *testing.T) {
			recorder := testutil.ExecuteRequest(t, engine, testutil.TestRequest{
				Method: http.MethodPost,
				URL:    tc.url,
				Body:   validation.CheckRequest{Value: testutil.Ptr(tc.value)},
			})

			require.Equal(t, http.StatusOK, recorder.Code)

			var response validation.CheckResponse
			testutil.ParseResponse(t, recorder, &response)
			assert.True(t, response.Valid)
		})
	}
}

func TestRoutes_RegistrationCheck(t *testing.T) {
	engine := setupEngine(t)

	recorder := testutil.ExecuteRequest(t, engine, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/v1/registrations/check",
		Body: map[string]string{
			"email":       "user@example.com",
			"username":    "ramy_gomaa",
			"phoneNumber": "01012345678",
			"nationalId":  "29812380034567",
		},
	})

	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	var errorResponse sharedError.ErrorResponse
	testutil.ParseResponse(t, recorder, &errorResponse)
	assert.Equal(t, "National ID is invalid.", errorResponse.Message)
}

func TestRequestID(t *testing.T) {
	engine := setupEngine(t)

	t.Run("generated when absent", func(t *testing.T) {
		recorder := testutil.ExecuteRequest(t, engine, testutil.TestRequest{Method: http.MethodGet, URL: "/health"})

		assert.Len(t, recorder.Header().Get(middleware.RequestIDHeader), 36)
	})

	t.Run("echoed when supplied", func(t *testing.T) {
		recorder := testutil.ExecuteRequest(t, engine, testutil.TestRequest{
			Method:  http.MethodGet,
			URL:     "/health",
			Headers: map[string]string{middleware.RequestIDHeader: "req-123"},
		})

		assert.Equal(t, "req-123", recorder.Header().Get(middleware.RequestIDHeader))
	})
}

func TestCORSPreflight(t *testing.T) {
	engine := setupEngine(t)

	recorder := testutil.ExecuteRequest(t, engine, testutil.TestRequest{
		Method: http.MethodOptions,
		URL:    "/api/v1/validations/email",
		Headers: map[string]string{
			"Origin":                        "https://forms.example",
			"Access-Control-Request-Method": http.MethodPost,
		},
	})

	assert.Less(t, recorder.Code, 300)
	assert.Equal(t, "*", recorder.Header().Get("Access-Control-Allow-Origin"))
}

func TestRecovery(t *testing.T) {
	engine := setupEngine(t)
	engine.GET("/panic", func(c *gin.Context) {
		panic("boom")
	})

	recorder := testutil.ExecuteRequest(t, engine, testutil.TestRequest{Method: http.MethodGet, URL: "/panic"})

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)

	var errorResponse sharedError.ErrorResponse
	testutil.ParseResponse(t, recorder, &errorResponse)
	assert.Equal(t, sharedError.InternalServerError.Code, errorResponse.Code)
}
