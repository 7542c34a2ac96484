package registration_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/user-validation/go-api-server/internal/registration"
	sharedError "github.com/user-validation/go-api-server/internal/shared/error"
	"github.com/user-validation/go-api-server/internal/shared/testutil"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()

	router := testutil.SetupTestRouter(t)
	router.POST("/api/v1/registrations/check", registration.NewRegistrationHandler().Check)
	return router
}

func validRequest() registration.CheckRequest {
	return registration.CheckRequest{
		Email:       "user@example.com",
		Username:    "ramy_gomaa",
		PhoneNumber: "01012345678",
		NationalID:  "29812251234567",
	}
}

func TestCheck_Success(t *testing.T) {
	// Given
	router := setupRouter(t)

	// When
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/v1/registrations/check",
		Body:   validRequest(),
	})

	// Then
	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestCheck_SurroundingWhitespaceIsAccepted(t *testing.T) {
	router := setupRouter(t)

	request := validRequest()
	request.Email = " user@example.com "
	request.PhoneNumber = "201012345678\n"

	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/v1/registrations/check",
		Body:   request,
	})

	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestCheck_ValidationError(t *testing.T) {
	router := setupRouter(t)

	testCases := []struct {
		name   string
		mutate func(*registration.CheckRequest)
	}{
		{"Invalid email", func(r *registration.CheckRequest) { r.Email = "userexample.com" }},
		{"Username too short", func(r *registration.CheckRequest) { r.Username = "ab" }},
		{"Phone with bad prefix", func(r *registration.CheckRequest) { r.PhoneNumber = "01812345678" }},
		{"National ID with month 13", func(r *registration.CheckRequest) { r.NationalID = "29813251234567" }},
		{"Missing email", func(r *registration.CheckRequest) { r.Email = "" }},
		{"Blank national ID", func(r *registration.CheckRequest) { r.NationalID = "   " }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Given
			request := validRequest()
			tc.mutate(&request)

			// When
			recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
				Method: http.MethodPost,
				URL:    "/api/v1/registrations/check",
				Body:   request,
			})

			// Then
			assert.Equal(t, http.StatusBadRequest, recorder.Code)

			var errorResponse sharedError.ErrorResponse
			testutil.ParseResponse(t, recorder, &errorResponse)
			assert.Equal(t, sharedError.ValidationFailed.Code, errorResponse.Code)
			assert.NotEmpty(t, errorResponse.Message)
		})
	}
}

func TestCheck_MalformedJSON(t *testing.T) {
	router := setupRouter(t)

	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/v1/registrations/check",
		Body:   testutil.RawBody("not json"),
	})

	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	var errorResponse sharedError.ErrorResponse
	testutil.ParseResponse(t, recorder, &errorResponse)
	assert.Equal(t, sharedError.InvalidRequest.Code, errorResponse.Code)
}
