package handler

import (
	sharedError "github.com/user-validation/go-api-server/internal/shared/error"
	"github.com/user-validation/go-api-server/internal/shared/validator"
	"github.com/gin-gonic/gin"
)

// BindJSON parses and validates JSON request body
// Returns true if binding succeeded, false if failed (response already sent)
//
// Usage:
//
//	var req RegistrationRequest
//	if !handler.BindJSON(c, &req) {
//	    return
//	}
func BindJSON(c *gin.Context, obj any) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		// Add error to context for middleware logging
		_ = c.Error(err)

		if resp, ok := validator.ToErrorResponse(err); ok {
			c.JSON(resp.Status, resp)
		} else {
			// JSON parsing error or other binding errors
			c.JSON(sharedError.InvalidRequest.Status, sharedError.InvalidRequest)
		}
		return false
	}
	return true
}

// RespondError sends errResp and records err for the request log
func RespondError(c *gin.Context, err error, errResp sharedError.ErrorResponse) {
	_ = c.Error(err)
	c.JSON(errResp.Status, errResp)
}

// RespondDomainError sends the response registered for err, falling back to a 500.
//
// Usage:
//
//	if err != nil {
//	    handler.RespondDomainError(c, err)
//	    return
//	}
func RespondDomainError(c *gin.Context, err error) {
	if resp, ok := sharedError.ResolveDomainError(err); ok {
		RespondError(c, err, resp)
		return
	}
	RespondError(c, err, sharedError.InternalServerError)
}
