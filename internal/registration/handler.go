package registration

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/user-validation/go-api-server/internal/shared/handler"
	"github.com/user-validation/go-api-server/internal/shared/logger"
)

type RegistrationHandler struct{}

func NewRegistrationHandler() *RegistrationHandler {
	return &RegistrationHandler{}
}

// Check binds the form through the registered field tags.
// 200 with an empty object when every field passes, otherwise 400 ERROR-001
// with a message for the first failing field.
func (h *RegistrationHandler) Check(c *gin.Context) {
	var request CheckRequest
	if !handler.BindJSON(c, &request) {
		return
	}

	logger.FromContext(c.Request.Context()).Info("Registration fields accepted",
		"email", logger.MaskEmail(request.Email),
		"username", request.Username,
	)
	c.JSON(http.StatusOK, gin.H{})
}
