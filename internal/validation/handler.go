package validation

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/user-validation/go-api-server/internal/shared/handler"
)

type ValidationHandler struct {
	validationService *ValidationService
}

func NewValidationHandler(validationService *ValidationService) *ValidationHandler {
	return &ValidationHandler{
		validationService: validationService,
	}
}

func (h *ValidationHandler) Email(c *gin.Context) {
	h.check(c, FieldEmail)
}

func (h *ValidationHandler) Username(c *gin.Context) {
	h.check(c, FieldUsername)
}

func (h *ValidationHandler) PhoneNumber(c *gin.Context) {
	h.check(c, FieldPhoneNumber)
}

func (h *ValidationHandler) NationalID(c *gin.Context) {
	h.check(c, FieldNationalID)
}

// DecodeNationalID answers 200 with the decoded parts or 422 naming the failed check
func (h *ValidationHandler) DecodeNationalID(c *gin.Context) {
	var request CheckRequest
	if !handler.BindJSON(c, &request) {
		return
	}

	response, err := h.validationService.DecodeNationalID(c.Request.Context(), request.Value)
	if err != nil {
		handler.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// check always answers 200 for a parseable body; rejection is valid=false
func (h *ValidationHandler) check(c *gin.Context, field Field) {
	var request CheckRequest
	if !handler.BindJSON(c, &request) {
		return
	}

	valid := h.validationService.Check(c.Request.Context(), field, request.Value)
	c.JSON(http.StatusOK, CheckResponse{Field: field, Valid: valid})
}
