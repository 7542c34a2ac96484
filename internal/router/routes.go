package router

import (
	"github.com/gin-gonic/gin"
	"github.com/user-validation/go-api-server/internal/config"
	"github.com/user-validation/go-api-server/internal/meta"
	"github.com/user-validation/go-api-server/internal/registration"
	"github.com/user-validation/go-api-server/internal/validation"
)

// Setup configures all application-specific routes using dependency injection
func Setup(router *gin.Engine, cfg *config.Config) {
	metaHandler := meta.NewHandler(cfg)
	router.GET("/health", metaHandler.Health)

	// service
	validationService := validation.NewValidationService()

	// handler
	validationHandler := validation.NewValidationHandler(validationService)
	registrationHandler := registration.NewRegistrationHandler()

	// API v1 routes
	validationV1 := router.Group("/api/v1/validations")
	{
		validationV1.POST("/email", validationHandler.Email)
		validationV1.POST("/username", validationHandler.Username)
		validationV1.POST("/phone-number", validationHandler.PhoneNumber)
		validationV1.POST("/national-id", validationHandler.NationalID)
		validationV1.POST("/national-id/decode", validationHandler.DecodeNationalID)
	}

	registrationV1 := router.Group("/api/v1/registrations")
	{
		registrationV1.POST("/check", registrationHandler.Check)
	}
}
