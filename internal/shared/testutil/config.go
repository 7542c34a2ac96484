package testutil

import (
	"time"

	"github.com/user-validation/go-api-server/internal/config"
)

// NewTestConfig creates a test configuration without reading the environment
func NewTestConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{
			Name: "user-validation-api-test",
			Env:  "test",
			Port: 8080,
		},
		CORS: config.CORSConfig{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders: []string{"*"},
			MaxAge:         86400,
		},
		Server: config.ServerConfig{
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    15 * time.Second,
			IdleTimeout:     60 * time.Second,
			RequestTimeout:  5 * time.Second,
			GracefulTimeout: 30 * time.Second,
		},
	}
}
