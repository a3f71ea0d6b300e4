package auth

import (
	"fmt"
	"time"

	"github.com/Top-Technologies/downtime/internal/config"
)

// AuthConfig holds the token settings for the application
type AuthConfig struct {
	JWTSecret   string        `yaml:"jwt_secret" json:"jwt_secret"`
	Issuer      string        `yaml:"issuer" json:"issuer"`
	TokenExpiry time.Duration `yaml:"token_expiry" json:"token_expiry"`
}

// NewAuthConfig derives the auth settings from the application config
func NewAuthConfig(cfg *config.Config) *AuthConfig {
	return &AuthConfig{
		JWTSecret:   cfg.JWTSecret,
		Issuer:      cfg.JWTIssuer,
		TokenExpiry: time.Duration(cfg.JWTExpiryHours) * time.Hour,
	}
}

// ValidateConfig validates the authentication configuration
func (c *AuthConfig) ValidateConfig() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT secret is required")
	}
	if c.Issuer == "" {
		return fmt.Errorf("JWT issuer is required")
	}
	if c.TokenExpiry <= 0 {
		return fmt.Errorf("token expiry must be positive")
	}
	return nil
}
