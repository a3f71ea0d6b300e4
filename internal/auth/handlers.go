package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// AuthHandler exposes token introspection
type AuthHandler struct{}

// NewAuthHandler creates a new auth handler
func NewAuthHandler() *AuthHandler {
	return &AuthHandler{}
}

// Validate godoc
// @Summary Validate the bearer token
// @Description Returns the claims of the token the request was authenticated with
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} AuthValidateResponse
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Router /auth/validate [get]
func (h *AuthHandler) Validate(c *gin.Context) {
	claims, ok := GetAuthClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}
	c.JSON(http.StatusOK, AuthValidateResponse{Valid: true, Claims: claims})
}
