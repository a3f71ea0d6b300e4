package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Top-Technologies/downtime/internal/config"
	"github.com/Top-Technologies/downtime/internal/database/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *AuthConfig {
	return &AuthConfig{
		JWTSecret:   "test-signing-key",
		Issuer:      "downtime",
		TokenExpiry: time.Hour,
	}
}

func testUser() *models.User {
	return &models.User{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Login:     "jdoe",
		Name:      "John Doe",
		Email:     "jdoe@plant.example",
	}
}

func TestAuthConfig(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		assert.NoError(t, testConfig().ValidateConfig())
	})

	t.Run("missing jwt secret", func(t *testing.T) {
		cfg := testConfig()
		cfg.JWTSecret = ""

		err := cfg.ValidateConfig()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "JWT secret is required")
	})

	t.Run("missing issuer", func(t *testing.T) {
		cfg := testConfig()
		cfg.Issuer = ""

		err := cfg.ValidateConfig()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "JWT issuer is required")
	})

	t.Run("non-positive expiry", func(t *testing.T) {
		cfg := testConfig()
		cfg.TokenExpiry = 0

		err := cfg.ValidateConfig()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "token expiry must be positive")
	})

	t.Run("derived from application config", func(t *testing.T) {
		cfg := NewAuthConfig(&config.Config{JWTSecret: "s", JWTIssuer: "plant", JWTExpiryHours: 8})

		assert.Equal(t, "s", cfg.JWTSecret)
		assert.Equal(t, "plant", cfg.Issuer)
		assert.Equal(t, 8*time.Hour, cfg.TokenExpiry)
	})
}

func TestNewAuthService(t *testing.T) {
	t.Run("rejects invalid config", func(t *testing.T) {
		svc, err := NewAuthService(&AuthConfig{})
		assert.Error(t, err)
		assert.Nil(t, svc)
	})
}

func TestJWT(t *testing.T) {
	svc, err := NewAuthService(testConfig())
	require.NoError(t, err)
	user := testUser()

	t.Run("round trip", func(t *testing.T) {
		token, err := svc.GenerateJWT(user)
		require.NoError(t, err)

		claims, err := svc.ValidateJWT(token)
		require.NoError(t, err)
		assert.Equal(t, user.ID.String(), claims.UserID)
		assert.Equal(t, user.ID.String(), claims.Subject)
		assert.Equal(t, "jdoe", claims.Username)
		assert.Equal(t, "jdoe@plant.example", claims.Email)
		assert.Equal(t, "downtime", claims.Issuer)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other, err := NewAuthService(&AuthConfig{JWTSecret: "other", Issuer: "downtime", TokenExpiry: time.Hour})
		require.NoError(t, err)
		token, err := other.GenerateJWT(user)
		require.NoError(t, err)

		_, err = svc.ValidateJWT(token)
		assert.Error(t, err)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		other, err := NewAuthService(&AuthConfig{JWTSecret: "test-signing-key", Issuer: "elsewhere", TokenExpiry: time.Hour})
		require.NoError(t, err)
		token, err := other.GenerateJWT(user)
		require.NoError(t, err)

		_, err = svc.ValidateJWT(token)
		assert.Error(t, err)
	})

	t.Run("expired", func(t *testing.T) {
		past, err := NewAuthService(testConfig())
		require.NoError(t, err)
		past.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
		token, err := past.GenerateJWT(user)
		require.NoError(t, err)

		_, err = svc.ValidateJWT(token)
		assert.Error(t, err)
	})

	t.Run("unexpected signing method", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodNone, &AuthClaims{UserID: user.ID.String()})
		signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = svc.ValidateJWT(signed)
		assert.Error(t, err)
	})

	t.Run("subject only token", func(t *testing.T) {
		claims := jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			Issuer:    "downtime",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		}
		signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-signing-key"))
		require.NoError(t, err)

		parsed, err := svc.ValidateJWT(signed)
		require.NoError(t, err)
		assert.Equal(t, user.ID.String(), parsed.UserID)
	})

	t.Run("subject is not a uuid", func(t *testing.T) {
		claims := jwt.RegisteredClaims{
			Subject:   "12345",
			Issuer:    "downtime",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		}
		signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-signing-key"))
		require.NoError(t, err)

		_, err = svc.ValidateJWT(signed)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "not a user id")
	})
}

func TestRequireAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc, err := NewAuthService(testConfig())
	require.NoError(t, err)
	middleware := NewAuthMiddleware(svc)
	user := testUser()

	router := gin.New()
	router.GET("/protected", middleware.RequireAuth(), func(c *gin.Context) {
		id, ok := GetUserID(c)
		require.True(t, ok)
		name, _ := GetUsername(c)
		c.JSON(http.StatusOK, gin.H{"user_id": id.String(), "username": name})
	})
	router.GET("/auth/validate", middleware.RequireAuth(), NewAuthHandler().Validate)

	t.Run("missing header", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Authorization header is required")
	})

	t.Run("not a bearer header", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Basic abc")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid authorization header format")
	})

	t.Run("invalid token", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer garbage")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid token")
	})

	t.Run("valid token sets acting user", func(t *testing.T) {
		token, err := svc.GenerateJWT(user)
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		var body map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, user.ID.String(), body["user_id"])
		assert.Equal(t, "jdoe", body["username"])
	})

	t.Run("validate endpoint echoes claims", func(t *testing.T) {
		token, err := svc.GenerateJWT(user)
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/auth/validate", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		var resp AuthValidateResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.Valid)
		assert.Equal(t, user.ID.String(), resp.Claims.UserID)
	})
}

func TestGetUserID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("absent", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		_, ok := GetUserID(c)
		assert.False(t, ok)
	})

	t.Run("not a uuid", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Set("user_id", "42")
		_, ok := GetUserID(c)
		assert.False(t, ok)
	})

	t.Run("wrong type", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Set("user_id", int64(42))
		_, ok := GetUserID(c)
		assert.False(t, ok)
	})
}
