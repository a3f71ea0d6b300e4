package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/Top-Technologies/downtime/internal/auth"
	apperrors "github.com/Top-Technologies/downtime/internal/errors"
	"github.com/Top-Technologies/downtime/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	defaultPage     = 1
	defaultPageSize = 20
)

// respondWithError maps service errors onto HTTP status codes
func respondWithError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case apperrors.IsAuthentication(err):
		status = http.StatusUnauthorized
	case apperrors.IsAuthorization(err):
		status = http.StatusForbidden
	case apperrors.IsValidation(err), errors.Is(err, apperrors.ErrInvalidPaginationParams):
		status = http.StatusBadRequest
	case apperrors.IsNotFound(err):
		status = http.StatusNotFound
	case apperrors.IsAlreadyExists(err):
		status = http.StatusConflict
	case apperrors.IsConfiguration(err):
		status = http.StatusServiceUnavailable
	}

	if status == http.StatusInternalServerError {
		logger.WithContext(c.Request.Context()).WithField("error", err.Error()).Error("Request failed")
		_ = c.Error(err)
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

// actingUser returns the authenticated user id or writes a 401
func actingUser(c *gin.Context) (uuid.UUID, bool) {
	id, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": apperrors.ErrMissingActingUser.Error()})
		return uuid.Nil, false
	}
	return id, true
}

// pathUUID parses the named path parameter or writes a 400
func pathUUID(c *gin.Context, name, entity string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + entity + " ID"})
		return uuid.Nil, false
	}
	return id, true
}

// queryUUID parses an optional uuid query parameter
func queryUUID(c *gin.Context, name string) (*uuid.UUID, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, apperrors.NewValidationError(name, "must be a valid UUID")
	}
	return &id, nil
}

// queryTime parses an optional RFC 3339 timestamp query parameter
func queryTime(c *gin.Context, name string) (*time.Time, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, apperrors.NewValidationError(name, "must be an RFC 3339 timestamp")
	}
	return &t, nil
}

// queryBool parses an optional boolean query parameter
func queryBool(c *gin.Context, name string) (*bool, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, apperrors.NewValidationError(name, "must be a boolean")
	}
	return &b, nil
}

// pagination reads page and page_size, defaulting to the first page of 20
func pagination(c *gin.Context) (int, int, error) {
	page, err := strconv.Atoi(c.DefaultQuery("page", strconv.Itoa(defaultPage)))
	if err != nil || page < 1 {
		return 0, 0, apperrors.NewValidationError("page", "must be a positive integer")
	}
	pageSize, err := strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(defaultPageSize)))
	if err != nil || pageSize < 1 {
		return 0, 0, apperrors.NewValidationError("page_size", "must be a positive integer")
	}
	return page, pageSize, nil
}
