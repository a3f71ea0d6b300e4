package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "downtime log"}
		assert.Equal(t, "downtime log not found", err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "downtime reason"}
		err2 := &NotFoundError{Entity: "downtime reason"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "downtime reason"}
		err2 := &NotFoundError{Entity: "department"}
		assert.False(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is with predefined errors", func(t *testing.T) {
		assert.True(t, errors.Is(ErrDowntimeLogNotFound, ErrDowntimeLogNotFound))
		assert.False(t, errors.Is(ErrDowntimeLogNotFound, ErrDowntimeReasonNotFound))
	})

	t.Run("IsNotFound helper", func(t *testing.T) {
		assert.True(t, IsNotFound(ErrUserNotFound))
		assert.True(t, IsNotFound(fmt.Errorf("lookup: %w", ErrDepartmentNotFound)))
		assert.False(t, IsNotFound(ErrOnlyReporterCanEdit))
	})
}

func TestAlreadyExistsError(t *testing.T) {
	t.Run("Error message with context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "user", Context: "with this login"}
		assert.Equal(t, "user already exists with this login", err.Error())
	})

	t.Run("Error message without context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "user"}
		assert.Equal(t, "user already exists", err.Error())
	})

	t.Run("IsAlreadyExists helper", func(t *testing.T) {
		assert.True(t, IsAlreadyExists(ErrDowntimeLogExists))
		assert.False(t, IsAlreadyExists(ErrDowntimeLogNotFound))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("Error message with field", func(t *testing.T) {
		err := &ValidationError{Field: "start_time", Message: "is required"}
		assert.Equal(t, "validation error: start_time - is required", err.Error())
	})

	t.Run("Error message without field", func(t *testing.T) {
		err := &ValidationError{Message: "invalid payload"}
		assert.Equal(t, "validation error: invalid payload", err.Error())
	})

	t.Run("IsValidation helper", func(t *testing.T) {
		assert.True(t, IsValidation(ErrResponsibleUsersRequired))
		assert.True(t, IsValidation(fmt.Errorf("update reason: %w", ErrResponsibleUsersReselect)))
		assert.False(t, IsValidation(ErrDowntimeLogNotFound))
	})
}

func TestAuthorizationError(t *testing.T) {
	t.Run("Reporter rejection names the role", func(t *testing.T) {
		assert.Equal(t, "Only the reporter can edit this downtime log.", ErrOnlyReporterCanEdit.Error())
		assert.True(t, IsAuthorization(ErrOnlyReporterCanEdit))
	})

	t.Run("Responsible rejection names the role", func(t *testing.T) {
		assert.Contains(t, ErrOnlyResponsibleCanApprove.Error(), "responsible users")
		assert.True(t, IsAuthorization(fmt.Errorf("approve: %w", ErrOnlyResponsibleCanApprove)))
	})

	t.Run("Not an authentication error", func(t *testing.T) {
		assert.False(t, IsAuthentication(ErrOnlyResponsibleCanApprove))
		assert.True(t, IsAuthentication(ErrMissingActingUser))
	})
}

func TestHelperFunctions(t *testing.T) {
	t.Run("NewNotFoundError", func(t *testing.T) {
		err := NewNotFoundError("custom entity")
		assert.Equal(t, "custom entity not found", err.Error())
		assert.True(t, IsNotFound(err))
	})

	t.Run("NewAlreadyExistsError", func(t *testing.T) {
		err := NewAlreadyExistsError("custom", "in scope")
		assert.Equal(t, "custom already exists in scope", err.Error())
		assert.True(t, IsAlreadyExists(err))
	})

	t.Run("NewValidationError", func(t *testing.T) {
		err := NewValidationError("field", "message")
		assert.Equal(t, "validation error: field - message", err.Error())
		assert.True(t, IsValidation(err))
	})

	t.Run("NewConfigurationError", func(t *testing.T) {
		err := NewConfigurationError("missing bucket")
		assert.True(t, IsConfiguration(err))
		assert.True(t, IsConfiguration(ErrStorageNotConfigured))
	})
}
