package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "with this login"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError is a user-facing rejection naming the role an action requires
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrDepartmentNotFound      = &NotFoundError{Entity: "department"}
	ErrUserNotFound            = &NotFoundError{Entity: "user"}
	ErrProductionOrderNotFound = &NotFoundError{Entity: "production order"}
	ErrDowntimeReasonNotFound  = &NotFoundError{Entity: "downtime reason"}
	ErrDowntimeLogNotFound     = &NotFoundError{Entity: "downtime log"}
	ErrActivityNotFound        = &NotFoundError{Entity: "activity"}
	ErrAttachmentNotFound      = &NotFoundError{Entity: "attachment"}
	ErrSequenceNotFound        = &NotFoundError{Entity: "sequence"}
)

// Already Exists Errors
var (
	ErrDepartmentExists      = &AlreadyExistsError{Entity: "department", Context: "with this name"}
	ErrUserExists            = &AlreadyExistsError{Entity: "user", Context: "with this login or email"}
	ErrProductionOrderExists = &AlreadyExistsError{Entity: "production order", Context: "with this reference"}
	ErrDowntimeLogExists     = &AlreadyExistsError{Entity: "downtime log", Context: "with this reference"}
)

// Workflow Errors
var (
	ErrOnlyReporterCanEdit       = &AuthorizationError{Message: "Only the reporter can edit this downtime log."}
	ErrOnlyResponsibleCanApprove = &AuthorizationError{Message: "Only responsible users can approve this downtime log."}
	ErrActivityNotAssignedToUser = &AuthorizationError{Message: "Only the assigned user can complete this activity."}
	ErrResponsibleUsersRequired  = &ValidationError{Field: "responsible_user_ids", Message: "at least one responsible user is required"}
	ErrResponsibleUsersReselect  = &ValidationError{Field: "responsible_user_ids", Message: "responsible users must be re-selected when the department changes"}
	ErrEndBeforeStart            = &ValidationError{Field: "end_time", Message: "end time must not be before start time"}
	ErrInactiveReason            = &ValidationError{Field: "reason_id", Message: "downtime reason is archived"}
	ErrInvalidCategory           = &ValidationError{Field: "category", Message: "unknown downtime category"}
	ErrInvalidNotificationType   = &ValidationError{Field: "notification_type", Message: "unknown notification type"}
	ErrInvalidState              = &ValidationError{Field: "state", Message: "unknown downtime state"}
	ErrInvalidPaginationParams   = errors.New("invalid pagination parameters")
	ErrStorageNotConfigured      = &ConfigurationError{Message: "attachment storage is not configured"}
	ErrDirectoryNotConfigured    = &ConfigurationError{Message: "directory lookup is not configured"}
	ErrDirectoryUserNotFound     = &NotFoundError{Entity: "directory user"}
	ErrMissingActingUser         = &AuthenticationError{Message: "acting user not found in context"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}
