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

// AlreadyExistsError represents an error when an entity already exists.
// Unique-key races surface as this error as well; callers re-read and retry.
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "under this parent"
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

// ValidationError represents a validation error.
// Rule optionally classifies the violation (hierarchy, cycle, transition, ...).
type ValidationError struct {
	Field   string
	Message string
	Rule    error
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the rule so errors.Is(err, ErrCycleDetected) works
func (e *ValidationError) Unwrap() error {
	return e.Rule
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents authorization-related errors (permission denied)
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
	ErrTeamNotFound          = &NotFoundError{Entity: "team"}
	ErrUserNotFound          = &NotFoundError{Entity: "user"}
	ErrMembershipNotFound    = &NotFoundError{Entity: "team membership"}
	ErrWorkCycleNotFound     = &NotFoundError{Entity: "work cycle"}
	ErrWorkItemNotFound      = &NotFoundError{Entity: "work item"}
	ErrAttachmentNotFound    = &NotFoundError{Entity: "attachment"}
	ErrFolderNotFound        = &NotFoundError{Entity: "folder"}
	ErrNotificationNotFound  = &NotFoundError{Entity: "notification"}
	ErrAnalyticsNotFound     = &NotFoundError{Entity: "analytics"}
	ErrOrgAssignmentNotFound = &NotFoundError{Entity: "org assignment"}
)

// Already Exists Errors
var (
	ErrTeamExists       = &AlreadyExistsError{Entity: "team", Context: "with this name under the same parent"}
	ErrUserExists       = &AlreadyExistsError{Entity: "user", Context: "with this username"}
	ErrMembershipExists = &AlreadyExistsError{Entity: "team membership", Context: "for this user"}
	ErrFolderExists     = &AlreadyExistsError{Entity: "folder", Context: "with this name under the same parent"}
	ErrWorkItemExists   = &AlreadyExistsError{Entity: "work item", Context: "for this owner"}
)

// Rule classifications carried by ValidationError.Rule
var (
	ErrHierarchyViolation    = errors.New("hierarchy violation")
	ErrCycleDetected         = errors.New("cycle detected")
	ErrInvalidTransition     = errors.New("invalid transition")
	ErrFolderNotEmpty        = errors.New("folder not empty")
	ErrSystemFolderProtected = errors.New("system folder protected")
	ErrTeamHasChildren       = errors.New("team has child teams")
	ErrInvalidPlacement      = errors.New("invalid attachment placement")
)

// Authentication and authorization errors
var (
	ErrInvalidCredentials = &AuthenticationError{Message: "invalid username or password"}
	ErrInactiveUser       = &AuthenticationError{Message: "user account is inactive"}
	ErrPermissionDenied   = &AuthorizationError{Message: "You do not have permission to perform this action."}
	ErrAdminRequired      = &AuthorizationError{Message: "admin access required"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.Is(err, &NotFoundError{}) || errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.Is(err, &AlreadyExistsError{}) || errors.As(err, &existsErr)
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

// Message returns the user-facing text of an application error.
// Validation errors yield their bare message, everything else its Error().
func Message(err error) string {
	if err == nil {
		return ""
	}
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return validationErr.Message
	}
	return err.Error()
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewRuleError creates a ValidationError classified by one of the rule sentinels
func NewRuleError(rule error, message string) error {
	return &ValidationError{Message: message, Rule: rule}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}
