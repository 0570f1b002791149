package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "team"}
		assert.Equal(t, "team not found", err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "folder"}
		err2 := &NotFoundError{Entity: "folder"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		assert.False(t, errors.Is(ErrTeamNotFound, ErrFolderNotFound))
	})

	t.Run("wrapped sentinel", func(t *testing.T) {
		err := fmt.Errorf("failed to load item: %w", ErrWorkItemNotFound)
		assert.True(t, errors.Is(err, ErrWorkItemNotFound))
		assert.True(t, IsNotFound(err))
	})

	t.Run("IsNotFound helper", func(t *testing.T) {
		assert.True(t, IsNotFound(ErrTeamNotFound))
		assert.False(t, IsNotFound(ErrHierarchyViolation))
	})
}

func TestAlreadyExistsError(t *testing.T) {
	t.Run("Error message with context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "folder", Context: "under this parent"}
		assert.Equal(t, "folder already exists under this parent", err.Error())
	})

	t.Run("Error message without context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "team"}
		assert.Equal(t, "team already exists", err.Error())
	})

	t.Run("IsAlreadyExists helper", func(t *testing.T) {
		assert.True(t, IsAlreadyExists(ErrTeamExists))
		assert.True(t, IsAlreadyExists(fmt.Errorf("create: %w", ErrFolderExists)))
		assert.False(t, IsAlreadyExists(ErrTeamNotFound))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("Error message with field", func(t *testing.T) {
		err := &ValidationError{Field: "name", Message: "is required"}
		assert.Equal(t, "validation error: name - is required", err.Error())
	})

	t.Run("Error message without field", func(t *testing.T) {
		err := &ValidationError{Message: "Invalid status change."}
		assert.Equal(t, "validation error: Invalid status change.", err.Error())
	})

	t.Run("IsValidation helper", func(t *testing.T) {
		assert.True(t, IsValidation(NewValidationError("name", "invalid")))
		assert.False(t, IsValidation(ErrTeamNotFound))
	})
}

func TestRuleErrors(t *testing.T) {
	err := NewRuleError(ErrCycleDetected, "Cannot move a folder inside itself.")

	assert.True(t, IsValidation(err))
	assert.True(t, errors.Is(err, ErrCycleDetected))
	assert.False(t, errors.Is(err, ErrHierarchyViolation))
	assert.Equal(t, "Cannot move a folder inside itself.", Message(err))

	wrapped := fmt.Errorf("move folder: %w", err)
	assert.True(t, errors.Is(wrapped, ErrCycleDetected))
	assert.Equal(t, "Cannot move a folder inside itself.", Message(wrapped))
}

func TestAuthErrors(t *testing.T) {
	assert.True(t, IsAuthorization(ErrPermissionDenied))
	assert.True(t, IsAuthorization(fmt.Errorf("resolve: %w", ErrPermissionDenied)))
	assert.False(t, IsAuthorization(ErrInvalidCredentials))
	assert.True(t, IsAuthentication(ErrInvalidCredentials))
	assert.True(t, IsConfiguration(NewConfigurationError("bad")))
}

func TestMessage(t *testing.T) {
	assert.Equal(t, "", Message(nil))
	assert.Equal(t, "team not found", Message(ErrTeamNotFound))
	assert.Equal(t, "is required", Message(NewValidationError("name", "is required")))
}
