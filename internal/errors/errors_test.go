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
		err1 := &NotFoundError{Entity: "match"}
		err2 := &NotFoundError{Entity: "match"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "match"}
		err2 := &NotFoundError{Entity: "player"}
		assert.False(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is with predefined errors", func(t *testing.T) {
		assert.True(t, errors.Is(ErrMatchNotFound, ErrMatchNotFound))
		assert.False(t, errors.Is(ErrMatchNotFound, ErrMatchNotActive))
	})

	t.Run("IsNotFound helper", func(t *testing.T) {
		assert.True(t, IsNotFound(ErrPlayerNotFound))
		assert.True(t, IsNotFound(ErrMatchNotActive))
		assert.False(t, IsNotFound(ErrPossessionSum))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("Error message with field", func(t *testing.T) {
		err := &ValidationError{Field: "name", Message: "is required"}
		assert.Equal(t, "validation error: name - is required", err.Error())
	})

	t.Run("Error message without field", func(t *testing.T) {
		err := &ValidationError{Message: "is required"}
		assert.Equal(t, "validation error: is required", err.Error())
	})

	t.Run("IsValidation helper", func(t *testing.T) {
		err := NewValidationError("position", "is required")
		assert.True(t, IsValidation(err))
		assert.True(t, IsValidation(ErrPossessionSum))
		assert.False(t, IsValidation(ErrTeamNotFound))
	})
}

func TestStorageError(t *testing.T) {
	cause := fmt.Errorf("disk full")

	t.Run("Error message includes operation and cause", func(t *testing.T) {
		err := NewStorageError("save votes", cause)
		assert.Equal(t, "storage failure during save votes: disk full", err.Error())
	})

	t.Run("Unwrap exposes the cause", func(t *testing.T) {
		err := NewStorageError("save teams", cause)
		assert.Equal(t, cause, errors.Unwrap(err))
	})

	t.Run("IsStorage helper", func(t *testing.T) {
		assert.True(t, IsStorage(NewStorageError("save", cause)))
		assert.False(t, IsStorage(ErrMatchNotFound))
		assert.False(t, IsStorage(nil))
	})

	t.Run("IsStorage through wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("handling request: %w", NewStorageError("save", cause))
		assert.True(t, IsStorage(wrapped))
	})
}

func TestNewNotFoundError(t *testing.T) {
	err := NewNotFoundError("vote tally")
	assert.Equal(t, "vote tally not found", err.Error())
	assert.True(t, IsNotFound(err))
}
