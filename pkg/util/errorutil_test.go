package util

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantCode   string
		wantStatus int
	}{
		{name: "validation", err: NewValidationError("bad input", nil), wantCode: "VALIDATION_FAILED", wantStatus: http.StatusBadRequest},
		{name: "duplicate", err: NewDuplicate("user", nil), wantCode: "DUPLICATE_ENTITY", wantStatus: http.StatusConflict},
		{name: "not found", err: NewNotFound("staff", nil), wantCode: "NOT_FOUND", wantStatus: http.StatusNotFound},
		{name: "unauthorized", err: NewUnauthorized("nope"), wantCode: "UNAUTHORIZED", wantStatus: http.StatusUnauthorized},
		{name: "forbidden", err: NewForbidden("nope"), wantCode: "FORBIDDEN", wantStatus: http.StatusForbidden},
		{name: "server failure", err: NewServerFailure(errors.New("boom")), wantCode: "SERVER_FAILURE", wantStatus: http.StatusInternalServerError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			domainErr := ToDomainError(tc.err)
			assert.Equal(t, tc.wantCode, domainErr.Code)
			assert.Equal(t, tc.wantStatus, domainErr.HTTPStatus)
		})
	}
}

func TestDomainErrorMessages(t *testing.T) {
	assert.EqualError(t, NewDuplicate("user", nil), "user already exists")
	assert.EqualError(t, NewNotFound("department", nil), "department not found")
}

func TestDomainErrorUnwrap(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewServerFailure(cause)
	assert.ErrorIs(t, err, cause)
}

func TestToDomainError(t *testing.T) {
	t.Run("nil", func(t *testing.T) {
		assert.Nil(t, ToDomainError(nil))
	})

	t.Run("passes domain errors through", func(t *testing.T) {
		original := NewValidationError("bad", map[string]any{"field": "email"})
		converted := ToDomainError(original)
		assert.Equal(t, "VALIDATION_FAILED", converted.Code)
		assert.Equal(t, "email", converted.Details["field"])
	})

	t.Run("unwraps nested domain errors", func(t *testing.T) {
		wrapped := fmt.Errorf("while onboarding: %w", NewDuplicate("user", nil))
		assert.Equal(t, "DUPLICATE_ENTITY", ToDomainError(wrapped).Code)
	})

	t.Run("no rows becomes not found", func(t *testing.T) {
		converted := ToDomainError(pgx.ErrNoRows)
		assert.Equal(t, "NOT_FOUND", converted.Code)
	})

	t.Run("unknown errors become server failure", func(t *testing.T) {
		converted := ToDomainError(errors.New("boom"))
		assert.Equal(t, "SERVER_FAILURE", converted.Code)
		assert.Equal(t, "internal server error", converted.Message)
	})
}

func TestPredicates(t *testing.T) {
	require.True(t, IsDuplicate(NewDuplicate("user", nil)))
	require.True(t, IsNotFound(NewNotFound("user", nil)))
	require.True(t, IsValidation(NewValidationError("bad", nil)))

	assert.False(t, IsDuplicate(NewNotFound("user", nil)))
	assert.False(t, IsNotFound(errors.New("plain")))
	assert.False(t, IsCode(nil, "NOT_FOUND"))
}
