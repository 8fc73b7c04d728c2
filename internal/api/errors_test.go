package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sinalize/sinalize-api/internal/domain"
	"github.com/sinalize/sinalize-api/internal/service"
	"github.com/sinalize/sinalize-api/internal/service/auth"
	"github.com/sinalize/sinalize-api/internal/store"
)

func TestMapErrorToStatusCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil error", err: nil, want: http.StatusInternalServerError},
		{name: "expired token", err: auth.ErrExpiredToken, want: http.StatusUnauthorized},
		{name: "invalid token", err: auth.ErrInvalidToken, want: http.StatusUnauthorized},
		{name: "user not found", err: store.ErrUserNotFound, want: http.StatusNotFound},
		{name: "collection not found", err: store.ErrCollectionNotFound, want: http.StatusNotFound},
		{name: "content item not found", err: store.ErrContentItemNotFound, want: http.StatusNotFound},
		// duplicate email is a client error, not a conflict
		{name: "email exists", err: store.ErrEmailExists, want: http.StatusBadRequest},
		{name: "collection exists", err: store.ErrCollectionExists, want: http.StatusBadRequest},
		{name: "validation", err: domain.ErrValidation, want: http.StatusBadRequest},
		{name: "invalid id", err: domain.ErrInvalidID, want: http.StatusBadRequest},
		{
			name: "unknown phase",
			err: domain.NewValidationError(
				"fase",
				"must be one of palavras, frases or jogos",
				service.ErrUnknownPhase,
			),
			want: http.StatusBadRequest,
		},
		{
			name: "wrapped not found",
			err:  fmt.Errorf("lookup failed: %w", store.ErrUserNotFound),
			want: http.StatusNotFound,
		},
		{
			name: "content service error keeps the cause",
			err: service.NewContentServiceError(
				"generate_content",
				"collection lookup failed",
				store.ErrCollectionNotFound,
			),
			want: http.StatusNotFound,
		},
		{name: "unknown error", err: errors.New("boom"), want: http.StatusInternalServerError},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, MapErrorToStatusCode(tc.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil error", err: nil, want: "An unexpected error occurred"},
		{name: "user not found", err: store.ErrUserNotFound, want: "User not found"},
		{name: "email exists", err: store.ErrEmailExists, want: "Email already registered"},
		{name: "expired token", err: auth.ErrExpiredToken, want: "Token expired"},
		{
			name: "validation error keeps its field detail",
			err:  domain.NewValidationError("topic", "cannot be empty", domain.ErrValidation),
			want: "topic cannot be empty",
		},
		{
			name: "internal details are hidden",
			err:  errors.New("pq: connection refused on 10.0.0.3"),
			want: "An unexpected error occurred",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, GetSafeErrorMessage(tc.err))
		})
	}
}

func TestSanitizeValidationError(t *testing.T) {
	t.Parallel()

	type emailOnly struct {
		Email string `validate:"required,email"`
	}

	v := validator.New()
	err := v.Struct(emailOnly{})
	require.Error(t, err)

	msg := SanitizeValidationError(err)
	assert.Equal(t, "Invalid Email: required field", msg)

	err = v.Struct(emailOnly{Email: "not-an-email"})
	require.Error(t, err)
	assert.Equal(t, "Invalid Email: invalid email format", SanitizeValidationError(err))

	assert.Equal(t, "Validation error", SanitizeValidationError(errors.New("boom")))
}
