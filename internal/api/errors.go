package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/sinalize/sinalize-api/internal/api/shared"
	"github.com/sinalize/sinalize-api/internal/domain"
	"github.com/sinalize/sinalize-api/internal/service"
	"github.com/sinalize/sinalize-api/internal/service/auth"
	"github.com/sinalize/sinalize-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
//
// Duplicate email deliberately maps to 400, not 409, matching the behavior
// existing clients depend on.
func MapErrorToStatusCode(err error) int {
	switch {
	// Authentication errors
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrMissingToken),
		errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized

	// Not found errors
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	// Bad request errors
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, domain.ErrInvalidEmail),
		errors.Is(err, store.ErrDuplicate),
		errors.Is(err, store.ErrInvalidEntity),
		errors.Is(err, service.ErrUnknownPhase),
		errors.Is(err, service.ErrEmptyChatHistory):
		return http.StatusBadRequest

	// Default: internal server error (upstream and extraction failures land
	// here as well)
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message based
// on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	// Authentication errors
	case errors.Is(err, auth.ErrExpiredToken):
		return "Token expired"
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrMissingToken),
		errors.Is(err, domain.ErrUnauthorized):
		return "Invalid token"

	// Not found errors
	case errors.Is(err, store.ErrUserNotFound):
		return "User not found"
	case errors.Is(err, store.ErrCollectionNotFound):
		return "Collection not found"
	case errors.Is(err, store.ErrContentItemNotFound):
		return "Content item not found"
	case errors.Is(err, store.ErrRoadmapNotFound):
		return "Roadmap not found"
	case errors.Is(err, store.ErrNotFound):
		return "Not found"

	// Duplicate errors
	case errors.Is(err, store.ErrEmailExists):
		return "Email already registered"
	case errors.Is(err, store.ErrCollectionExists):
		return "Collection already exists for this topic"

	// Bad request errors carry their own safe detail
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, domain.ErrInvalidEmail),
		errors.Is(err, service.ErrUnknownPhase),
		errors.Is(err, service.ErrEmptyChatHistory):
		var validationErr *domain.ValidationError
		if errors.As(err, &validationErr) {
			return validationErr.Error()
		}
		return "Invalid request"

	default:
		return "An unexpected error occurred"
	}
}

// SanitizeValidationError converts raw validator error messages into
// user-friendly ones without leaking struct internals.
//
// The validator emits messages like:
//
//	Key: 'RegisterUserRequest.Email' Error:Field validation for 'Email' failed on the 'required' tag
func SanitizeValidationError(err error) string {
	errMsg := err.Error()

	if strings.Contains(errMsg, "Field validation") {
		parts := strings.Split(errMsg, "Error:")
		if len(parts) >= 2 {
			fieldParts := strings.Split(parts[1], "'")
			if len(fieldParts) >= 3 {
				field := fieldParts[1]
				var tag string
				if len(fieldParts) >= 5 {
					tag = fieldParts[3]
				}

				if tag != "" {
					return fmt.Sprintf("Invalid %s: %s", field, getValidationTagMessage(tag))
				}
				return fmt.Sprintf("Invalid %s", field)
			}
		}
	}

	return "Validation error"
}

// getValidationTagMessage maps validation tags to user-friendly error messages
func getValidationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "email":
		return "invalid email format"
	case "min":
		return "too short"
	case "max":
		return "too long"
	case "oneof":
		return "invalid value"
	case "gt", "gte":
		return "value too small"
	default:
		return "validation failed"
	}
}

// HandleServiceError maps a service error to its status code and safe
// message, logs the redacted detail, and writes the JSON error response.
func HandleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
}
