package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/brandforge/brandforge-api/internal/api/shared"
	"github.com/brandforge/brandforge-api/internal/domain"
	"github.com/brandforge/brandforge-api/internal/generation"
	"github.com/brandforge/brandforge-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes.
// This prevents leaking internal error types or messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Upstream generation failures: every provider/backend was tried or none
	// was configured. The service itself is healthy.
	case errors.Is(err, generation.ErrNoProviderAvailable),
		errors.Is(err, generation.ErrAllProvidersFailed),
		errors.Is(err, generation.ErrImageGenerationUnavailable),
		errors.Is(err, generation.ErrAllImageBackendsFailed):
		return http.StatusBadGateway

	// Not found errors
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	// Bad request errors
	case errors.Is(err, store.ErrInvalidEntity),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, generation.ErrEmptyPrompt):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message based
// on the error type.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, generation.ErrNoProviderAvailable):
		return "No text generation provider is configured"

	case errors.Is(err, generation.ErrAllProvidersFailed):
		return "All text generation providers failed"

	case errors.Is(err, generation.ErrImageGenerationUnavailable):
		return "Image generation is not available"

	case errors.Is(err, generation.ErrAllImageBackendsFailed):
		return "All image generation backends failed"

	case errors.Is(err, store.ErrSavedItemNotFound):
		return "Saved item not found"

	case errors.Is(err, store.ErrNotFound):
		return "Resource not found"

	case errors.Is(err, store.ErrInvalidEntity):
		return "Invalid entity data"

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, generation.ErrEmptyPrompt):
		return "Invalid request data"

	default:
		return "An unexpected error occurred"
	}
}

// HandleAPIError maps an error to a status code and safe message and writes
// the response, logging the underlying error with redaction. overrideMessage,
// when non-empty, replaces the derived safe message.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, overrideMessage string) {
	status := MapErrorToStatusCode(err)
	message := overrideMessage
	if message == "" {
		message = GetSafeErrorMessage(err)
	}
	shared.RespondWithErrorAndLog(w, r, status, message, err)
}

// SanitizeValidationError converts a validator error into a short
// user-friendly message without echoing request contents back.
func SanitizeValidationError(err error) string {
	errMsg := err.Error()

	if strings.Contains(errMsg, "Field validation") {
		// Example: "Key: 'BrandRequest.Description' Error:Field validation for 'Description' failed on the 'required' tag"
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

// getValidationTagMessage maps validation tags to user-friendly error messages.
func getValidationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "min":
		return "too short"
	case "max":
		return "too long"
	case "oneof":
		return "invalid value"
	default:
		return "validation failed"
	}
}
