package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/brandforge/brandforge-api/internal/domain"
	"github.com/brandforge/brandforge-api/internal/generation"
	"github.com/brandforge/brandforge-api/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestMapErrorToStatusCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"no provider available", generation.ErrNoProviderAvailable, http.StatusBadGateway},
		{"all providers failed", fmt.Errorf("%w: last error: boom", generation.ErrAllProvidersFailed), http.StatusBadGateway},
		{"image unavailable", generation.ErrImageGenerationUnavailable, http.StatusBadGateway},
		{"all image backends failed", generation.ErrAllImageBackendsFailed, http.StatusBadGateway},
		{"saved item not found", store.ErrSavedItemNotFound, http.StatusNotFound},
		{"invalid entity", store.ErrInvalidEntity, http.StatusBadRequest},
		{"domain validation", domain.ErrValidation, http.StatusBadRequest},
		{"unknown error", errors.New("something odd"), http.StatusInternalServerError},
		{"nil-ish wrapped", fmt.Errorf("wrap: %w", errors.New("x")), http.StatusInternalServerError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, MapErrorToStatusCode(tc.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	t.Parallel()

	t.Run("known errors get specific messages", func(t *testing.T) {
		assert.Equal(t, "All text generation providers failed",
			GetSafeErrorMessage(fmt.Errorf("%w: last error: key leaked sk-12345", generation.ErrAllProvidersFailed)))
		assert.Equal(t, "Saved item not found", GetSafeErrorMessage(store.ErrSavedItemNotFound))
	})

	t.Run("unknown errors get a generic message", func(t *testing.T) {
		msg := GetSafeErrorMessage(errors.New("pq: connection to 10.0.0.5 refused"))
		assert.Equal(t, "An unexpected error occurred", msg)
	})

	t.Run("nil error", func(t *testing.T) {
		assert.Equal(t, "An unexpected error occurred", GetSafeErrorMessage(nil))
	})
}

func TestSanitizeValidationError(t *testing.T) {
	t.Parallel()

	err := errors.New("Key: 'BrandRequest.Description' Error:Field validation for 'Description' failed on the 'required' tag")
	assert.Equal(t, "Invalid Description: required field", SanitizeValidationError(err))

	assert.Equal(t, "Validation error", SanitizeValidationError(errors.New("random parse failure")))
}
