package generation

import "errors"

// Common errors returned by the generation package
var (
	// ErrNoProviderAvailable is returned when no text provider has been
	// configured with a credential. No network call is attempted in that case.
	ErrNoProviderAvailable = errors.New("no text generation provider available")

	// ErrAllProvidersFailed is returned when every configured provider in the
	// fallback chain failed. It wraps the error from the last provider tried.
	ErrAllProvidersFailed = errors.New("all text generation providers failed")

	// ErrImageGenerationUnavailable is returned when no image backend is
	// configured and the keyless fallback is disabled.
	ErrImageGenerationUnavailable = errors.New("image generation unavailable")

	// ErrAllImageBackendsFailed is returned when every image backend, including
	// the keyless fallback, failed to produce an image.
	ErrAllImageBackendsFailed = errors.New("all image generation backends failed")

	// ErrUpstreamHTTP is returned when a provider responds with a non-2xx status.
	ErrUpstreamHTTP = errors.New("upstream provider returned an error status")

	// ErrEmptyPrompt is returned when a provider is invoked with an empty prompt.
	ErrEmptyPrompt = errors.New("prompt cannot be empty")
)
