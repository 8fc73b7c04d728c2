package generation

import "errors"

// Common generation errors.
var (
	// ErrGenerationFailed is returned when the text model produced no usable
	// structured output for a generation pass.
	ErrGenerationFailed = errors.New("content generation failed")

	// ErrNoJSONFound is returned when no parseable brace-delimited JSON
	// object could be recovered from a model completion.
	ErrNoJSONFound = errors.New("no JSON object found in model output")

	// ErrTransientFailure is returned when a provider call failed in a way
	// that may succeed on retry (network error, 5xx, timeout).
	ErrTransientFailure = errors.New("transient generation failure")

	// ErrRateLimited is returned when the image provider rejected a request
	// because of rate limiting.
	ErrRateLimited = errors.New("image provider rate limited")

	// ErrInvalidConfig is returned when a generator is constructed with
	// invalid configuration.
	ErrInvalidConfig = errors.New("invalid generator configuration")

	// ErrInvalidResponse is returned when a provider response is missing
	// the expected content.
	ErrInvalidResponse = errors.New("invalid provider response")

	// ErrContentBlocked is returned when the text model refused to answer
	// because of its safety filters.
	ErrContentBlocked = errors.New("content blocked by safety filters")
)
