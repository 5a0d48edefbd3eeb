package generation

import "errors"

// Common errors returned by the generation package
var (
	// ErrGenerationFailed is returned when post generation fails for any general reason
	ErrGenerationFailed = errors.New("failed to generate post text")

	// ErrInvalidResponse is returned when the LLM response cannot be used or is malformed
	ErrInvalidResponse = errors.New("invalid response from language model")

	// ErrContentBlocked is returned when the LLM blocks the content due to safety filters
	ErrContentBlocked = errors.New("content blocked by language model safety filters")

	// ErrTransientFailure is returned for temporary errors that might resolve on retry
	ErrTransientFailure = errors.New("transient error during post generation")

	// ErrInvalidConfig is returned when the generator configuration is invalid
	ErrInvalidConfig = errors.New("invalid generator configuration")

	// ErrEmptyPrompt is returned when a prompt is empty.
	ErrEmptyPrompt = errors.New("prompt cannot be empty")
)
