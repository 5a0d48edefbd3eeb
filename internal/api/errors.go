package api

import (
	"errors"
	"net/http"

	"github.com/postwright/postwright-api/internal/api/shared"
	"github.com/postwright/postwright-api/internal/domain"
	"github.com/postwright/postwright-api/internal/generation"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Bad request errors
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, generation.ErrEmptyPrompt):
		return http.StatusBadRequest

	// Content rejected by the generation endpoint's safety filters
	case errors.Is(err, generation.ErrContentBlocked):
		return http.StatusUnprocessableEntity

	// Upstream failures: exhausted retries or an unusable response
	case errors.Is(err, generation.ErrTransientFailure),
		errors.Is(err, generation.ErrInvalidResponse):
		return http.StatusBadGateway

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	// Handle nil error
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, domain.ErrValidation):
		return "Invalid post request"

	case errors.Is(err, generation.ErrContentBlocked):
		return "The request was blocked by content safety filters"

	case errors.Is(err, generation.ErrTransientFailure):
		return "The generation service is temporarily unavailable, please try again"

	case errors.Is(err, generation.ErrInvalidResponse):
		return "The generation service returned an unusable response"

	case errors.Is(err, generation.ErrInvalidConfig):
		return "The generation service is misconfigured"

	default:
		return "Failed to generate post"
	}
}

// HandleAPIError writes an error response using the standard status-code and
// message mapping. A non-empty overrideMessage replaces the mapped message.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, overrideMessage string) {
	status := MapErrorToStatusCode(err)

	message := overrideMessage
	if message == "" {
		message = GetSafeErrorMessage(err)
	}

	shared.RespondWithErrorAndLog(w, r, status, message, err)
}
