// Package domain defines the core business entities and errors.
package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrEmptyBusinessType is returned when a post request has no business type.
	ErrEmptyBusinessType = errors.New("business type cannot be empty")

	// ErrEmptyTargetAudience is returned when a post request has no target audience.
	ErrEmptyTargetAudience = errors.New("target audience cannot be empty")

	// ErrInvalidPostGoal is returned when a post goal is not a recognized option.
	ErrInvalidPostGoal = errors.New("invalid post goal")

	// ErrInvalidPostTone is returned when a post tone is not a recognized option.
	ErrInvalidPostTone = errors.New("invalid post tone")
)
