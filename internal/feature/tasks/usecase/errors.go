// Package usecase implements the business logic for the tasks feature.
package usecase

import "errors"

var (
	// ErrTaskNotFound is returned when no task matches the given ID and owner.
	// A task owned by another user is indistinguishable from a missing one,
	// so existence is never leaked across accounts.
	ErrTaskNotFound = errors.New("task not found")

	// ErrInvalidTask is returned when task fields fail validation.
	ErrInvalidTask = errors.New("invalid task")
)
