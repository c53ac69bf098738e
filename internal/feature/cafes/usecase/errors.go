// Package usecase implements the business logic for café records.
package usecase

import "errors"

var (
	// ErrCafeNotFound is returned when no café exists for the given id.
	ErrCafeNotFound = errors.New("cafe not found")

	// ErrMapURLTaken is returned when another café already uses the
	// submitted map URL.
	ErrMapURLTaken = errors.New("map url already registered")
)
