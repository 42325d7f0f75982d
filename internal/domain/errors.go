// Package domain defines the core business entities and errors.
package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrEmptyContent is returned when required content is empty.
	ErrEmptyContent = errors.New("content cannot be empty")

	// ErrInvalidItemType is returned when a saved item carries no item type.
	ErrInvalidItemType = errors.New("item type cannot be empty")

	// ErrEmptyItemID is returned when a saved item has a nil ID.
	ErrEmptyItemID = errors.New("saved item ID cannot be empty")
)
