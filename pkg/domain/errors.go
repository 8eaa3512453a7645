package domain

import "errors"

// Common domain errors. Use-cases wrap these with context, callers branch
// on them with errors.Is.
var (
	// ErrNotFound is returned when a requested resource is not found
	ErrNotFound = errors.New("resource not found")
	// ErrAlreadyExists is returned when trying to create a resource that already exists
	ErrAlreadyExists = errors.New("resource already exists")
	// ErrValidation is returned when input validation fails
	ErrValidation = errors.New("validation error")
	// ErrPersistence is returned when the storage layer fails to write
	ErrPersistence = errors.New("persistence failed")
	// ErrList is returned when the storage layer fails to list resources
	ErrList = errors.New("list failed")
)
