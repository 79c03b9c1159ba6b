package integration

import (
	"errors"
	"fmt"
)

// Mapping errors returned by the external-ID repositories.
var (
	// ErrMappingNotFound is returned when no external-ID mapping exists for
	// the given key.
	ErrMappingNotFound = errors.New("integration: external ID mapping not found")
	// ErrMappingAlreadyExists is returned when saving a mapping whose local ID
	// or external ID is already present. The uniqueness is enforced by the
	// storage layer, so this error is an expected outcome of a lost race, not
	// a defect of the caller.
	ErrMappingAlreadyExists = errors.New("integration: external ID mapping already exists")
)

// Validation errors for mapping construction.
var (
	ErrMappingInvalidLocalID    = errors.New("integration: local ID must not be empty")
	ErrMappingInvalidExternalID = errors.New("integration: external ID must be positive")
)

// ReferenceDataNotFoundError indicates that a category value has no configured
// downstream ID. This signals a data/config mismatch between the source and
// downstream systems and is never retried.
type ReferenceDataNotFoundError struct {
	Group RefDataGroup
	Value string
}

// Error implements the error interface.
func (e *ReferenceDataNotFoundError) Error() string {
	return fmt.Sprintf("Reference data not found; group=%s, value=%s", e.Group, e.Value)
}

// NewReferenceDataNotFoundError creates a ReferenceDataNotFoundError for the
// given group and value.
func NewReferenceDataNotFoundError(group RefDataGroup, value string) *ReferenceDataNotFoundError {
	return &ReferenceDataNotFoundError{Group: group, Value: value}
}
