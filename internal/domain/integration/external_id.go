package integration

import (
	"context"
	"strings"
	"time"
)

// ---------------------------------------------------------------------------
// External ID mappings
// ---------------------------------------------------------------------------

// EmployerExternalID maps a local employer ID to its downstream MN ID.
// A mapping is created exactly once, after a successful downstream creation,
// and is never updated or deleted in normal operation. Its presence is the
// single source of truth for "has this employer been registered yet?".
type EmployerExternalID struct {
	// ID is the local employer ID (stable string assigned by the source system)
	ID string
	// ExternalID is the numeric ID assigned by MN on creation
	ExternalID int64
	// CreatedAt is when this mapping was created
	CreatedAt time.Time
	// LastModifiedAt is the audit timestamp set on write
	LastModifiedAt time.Time
}

// NewEmployerExternalID creates a new employer mapping.
func NewEmployerExternalID(id string, externalID int64) (*EmployerExternalID, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrMappingInvalidLocalID
	}
	if externalID <= 0 {
		return nil, ErrMappingInvalidExternalID
	}
	now := time.Now()
	return &EmployerExternalID{
		ID:             id,
		ExternalID:     externalID,
		CreatedAt:      now,
		LastModifiedAt: now,
	}, nil
}

// JobExternalID maps a local job ID to its downstream MN ID. Same lifecycle
// rules as EmployerExternalID.
type JobExternalID struct {
	// ID is the local job ID
	ID string
	// ExternalID is the numeric ID assigned by MN on creation
	ExternalID int64
	// CreatedAt is when this mapping was created
	CreatedAt time.Time
	// LastModifiedAt is the audit timestamp set on write
	LastModifiedAt time.Time
}

// NewJobExternalID creates a new job mapping.
func NewJobExternalID(id string, externalID int64) (*JobExternalID, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrMappingInvalidLocalID
	}
	if externalID <= 0 {
		return nil, ErrMappingInvalidExternalID
	}
	now := time.Now()
	return &JobExternalID{
		ID:             id,
		ExternalID:     externalID,
		CreatedAt:      now,
		LastModifiedAt: now,
	}, nil
}

// ---------------------------------------------------------------------------
// Repository interfaces
// ---------------------------------------------------------------------------

// EmployerExternalIDReader defines the read side of the employer mapping store.
type EmployerExternalIDReader interface {
	// FindByID finds a mapping by local employer ID.
	// Returns ErrMappingNotFound when absent.
	FindByID(ctx context.Context, id string) (*EmployerExternalID, error)

	// FindByExternalID finds a mapping by downstream ID.
	FindByExternalID(ctx context.Context, externalID int64) (*EmployerExternalID, error)

	// ExistsByID reports whether a mapping exists for the local employer ID.
	ExistsByID(ctx context.Context, id string) (bool, error)
}

// EmployerExternalIDWriter defines the write side of the employer mapping store.
type EmployerExternalIDWriter interface {
	// Save inserts a new mapping. Both key components are independently
	// unique; a violation of either returns ErrMappingAlreadyExists. The
	// check must happen atomically at the storage layer, never through a
	// separate read-then-insert.
	Save(ctx context.Context, mapping *EmployerExternalID) error

	// DeleteAll removes every mapping. Test support only.
	DeleteAll(ctx context.Context) error
}

// EmployerExternalIDRepository is the full employer mapping store contract.
type EmployerExternalIDRepository interface {
	EmployerExternalIDReader
	EmployerExternalIDWriter
}

// JobExternalIDReader defines the read side of the job mapping store.
type JobExternalIDReader interface {
	// FindByID finds a mapping by local job ID.
	// Returns ErrMappingNotFound when absent.
	FindByID(ctx context.Context, id string) (*JobExternalID, error)

	// FindByExternalID finds a mapping by downstream ID. Used by the
	// expression-of-interest path to resolve MN job IDs back to local ones.
	FindByExternalID(ctx context.Context, externalID int64) (*JobExternalID, error)

	// ExistsByID reports whether a mapping exists for the local job ID.
	ExistsByID(ctx context.Context, id string) (bool, error)
}

// JobExternalIDWriter defines the write side of the job mapping store.
type JobExternalIDWriter interface {
	// Save inserts a new mapping; see EmployerExternalIDWriter.Save.
	Save(ctx context.Context, mapping *JobExternalID) error

	// DeleteAll removes every mapping. Test support only.
	DeleteAll(ctx context.Context) error
}

// JobExternalIDRepository is the full job mapping store contract.
type JobExternalIDRepository interface {
	JobExternalIDReader
	JobExternalIDWriter
}
