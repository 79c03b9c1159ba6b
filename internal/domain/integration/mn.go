package integration

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// ---------------------------------------------------------------------------
// MN request shapes
// ---------------------------------------------------------------------------

// MNEmployer is the downstream shape of an employer. Reference values are
// fully resolved to MN numeric IDs; category strings never cross this
// boundary. ID is nil on creation and set on updates.
type MNEmployer struct {
	// ID is the MN employer ID; nil for create requests
	ID *int64
	// EmployerName maps from the local employer name
	EmployerName string
	// EmployerBio maps from the local employer description
	EmployerBio string
	// SectorID is the translated employer_sector value
	SectorID int64
	// PartnerID is the translated employer_status value
	PartnerID int64
}

// MNJob is the downstream shape of a job. ID is nil on creation.
type MNJob struct {
	// ID is the MN job ID; nil for create requests
	ID *int64
	// EmployerID is the MN ID of the owning employer
	EmployerID int64
	// JobTitle is passed through unchanged
	JobTitle string
	// JobDescription is passed through unchanged
	JobDescription string
	// JobSourceOneID is the translated primary job_source value
	JobSourceOneID int64
	// JobSourceTwoID is the translated optional secondary source; nil when the
	// local value is empty (single-valued downstream)
	JobSourceTwoID *int64
	// SectorID is the translated employer_sector value of the job's sector
	SectorID int64
	// IndustrySectorID is the translated employer_sector value of the job's
	// industry sector
	IndustrySectorID int64
	// WorkPatternID is the translated work_pattern value
	WorkPatternID int64
	// ContractTypeID is the translated contract_type value
	ContractTypeID int64
	// HoursPerWeekID is the translated hours_per_week value
	HoursPerWeekID int64
	// SalaryFrom is passed through unchanged
	SalaryFrom decimal.Decimal
	// SalaryTo is passed through unchanged
	SalaryTo *decimal.Decimal
	// SalaryPeriodID is the translated salary_period value
	SalaryPeriodID int64
	// BaseLocationID is the translated optional base_location value
	BaseLocationID *int64
	// OffenceExclusionIDs are the translated offence_exclusion codes in their
	// original order; unknown and empty codes are dropped
	OffenceExclusionIDs []int64
	// OffenceExclusionsOther is the free-text "other" exclusions field
	OffenceExclusionsOther string
	// EssentialCriteria is passed through unchanged
	EssentialCriteria string
	// DesirableCriteria is passed through unchanged
	DesirableCriteria string
	// HowToApply is passed through unchanged
	HowToApply string
	// ClosingDate is passed through unchanged
	ClosingDate *time.Time
	// StartDate is passed through unchanged
	StartDate *time.Time
	// City is passed through unchanged
	City string
	// PostCode is passed through unchanged
	PostCode string
	// NumberOfVacancies is passed through unchanged
	NumberOfVacancies int
	// Charity is passed through unchanged
	Charity string
	// RollingOpportunity is passed through unchanged
	RollingOpportunity bool
	// PrisonLeaversJob is passed through unchanged
	PrisonLeaversJob bool
	// SupportingDocumentation codes are passed through unchanged
	SupportingDocumentation []string
}

// ---------------------------------------------------------------------------
// MNGateway port
// ---------------------------------------------------------------------------

// MNGateway is the port to the downstream MN API. Calls are synchronous and
// blocking with bounded timeouts; failures are wrapped by the caller's
// error-wrapping contract and never retried here.
type MNGateway interface {
	// CreateEmployer registers a new employer downstream and returns the
	// created record, including the assigned MN ID.
	CreateEmployer(ctx context.Context, employer MNEmployer) (*MNEmployer, error)

	// UpdateEmployer updates an existing downstream employer.
	UpdateEmployer(ctx context.Context, employer MNEmployer) (*MNEmployer, error)

	// CreateJob registers a new job downstream and returns the created
	// record, including the assigned MN ID.
	CreateJob(ctx context.Context, job MNJob) (*MNJob, error)

	// UpdateJob updates an existing downstream job.
	UpdateJob(ctx context.Context, job MNJob) (*MNJob, error)
}
