package integration

import (
	"context"
)

// RefDataGroup names a category group in the reference-data table.
type RefDataGroup string

// Reference data groups known to the bridge. The table itself is populated by
// a separate load process and is read-only here.
const (
	RefDataEmployerStatus   RefDataGroup = "employer_status"
	RefDataEmployerSector   RefDataGroup = "employer_sector"
	RefDataJobSource        RefDataGroup = "job_source"
	RefDataSalaryPeriod     RefDataGroup = "salary_period"
	RefDataWorkPattern      RefDataGroup = "work_pattern"
	RefDataContractType     RefDataGroup = "contract_type"
	RefDataHoursPerWeek     RefDataGroup = "hours_per_week"
	RefDataBaseLocation     RefDataGroup = "base_location"
	RefDataOffenceExclusion RefDataGroup = "offence_exclusion"
)

// RefDataMapping is a single row of the reference-data table: a category value
// within a group and the numeric ID the downstream system knows it by.
type RefDataMapping struct {
	Group      RefDataGroup
	Value      string
	ExternalID int64
}

// RefDataTranslator translates categorical domain values into downstream
// numeric IDs. Lookups are case-insensitive on the value. Implementations must
// tolerate concurrent reads.
type RefDataTranslator interface {
	// TranslateID returns the downstream ID for the given group and value.
	// A miss returns a *ReferenceDataNotFoundError naming both.
	TranslateID(ctx context.Context, group RefDataGroup, value string) (int64, error)

	// TranslateOptionalID returns nil when value is empty, otherwise behaves
	// as TranslateID and propagates its failure.
	TranslateOptionalID(ctx context.Context, group RefDataGroup, value string) (*int64, error)
}
