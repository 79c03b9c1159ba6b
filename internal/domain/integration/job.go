package integration

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// codeListSeparator is the wire encoding separator for category-code lists.
const codeListSeparator = ","

// Job is the source-system job aggregate. Categorical fields hold source
// category values; translation to MN numeric IDs happens in the converter.
// Category-code lists (offence exclusions, supporting documentation) are held
// as ordered slices; the comma-joined encoding exists only at the wire.
type Job struct {
	// ID is the stable UUID assigned by the source system
	ID string
	// Title is the job title
	Title string
	// Sector is a category value in the employer_sector group
	Sector string
	// IndustrySector is the employer's industry category
	IndustrySector string
	// NumberOfVacancies is how many openings this job has
	NumberOfVacancies int
	// SourcePrimary is a category value in the job_source group
	SourcePrimary string
	// SourceSecondary is an optional second source; single-valued downstream
	SourceSecondary string
	// Charity is the partnered charity name, if any
	Charity string
	// PostCode is the job location post code
	PostCode string
	// SalaryFrom is the lower bound of the salary range
	SalaryFrom decimal.Decimal
	// SalaryTo is the optional upper bound of the salary range
	SalaryTo *decimal.Decimal
	// SalaryPeriod is a category value in the salary_period group
	SalaryPeriod string
	// WorkPattern is a category value in the work_pattern group
	WorkPattern string
	// HoursPerWeek is a category value in the hours_per_week group
	HoursPerWeek string
	// ContractType is a category value in the contract_type group
	ContractType string
	// City is the job location city
	City string
	// BaseLocation is an optional category value in the base_location group
	BaseLocation string
	// OffenceExclusions is an ordered list of offence_exclusion category codes
	OffenceExclusions []string
	// OffenceExclusionsDetails is the free-text "other" exclusions field
	OffenceExclusionsDetails string
	// EssentialCriteria is free text
	EssentialCriteria string
	// DesirableCriteria is free text
	DesirableCriteria string
	// Description is the job's free-text description
	Description string
	// HowToApply is free text
	HowToApply string
	// ClosingDate is when applications close; nil for rolling opportunities
	ClosingDate *time.Time
	// StartDate is the optional expected start date
	StartDate *time.Time
	// RollingOpportunity marks jobs with no fixed closing date
	RollingOpportunity bool
	// PrisonLeaversJob marks jobs open to prison leavers
	PrisonLeaversJob bool
	// SupportingDocumentation is an ordered list of documentation category codes
	SupportingDocumentation []string
	// EmployerID references the owning employer by local ID
	EmployerID string
	// CreatedAt is set by the source system
	CreatedAt time.Time
}

// SplitCodeList decodes a comma-joined category-code list, trimming whitespace
// and dropping empty tokens while preserving order.
func SplitCodeList(joined string) []string {
	if strings.TrimSpace(joined) == "" {
		return nil
	}
	parts := strings.Split(joined, codeListSeparator)
	codes := make([]string, 0, len(parts))
	for _, p := range parts {
		if code := strings.TrimSpace(p); code != "" {
			codes = append(codes, code)
		}
	}
	return codes
}

// JoinCodeList encodes a category-code list into its comma-joined wire form.
// SplitCodeList(JoinCodeList(codes)) round-trips without loss or reordering.
func JoinCodeList(codes []string) string {
	return strings.Join(codes, codeListSeparator)
}
