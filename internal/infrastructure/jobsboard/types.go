package jobsboard

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jobsboard/integration-bridge/internal/domain/integration"
)

// employerResponse is the wire shape of GET /employers/{id}.
type employerResponse struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	Description    string     `json:"description"`
	Sector         string     `json:"sector"`
	Status         string     `json:"status"`
	CreatedAt      *time.Time `json:"createdAt"`
	LastModifiedAt *time.Time `json:"lastModifiedAt"`
}

func (r *employerResponse) toDomain() *integration.Employer {
	employer := &integration.Employer{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Sector:      r.Sector,
		Status:      r.Status,
	}
	if r.CreatedAt != nil {
		employer.CreatedAt = *r.CreatedAt
	}
	if r.LastModifiedAt != nil {
		employer.LastModifiedAt = *r.LastModifiedAt
	}
	return employer
}

// jobResponse is the wire shape of GET /jobs/{id}. Category-code lists travel
// comma-joined and are decoded into ordered slices.
type jobResponse struct {
	ID                       string           `json:"id"`
	Title                    string           `json:"jobTitle"`
	Sector                   string           `json:"sector"`
	IndustrySector           string           `json:"industrySector"`
	NumberOfVacancies        int              `json:"numberOfVacancies"`
	SourcePrimary            string           `json:"sourcePrimary"`
	SourceSecondary          string           `json:"sourceSecondary"`
	Charity                  string           `json:"charityName"`
	PostCode                 string           `json:"postCode"`
	SalaryFrom               decimal.Decimal  `json:"salaryFrom"`
	SalaryTo                 *decimal.Decimal `json:"salaryTo"`
	SalaryPeriod             string           `json:"salaryPeriod"`
	WorkPattern              string           `json:"workPattern"`
	HoursPerWeek             string           `json:"hoursPerWeek"`
	ContractType             string           `json:"contractType"`
	City                     string           `json:"city"`
	BaseLocation             string           `json:"baseLocation"`
	OffenceExclusions        string           `json:"offenceExclusions"`
	OffenceExclusionsDetails string           `json:"offenceExclusionsDetails"`
	EssentialCriteria        string           `json:"essentialCriteria"`
	DesirableCriteria        string           `json:"desirableCriteria"`
	Description              string           `json:"description"`
	HowToApply               string           `json:"howToApply"`
	ClosingDate              *time.Time       `json:"closingDate"`
	StartDate                *time.Time       `json:"startDate"`
	RollingOpportunity       bool             `json:"isRollingOpportunity"`
	PrisonLeaversJob         bool             `json:"isOnlyForPrisonLeavers"`
	SupportingDocumentation  string           `json:"supportingDocumentationRequired"`
	EmployerID               string           `json:"employerId"`
	CreatedAt                *time.Time       `json:"createdAt"`
}

func (r *jobResponse) toDomain() *integration.Job {
	job := &integration.Job{
		ID:                       r.ID,
		Title:                    r.Title,
		Sector:                   r.Sector,
		IndustrySector:           r.IndustrySector,
		NumberOfVacancies:        r.NumberOfVacancies,
		SourcePrimary:            r.SourcePrimary,
		SourceSecondary:          r.SourceSecondary,
		Charity:                  r.Charity,
		PostCode:                 r.PostCode,
		SalaryFrom:               r.SalaryFrom,
		SalaryTo:                 r.SalaryTo,
		SalaryPeriod:             r.SalaryPeriod,
		WorkPattern:              r.WorkPattern,
		HoursPerWeek:             r.HoursPerWeek,
		ContractType:             r.ContractType,
		City:                     r.City,
		BaseLocation:             r.BaseLocation,
		OffenceExclusions:        integration.SplitCodeList(r.OffenceExclusions),
		OffenceExclusionsDetails: r.OffenceExclusionsDetails,
		EssentialCriteria:        r.EssentialCriteria,
		DesirableCriteria:        r.DesirableCriteria,
		Description:              r.Description,
		HowToApply:               r.HowToApply,
		ClosingDate:              r.ClosingDate,
		StartDate:                r.StartDate,
		RollingOpportunity:       r.RollingOpportunity,
		PrisonLeaversJob:         r.PrisonLeaversJob,
		SupportingDocumentation:  integration.SplitCodeList(r.SupportingDocumentation),
		EmployerID:               r.EmployerID,
	}
	if r.CreatedAt != nil {
		job.CreatedAt = *r.CreatedAt
	}
	return job
}

// pageMeta mirrors the source API's page envelope metadata.
type pageMeta struct {
	Size          int   `json:"size"`
	Number        int   `json:"number"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
}

func (m pageMeta) toDomain() integration.PageMeta {
	return integration.PageMeta{
		Size:          m.Size,
		Number:        m.Number,
		TotalElements: m.TotalElements,
		TotalPages:    m.TotalPages,
	}
}

// employerPageResponse is the wire shape of GET /employers.
type employerPageResponse struct {
	Content []employerResponse `json:"content"`
	Page    pageMeta           `json:"page"`
}

// jobPageResponse is the wire shape of GET /jobs.
type jobPageResponse struct {
	Content []jobResponse `json:"content"`
	Page    pageMeta      `json:"page"`
}
