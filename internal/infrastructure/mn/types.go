package mn

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jobsboard/integration-bridge/internal/domain/integration"
)

// employerRequest is the wire shape of POST/PUT /employers.
type employerRequest struct {
	ID           *int64 `json:"id,omitempty"`
	EmployerName string `json:"employerName"`
	EmployerBio  string `json:"employerBio"`
	SectorID     int64  `json:"sectorId"`
	PartnerID    int64  `json:"partnerId"`
}

func employerRequestFromDomain(e integration.MNEmployer) employerRequest {
	return employerRequest{
		ID:           e.ID,
		EmployerName: e.EmployerName,
		EmployerBio:  e.EmployerBio,
		SectorID:     e.SectorID,
		PartnerID:    e.PartnerID,
	}
}

// employerResponse is the wire shape MN returns for employer writes.
type employerResponse struct {
	ID           *int64 `json:"id"`
	EmployerName string `json:"employerName"`
	EmployerBio  string `json:"employerBio"`
	SectorID     int64  `json:"sectorId"`
	PartnerID    int64  `json:"partnerId"`
}

func (r *employerResponse) toDomain() *integration.MNEmployer {
	return &integration.MNEmployer{
		ID:           r.ID,
		EmployerName: r.EmployerName,
		EmployerBio:  r.EmployerBio,
		SectorID:     r.SectorID,
		PartnerID:    r.PartnerID,
	}
}

// jobRequest is the wire shape of POST/PUT /jobs-prospects. All reference
// values are MN numeric IDs; category-code lists travel comma-joined.
type jobRequest struct {
	ID                      *int64           `json:"id,omitempty"`
	EmployerID              int64            `json:"employerId"`
	JobTitle                string           `json:"jobTitle"`
	JobDescription          string           `json:"jobDescription"`
	JobSourceOneID          int64            `json:"jobSourceOneId"`
	JobSourceTwoID          *int64           `json:"jobSourceTwoId,omitempty"`
	SectorID                int64            `json:"sectorId"`
	IndustrySectorID        int64            `json:"industrySectorId"`
	WorkPatternID           int64            `json:"workPatternId"`
	ContractTypeID          int64            `json:"contractTypeId"`
	HoursPerWeekID          int64            `json:"hoursId"`
	SalaryFrom              decimal.Decimal  `json:"salaryFrom"`
	SalaryTo                *decimal.Decimal `json:"salaryTo,omitempty"`
	SalaryPeriodID          int64            `json:"salaryPeriodId"`
	BaseLocationID          *int64           `json:"baseLocationId,omitempty"`
	OffenceExclusionIDs     []int64          `json:"offenceExclusions"`
	OffenceExclusionsOther  string           `json:"offenceExclusionsDetails,omitempty"`
	EssentialCriteria       string           `json:"essentialJobCriteria"`
	DesirableCriteria       string           `json:"desirableJobCriteria,omitempty"`
	HowToApply              string           `json:"howToApply"`
	ClosingDate             *time.Time       `json:"closingDate,omitempty"`
	StartDate               *time.Time       `json:"startDate,omitempty"`
	City                    string           `json:"city"`
	PostCode                string           `json:"postCode"`
	NumberOfVacancies       int              `json:"numberOfVacancies"`
	Charity                 string           `json:"charity,omitempty"`
	RollingOpportunity      bool             `json:"isRollingOpportunity"`
	PrisonLeaversJob        bool             `json:"isOnlyForPrisonLeavers"`
	SupportingDocumentation string           `json:"supportingDocumentation"`
}

func jobRequestFromDomain(j integration.MNJob) jobRequest {
	offenceExclusionIDs := j.OffenceExclusionIDs
	if offenceExclusionIDs == nil {
		offenceExclusionIDs = []int64{}
	}
	return jobRequest{
		ID:                      j.ID,
		EmployerID:              j.EmployerID,
		JobTitle:                j.JobTitle,
		JobDescription:          j.JobDescription,
		JobSourceOneID:          j.JobSourceOneID,
		JobSourceTwoID:          j.JobSourceTwoID,
		SectorID:                j.SectorID,
		IndustrySectorID:        j.IndustrySectorID,
		WorkPatternID:           j.WorkPatternID,
		ContractTypeID:          j.ContractTypeID,
		HoursPerWeekID:          j.HoursPerWeekID,
		SalaryFrom:              j.SalaryFrom,
		SalaryTo:                j.SalaryTo,
		SalaryPeriodID:          j.SalaryPeriodID,
		BaseLocationID:          j.BaseLocationID,
		OffenceExclusionIDs:     offenceExclusionIDs,
		OffenceExclusionsOther:  j.OffenceExclusionsOther,
		EssentialCriteria:       j.EssentialCriteria,
		DesirableCriteria:       j.DesirableCriteria,
		HowToApply:              j.HowToApply,
		ClosingDate:             j.ClosingDate,
		StartDate:               j.StartDate,
		City:                    j.City,
		PostCode:                j.PostCode,
		NumberOfVacancies:       j.NumberOfVacancies,
		Charity:                 j.Charity,
		RollingOpportunity:      j.RollingOpportunity,
		PrisonLeaversJob:        j.PrisonLeaversJob,
		SupportingDocumentation: integration.JoinCodeList(j.SupportingDocumentation),
	}
}

// jobResponse is the wire shape MN returns for job writes.
type jobResponse struct {
	ID                      *int64           `json:"id"`
	EmployerID              int64            `json:"employerId"`
	JobTitle                string           `json:"jobTitle"`
	JobDescription          string           `json:"jobDescription"`
	JobSourceOneID          int64            `json:"jobSourceOneId"`
	JobSourceTwoID          *int64           `json:"jobSourceTwoId"`
	SectorID                int64            `json:"sectorId"`
	IndustrySectorID        int64            `json:"industrySectorId"`
	WorkPatternID           int64            `json:"workPatternId"`
	ContractTypeID          int64            `json:"contractTypeId"`
	HoursPerWeekID          int64            `json:"hoursId"`
	SalaryFrom              decimal.Decimal  `json:"salaryFrom"`
	SalaryTo                *decimal.Decimal `json:"salaryTo"`
	SalaryPeriodID          int64            `json:"salaryPeriodId"`
	BaseLocationID          *int64           `json:"baseLocationId"`
	OffenceExclusionIDs     []int64          `json:"offenceExclusions"`
	OffenceExclusionsOther  string           `json:"offenceExclusionsDetails"`
	EssentialCriteria       string           `json:"essentialJobCriteria"`
	DesirableCriteria       string           `json:"desirableJobCriteria"`
	HowToApply              string           `json:"howToApply"`
	ClosingDate             *time.Time       `json:"closingDate"`
	StartDate               *time.Time       `json:"startDate"`
	City                    string           `json:"city"`
	PostCode                string           `json:"postCode"`
	NumberOfVacancies       int              `json:"numberOfVacancies"`
	Charity                 string           `json:"charity"`
	RollingOpportunity      bool             `json:"isRollingOpportunity"`
	PrisonLeaversJob        bool             `json:"isOnlyForPrisonLeavers"`
	SupportingDocumentation string           `json:"supportingDocumentation"`
}

func (r *jobResponse) toDomain() *integration.MNJob {
	return &integration.MNJob{
		ID:                      r.ID,
		EmployerID:              r.EmployerID,
		JobTitle:                r.JobTitle,
		JobDescription:          r.JobDescription,
		JobSourceOneID:          r.JobSourceOneID,
		JobSourceTwoID:          r.JobSourceTwoID,
		SectorID:                r.SectorID,
		IndustrySectorID:        r.IndustrySectorID,
		WorkPatternID:           r.WorkPatternID,
		ContractTypeID:          r.ContractTypeID,
		HoursPerWeekID:          r.HoursPerWeekID,
		SalaryFrom:              r.SalaryFrom,
		SalaryTo:                r.SalaryTo,
		SalaryPeriodID:          r.SalaryPeriodID,
		BaseLocationID:          r.BaseLocationID,
		OffenceExclusionIDs:     r.OffenceExclusionIDs,
		OffenceExclusionsOther:  r.OffenceExclusionsOther,
		EssentialCriteria:       r.EssentialCriteria,
		DesirableCriteria:       r.DesirableCriteria,
		HowToApply:              r.HowToApply,
		ClosingDate:             r.ClosingDate,
		StartDate:               r.StartDate,
		City:                    r.City,
		PostCode:                r.PostCode,
		NumberOfVacancies:       r.NumberOfVacancies,
		Charity:                 r.Charity,
		RollingOpportunity:      r.RollingOpportunity,
		PrisonLeaversJob:        r.PrisonLeaversJob,
		SupportingDocumentation: integration.SplitCodeList(r.SupportingDocumentation),
	}
}
