// Package registrar owns the create/update orchestration against the
// downstream MN system and the mapping lifecycle that records it.
package registrar

import (
	"context"
	"errors"

	"github.com/jobsboard/integration-bridge/internal/domain/integration"
)

// EmployerConverter transforms an Employer aggregate into the MN request
// shape. Pure apart from the reference-data lookups it issues; a
// ReferenceDataNotFoundError from the translator propagates untouched.
type EmployerConverter struct {
	translator integration.RefDataTranslator
}

// NewEmployerConverter creates a new EmployerConverter.
func NewEmployerConverter(translator integration.RefDataTranslator) *EmployerConverter {
	return &EmployerConverter{translator: translator}
}

// Convert builds the MN employer request. externalID is nil for create flows
// and carries the known MN ID for update flows.
func (c *EmployerConverter) Convert(ctx context.Context, employer *integration.Employer, externalID *int64) (integration.MNEmployer, error) {
	sectorID, err := c.translator.TranslateID(ctx, integration.RefDataEmployerSector, employer.Sector)
	if err != nil {
		return integration.MNEmployer{}, err
	}
	partnerID, err := c.translator.TranslateID(ctx, integration.RefDataEmployerStatus, employer.Status)
	if err != nil {
		return integration.MNEmployer{}, err
	}

	return integration.MNEmployer{
		ID:           externalID,
		EmployerName: employer.Name,
		EmployerBio:  employer.Description,
		SectorID:     sectorID,
		PartnerID:    partnerID,
	}, nil
}

// JobConverter transforms a Job aggregate into the MN request shape.
type JobConverter struct {
	translator integration.RefDataTranslator
}

// NewJobConverter creates a new JobConverter.
func NewJobConverter(translator integration.RefDataTranslator) *JobConverter {
	return &JobConverter{translator: translator}
}

// Convert builds the MN job request. employerExternalID is the MN ID of the
// owning employer, which must already be registered. externalID is nil for
// create flows and carries the known MN ID for update flows.
func (c *JobConverter) Convert(ctx context.Context, job *integration.Job, employerExternalID int64, externalID *int64) (integration.MNJob, error) {
	sourceOneID, err := c.translator.TranslateID(ctx, integration.RefDataJobSource, job.SourcePrimary)
	if err != nil {
		return integration.MNJob{}, err
	}
	sourceTwoID, err := c.translator.TranslateOptionalID(ctx, integration.RefDataJobSource, job.SourceSecondary)
	if err != nil {
		return integration.MNJob{}, err
	}
	sectorID, err := c.translator.TranslateID(ctx, integration.RefDataEmployerSector, job.Sector)
	if err != nil {
		return integration.MNJob{}, err
	}
	industrySectorID, err := c.translator.TranslateID(ctx, integration.RefDataEmployerSector, job.IndustrySector)
	if err != nil {
		return integration.MNJob{}, err
	}
	workPatternID, err := c.translator.TranslateID(ctx, integration.RefDataWorkPattern, job.WorkPattern)
	if err != nil {
		return integration.MNJob{}, err
	}
	contractTypeID, err := c.translator.TranslateID(ctx, integration.RefDataContractType, job.ContractType)
	if err != nil {
		return integration.MNJob{}, err
	}
	hoursPerWeekID, err := c.translator.TranslateID(ctx, integration.RefDataHoursPerWeek, job.HoursPerWeek)
	if err != nil {
		return integration.MNJob{}, err
	}
	salaryPeriodID, err := c.translator.TranslateID(ctx, integration.RefDataSalaryPeriod, job.SalaryPeriod)
	if err != nil {
		return integration.MNJob{}, err
	}
	baseLocationID, err := c.translator.TranslateOptionalID(ctx, integration.RefDataBaseLocation, job.BaseLocation)
	if err != nil {
		return integration.MNJob{}, err
	}
	offenceExclusionIDs, err := c.translateOffenceExclusions(ctx, job.OffenceExclusions)
	if err != nil {
		return integration.MNJob{}, err
	}

	return integration.MNJob{
		ID:                      externalID,
		EmployerID:              employerExternalID,
		JobTitle:                job.Title,
		JobDescription:          job.Description,
		JobSourceOneID:          sourceOneID,
		JobSourceTwoID:          sourceTwoID,
		SectorID:                sectorID,
		IndustrySectorID:        industrySectorID,
		WorkPatternID:           workPatternID,
		ContractTypeID:          contractTypeID,
		HoursPerWeekID:          hoursPerWeekID,
		SalaryFrom:              job.SalaryFrom,
		SalaryTo:                job.SalaryTo,
		SalaryPeriodID:          salaryPeriodID,
		BaseLocationID:          baseLocationID,
		OffenceExclusionIDs:     offenceExclusionIDs,
		OffenceExclusionsOther:  job.OffenceExclusionsDetails,
		EssentialCriteria:       job.EssentialCriteria,
		DesirableCriteria:       job.DesirableCriteria,
		HowToApply:              job.HowToApply,
		ClosingDate:             job.ClosingDate,
		StartDate:               job.StartDate,
		City:                    job.City,
		PostCode:                job.PostCode,
		NumberOfVacancies:       job.NumberOfVacancies,
		Charity:                 job.Charity,
		RollingOpportunity:      job.RollingOpportunity,
		PrisonLeaversJob:        job.PrisonLeaversJob,
		SupportingDocumentation: job.SupportingDocumentation,
	}, nil
}

// translateOffenceExclusions translates each exclusion code in order. Unknown
// and empty codes are dropped rather than failing the conversion; any other
// translator failure propagates.
func (c *JobConverter) translateOffenceExclusions(ctx context.Context, codes []string) ([]int64, error) {
	ids := make([]int64, 0, len(codes))
	for _, code := range codes {
		id, err := c.translator.TranslateOptionalID(ctx, integration.RefDataOffenceExclusion, code)
		if err != nil {
			var notFound *integration.ReferenceDataNotFoundError
			if errors.As(err, &notFound) {
				continue
			}
			return nil, err
		}
		if id != nil {
			ids = append(ids, *id)
		}
	}
	return ids, nil
}
