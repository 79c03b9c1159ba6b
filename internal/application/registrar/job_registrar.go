package registrar

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/jobsboard/integration-bridge/internal/domain/integration"
)

// JobRegistrar orchestrates job registration against MN. Jobs reference an
// employer that must already be mapped; a missing employer mapping is fatal
// and never retried here.
type JobRegistrar struct {
	mappings         integration.JobExternalIDRepository
	employerMappings integration.EmployerExternalIDReader
	mn               integration.MNGateway
	converter        *JobConverter
	logger           *zap.Logger
}

// NewJobRegistrar creates a new JobRegistrar.
func NewJobRegistrar(
	mappings integration.JobExternalIDRepository,
	employerMappings integration.EmployerExternalIDReader,
	mn integration.MNGateway,
	converter *JobConverter,
	logger *zap.Logger,
) *JobRegistrar {
	return &JobRegistrar{
		mappings:         mappings,
		employerMappings: employerMappings,
		mn:               mn,
		converter:        converter,
		logger:           logger,
	}
}

// RegisterCreation registers a newly created job with MN. If a mapping already
// exists the call is an idempotent no-op.
func (r *JobRegistrar) RegisterCreation(ctx context.Context, job *integration.Job) error {
	exists, err := r.mappings.ExistsByID(ctx, job.ID)
	if err != nil {
		return r.wrapCreationError(job, err)
	}
	if exists {
		r.logger.Info("job already registered, skipping creation",
			zap.String("job_id", job.ID),
			zap.String("job_title", job.Title),
		)
		return nil
	}

	if err := r.registerCreation(ctx, job); err != nil {
		return r.wrapCreationError(job, err)
	}

	r.logger.Info("job registered",
		zap.String("job_id", job.ID),
		zap.String("job_title", job.Title),
	)
	return nil
}

func (r *JobRegistrar) registerCreation(ctx context.Context, job *integration.Job) error {
	employerExternalID, err := r.resolveEmployerExternalID(ctx, job)
	if err != nil {
		return err
	}

	request, err := r.converter.Convert(ctx, job, employerExternalID, nil)
	if err != nil {
		return err
	}

	created, err := r.mn.CreateJob(ctx, request)
	if err != nil {
		return err
	}
	if created == nil || created.ID == nil {
		return errors.New("MN Job ID is missing!")
	}

	mapping, err := integration.NewJobExternalID(job.ID, *created.ID)
	if err != nil {
		return err
	}
	return r.mappings.Save(ctx, mapping)
}

// RegisterUpdate pushes the current job state to MN. Updates require a prior
// creation; there is no create-on-update fallback.
func (r *JobRegistrar) RegisterUpdate(ctx context.Context, job *integration.Job) error {
	if err := r.registerUpdate(ctx, job); err != nil {
		return r.wrapUpdateError(job, err)
	}

	r.logger.Info("job update registered",
		zap.String("job_id", job.ID),
		zap.String("job_title", job.Title),
	)
	return nil
}

func (r *JobRegistrar) registerUpdate(ctx context.Context, job *integration.Job) error {
	mapping, err := r.mappings.FindByID(ctx, job.ID)
	if err != nil {
		if errors.Is(err, integration.ErrMappingNotFound) {
			return fmt.Errorf("Job with id=%s not found (ID mapping missing): %w", job.ID, err)
		}
		return err
	}

	employerExternalID, err := r.resolveEmployerExternalID(ctx, job)
	if err != nil {
		return err
	}

	request, err := r.converter.Convert(ctx, job, employerExternalID, &mapping.ExternalID)
	if err != nil {
		return err
	}

	updated, err := r.mn.UpdateJob(ctx, request)
	if err != nil {
		return err
	}
	if updated == nil || updated.ID == nil || *updated.ID != mapping.ExternalID {
		return errors.New("MN Job ID has changed!")
	}
	return nil
}

// resolveEmployerExternalID looks up the MN ID of the job's employer, which
// must have been registered before any of its jobs.
func (r *JobRegistrar) resolveEmployerExternalID(ctx context.Context, job *integration.Job) (int64, error) {
	mapping, err := r.employerMappings.FindByID(ctx, job.EmployerID)
	if err != nil {
		if errors.Is(err, integration.ErrMappingNotFound) {
			return 0, fmt.Errorf("Employer with id=%s not found (ID mapping missing): %w", job.EmployerID, err)
		}
		return 0, err
	}
	return mapping.ExternalID, nil
}

func (r *JobRegistrar) wrapCreationError(job *integration.Job, err error) error {
	return fmt.Errorf("Fail to register job-creation; id=%s, title=%s: %w", job.ID, job.Title, err)
}

func (r *JobRegistrar) wrapUpdateError(job *integration.Job, err error) error {
	return fmt.Errorf("Fail to register job-update; id=%s, title=%s: %w", job.ID, job.Title, err)
}
