package registrar

import (
	"context"
	"fmt"

	"github.com/jobsboard/integration-bridge/internal/domain/integration"
)

// EmployerRetriever fetches authoritative current employer state from the
// source Jobs Board API.
type EmployerRetriever struct {
	source integration.JobsBoardGateway
}

// NewEmployerRetriever creates a new EmployerRetriever.
func NewEmployerRetriever(source integration.JobsBoardGateway) *EmployerRetriever {
	return &EmployerRetriever{source: source}
}

// Retrieve fetches the employer; a 404 from the source is fatal here since the
// caller was told the entity exists.
func (r *EmployerRetriever) Retrieve(ctx context.Context, id string) (*integration.Employer, error) {
	employer, err := r.source.GetEmployer(ctx, id)
	if err != nil {
		return nil, err
	}
	if employer == nil {
		return nil, fmt.Errorf("Employer with id=%s not found", id)
	}
	return employer, nil
}

// JobRetriever fetches authoritative current job state from the source Jobs
// Board API.
type JobRetriever struct {
	source integration.JobsBoardGateway
}

// NewJobRetriever creates a new JobRetriever.
func NewJobRetriever(source integration.JobsBoardGateway) *JobRetriever {
	return &JobRetriever{source: source}
}

// Retrieve fetches the job; a 404 from the source is fatal here.
func (r *JobRetriever) Retrieve(ctx context.Context, id string) (*integration.Job, error) {
	job, err := r.source.GetJob(ctx, id)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, fmt.Errorf("Job with id=%s not found", id)
	}
	return job, nil
}
