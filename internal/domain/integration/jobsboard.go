package integration

import "context"

// PageMeta describes a page of a paged source API response.
type PageMeta struct {
	Size          int   `json:"size"`
	Number        int   `json:"number"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
}

// EmployerPage is one page of employers from the source API.
type EmployerPage struct {
	Content []Employer
	Page    PageMeta
}

// JobPage is one page of jobs from the source API.
type JobPage struct {
	Content []Job
	Page    PageMeta
}

// JobsBoardGateway is the port to the source Jobs Board API, the authoritative
// store of employer and job state.
type JobsBoardGateway interface {
	// GetEmployer fetches the current state of an employer.
	// Returns (nil, nil) when the source responds 404.
	GetEmployer(ctx context.Context, id string) (*Employer, error)

	// GetJob fetches the current state of a job.
	// Returns (nil, nil) when the source responds 404.
	GetJob(ctx context.Context, id string) (*Job, error)

	// GetAllEmployers fetches one page of employers. Pages are zero-indexed.
	GetAllEmployers(ctx context.Context, page, size int) (*EmployerPage, error)

	// GetAllJobs fetches one page of jobs. Pages are zero-indexed.
	GetAllJobs(ctx context.Context, page, size int) (*JobPage, error)

	// CreateExpressionOfInterest records a prisoner's interest in a job in
	// the source system.
	CreateExpressionOfInterest(ctx context.Context, jobID, prisonNumber string) error
}
