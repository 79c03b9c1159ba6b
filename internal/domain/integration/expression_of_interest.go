package integration

import (
	"errors"
	"fmt"
)

// ExpressionOfInterest records a prisoner's interest in a job. It is a value
// object with a composite identity (JobID, PrisonNumber).
type ExpressionOfInterest struct {
	// JobID is the local ID of the job the interest refers to
	JobID string
	// PrisonNumber identifies the interested prisoner
	PrisonNumber string
}

// Validation errors for expressions of interest.
var (
	ErrInterestMissingJobID        = errors.New("integration: expression of interest requires a job ID")
	ErrInterestMissingPrisonNumber = errors.New("integration: expression of interest requires a prison number")
)

// NewExpressionOfInterest creates a validated expression of interest.
func NewExpressionOfInterest(jobID, prisonNumber string) (ExpressionOfInterest, error) {
	if jobID == "" {
		return ExpressionOfInterest{}, ErrInterestMissingJobID
	}
	if prisonNumber == "" {
		return ExpressionOfInterest{}, ErrInterestMissingPrisonNumber
	}
	return ExpressionOfInterest{JobID: jobID, PrisonNumber: prisonNumber}, nil
}

// JobInterestIndex associates a job with the expressions of interest raised
// against it. The back-reference is kept as a separate index rather than a
// mutable pointer inside the value objects; consistency (interest.JobID must
// equal the job's ID) is checked once at construction.
type JobInterestIndex struct {
	jobID     string
	interests []ExpressionOfInterest
}

// NewJobInterestIndex builds the index for a job, rejecting any interest whose
// JobID does not match.
func NewJobInterestIndex(job *Job, interests []ExpressionOfInterest) (*JobInterestIndex, error) {
	if job == nil || job.ID == "" {
		return nil, errors.New("integration: job interest index requires a job with an ID")
	}
	idx := &JobInterestIndex{jobID: job.ID, interests: make([]ExpressionOfInterest, 0, len(interests))}
	for _, eoi := range interests {
		if eoi.JobID != job.ID {
			return nil, fmt.Errorf("integration: expression of interest for job %s cannot be indexed under job %s", eoi.JobID, job.ID)
		}
		idx.interests = append(idx.interests, eoi)
	}
	return idx, nil
}

// JobID returns the ID of the indexed job.
func (i *JobInterestIndex) JobID() string {
	return i.jobID
}

// Interests returns the indexed expressions of interest in insertion order.
func (i *JobInterestIndex) Interests() []ExpressionOfInterest {
	out := make([]ExpressionOfInterest, len(i.interests))
	copy(out, i.interests)
	return out
}
