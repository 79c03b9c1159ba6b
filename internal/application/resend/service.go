// Package resend implements the administrative bulk discovery-and-resend
// workflow over the same registrars the event path uses.
package resend

import (
	"context"

	"go.uber.org/zap"

	"github.com/jobsboard/integration-bridge/internal/application/registrar"
	"github.com/jobsboard/integration-bridge/internal/domain/integration"
)

// defaultPageSize is the page size used when discovering entities.
const defaultPageSize = 50

// Result reports how many entities a resend acted on (ItemCount) out of how
// many it considered (TotalCount).
type Result struct {
	ItemCount  int64 `json:"itemCount"`
	TotalCount int64 `json:"totalCount"`
}

// Service discovers unregistered entities and pushes them downstream, or
// force-refreshes explicitly named ones. Failures abort the run and surface to
// the caller; nothing is skipped silently.
type Service struct {
	source             integration.JobsBoardGateway
	employerRegistrar  *registrar.EmployerRegistrar
	jobRegistrar       *registrar.JobRegistrar
	employerRetriever  *registrar.EmployerRetriever
	jobRetriever       *registrar.JobRetriever
	employerMappings   integration.EmployerExternalIDReader
	jobMappings        integration.JobExternalIDReader
	logger             *zap.Logger
	pageSize           int
}

// NewService creates a new resend Service.
func NewService(
	source integration.JobsBoardGateway,
	employerRegistrar *registrar.EmployerRegistrar,
	jobRegistrar *registrar.JobRegistrar,
	employerRetriever *registrar.EmployerRetriever,
	jobRetriever *registrar.JobRetriever,
	employerMappings integration.EmployerExternalIDReader,
	jobMappings integration.JobExternalIDReader,
	logger *zap.Logger,
) *Service {
	return &Service{
		source:            source,
		employerRegistrar: employerRegistrar,
		jobRegistrar:      jobRegistrar,
		employerRetriever: employerRetriever,
		jobRetriever:      jobRetriever,
		employerMappings:  employerMappings,
		jobMappings:       jobMappings,
		logger:            logger,
		pageSize:          defaultPageSize,
	}
}

// SetPageSize overrides the discovery page size. Values below 1 are ignored.
func (s *Service) SetPageSize(size int) {
	if size >= 1 {
		s.pageSize = size
	}
}

// ResendEmployers re-sends employers downstream. With no IDs it discovers and
// registers every not-yet-registered employer. With IDs and forceUpdate=false
// it registers only the unregistered ones among them; with forceUpdate=true it
// forces an update of every given employer regardless of registration state.
func (s *Service) ResendEmployers(ctx context.Context, ids []string, forceUpdate bool) (*Result, error) {
	if len(ids) == 0 {
		return s.discoverAndRegisterEmployers(ctx)
	}

	result := &Result{TotalCount: int64(len(ids))}
	for _, id := range ids {
		if !forceUpdate {
			exists, err := s.employerMappings.ExistsByID(ctx, id)
			if err != nil {
				return nil, err
			}
			if exists {
				continue
			}
		}

		employer, err := s.employerRetriever.Retrieve(ctx, id)
		if err != nil {
			return nil, err
		}

		if forceUpdate {
			err = s.employerRegistrar.RegisterUpdate(ctx, employer)
		} else {
			err = s.employerRegistrar.RegisterCreation(ctx, employer)
		}
		if err != nil {
			return nil, err
		}
		result.ItemCount++
	}

	s.logger.Info("employer resend finished",
		zap.Int64("item_count", result.ItemCount),
		zap.Int64("total_count", result.TotalCount),
		zap.Bool("force_update", forceUpdate),
	)
	return result, nil
}

// ResendJobs re-sends jobs downstream; same semantics as ResendEmployers.
func (s *Service) ResendJobs(ctx context.Context, ids []string, forceUpdate bool) (*Result, error) {
	if len(ids) == 0 {
		return s.discoverAndRegisterJobs(ctx)
	}

	result := &Result{TotalCount: int64(len(ids))}
	for _, id := range ids {
		if !forceUpdate {
			exists, err := s.jobMappings.ExistsByID(ctx, id)
			if err != nil {
				return nil, err
			}
			if exists {
				continue
			}
		}

		job, err := s.jobRetriever.Retrieve(ctx, id)
		if err != nil {
			return nil, err
		}

		if forceUpdate {
			err = s.jobRegistrar.RegisterUpdate(ctx, job)
		} else {
			err = s.jobRegistrar.RegisterCreation(ctx, job)
		}
		if err != nil {
			return nil, err
		}
		result.ItemCount++
	}

	s.logger.Info("job resend finished",
		zap.Int64("item_count", result.ItemCount),
		zap.Int64("total_count", result.TotalCount),
		zap.Bool("force_update", forceUpdate),
	)
	return result, nil
}

// discoverAndRegisterEmployers pages through every employer in the source
// system and registers the ones without a mapping.
func (s *Service) discoverAndRegisterEmployers(ctx context.Context) (*Result, error) {
	result := &Result{}
	for page := 0; ; page++ {
		employerPage, err := s.source.GetAllEmployers(ctx, page, s.pageSize)
		if err != nil {
			return nil, err
		}
		result.TotalCount = employerPage.Page.TotalElements

		for i := range employerPage.Content {
			employer := &employerPage.Content[i]
			exists, err := s.employerMappings.ExistsByID(ctx, employer.ID)
			if err != nil {
				return nil, err
			}
			if exists {
				continue
			}
			if err := s.employerRegistrar.RegisterCreation(ctx, employer); err != nil {
				return nil, err
			}
			result.ItemCount++
		}

		if page+1 >= employerPage.Page.TotalPages {
			break
		}
	}

	s.logger.Info("employer discovery resend finished",
		zap.Int64("item_count", result.ItemCount),
		zap.Int64("total_count", result.TotalCount),
	)
	return result, nil
}

// discoverAndRegisterJobs pages through every job in the source system and
// registers the ones without a mapping.
func (s *Service) discoverAndRegisterJobs(ctx context.Context) (*Result, error) {
	result := &Result{}
	for page := 0; ; page++ {
		jobPage, err := s.source.GetAllJobs(ctx, page, s.pageSize)
		if err != nil {
			return nil, err
		}
		result.TotalCount = jobPage.Page.TotalElements

		for i := range jobPage.Content {
			job := &jobPage.Content[i]
			exists, err := s.jobMappings.ExistsByID(ctx, job.ID)
			if err != nil {
				return nil, err
			}
			if exists {
				continue
			}
			if err := s.jobRegistrar.RegisterCreation(ctx, job); err != nil {
				return nil, err
			}
			result.ItemCount++
		}

		if page+1 >= jobPage.Page.TotalPages {
			break
		}
	}

	s.logger.Info("job discovery resend finished",
		zap.Int64("item_count", result.ItemCount),
		zap.Int64("total_count", result.TotalCount),
	)
	return result, nil
}
