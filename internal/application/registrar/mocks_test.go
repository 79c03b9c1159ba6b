package registrar

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/jobsboard/integration-bridge/internal/domain/integration"
)

// =============================================================================
// Mock ports shared by the registrar tests
// =============================================================================

// MockRefDataTranslator is a mock implementation of RefDataTranslator
type MockRefDataTranslator struct {
	mock.Mock
}

func (m *MockRefDataTranslator) TranslateID(ctx context.Context, group integration.RefDataGroup, value string) (int64, error) {
	args := m.Called(ctx, group, value)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRefDataTranslator) TranslateOptionalID(ctx context.Context, group integration.RefDataGroup, value string) (*int64, error) {
	args := m.Called(ctx, group, value)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*int64), args.Error(1)
}

// MockMNGateway is a mock implementation of MNGateway
type MockMNGateway struct {
	mock.Mock
}

func (m *MockMNGateway) CreateEmployer(ctx context.Context, employer integration.MNEmployer) (*integration.MNEmployer, error) {
	args := m.Called(ctx, employer)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*integration.MNEmployer), args.Error(1)
}

func (m *MockMNGateway) UpdateEmployer(ctx context.Context, employer integration.MNEmployer) (*integration.MNEmployer, error) {
	args := m.Called(ctx, employer)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*integration.MNEmployer), args.Error(1)
}

func (m *MockMNGateway) CreateJob(ctx context.Context, job integration.MNJob) (*integration.MNJob, error) {
	args := m.Called(ctx, job)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*integration.MNJob), args.Error(1)
}

func (m *MockMNGateway) UpdateJob(ctx context.Context, job integration.MNJob) (*integration.MNJob, error) {
	args := m.Called(ctx, job)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*integration.MNJob), args.Error(1)
}

// MockEmployerMappingRepository is a mock implementation of EmployerExternalIDRepository
type MockEmployerMappingRepository struct {
	mock.Mock
}

func (m *MockEmployerMappingRepository) FindByID(ctx context.Context, id string) (*integration.EmployerExternalID, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*integration.EmployerExternalID), args.Error(1)
}

func (m *MockEmployerMappingRepository) FindByExternalID(ctx context.Context, externalID int64) (*integration.EmployerExternalID, error) {
	args := m.Called(ctx, externalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*integration.EmployerExternalID), args.Error(1)
}

func (m *MockEmployerMappingRepository) ExistsByID(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockEmployerMappingRepository) Save(ctx context.Context, mapping *integration.EmployerExternalID) error {
	args := m.Called(ctx, mapping)
	return args.Error(0)
}

func (m *MockEmployerMappingRepository) DeleteAll(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockJobMappingRepository is a mock implementation of JobExternalIDRepository
type MockJobMappingRepository struct {
	mock.Mock
}

func (m *MockJobMappingRepository) FindByID(ctx context.Context, id string) (*integration.JobExternalID, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*integration.JobExternalID), args.Error(1)
}

func (m *MockJobMappingRepository) FindByExternalID(ctx context.Context, externalID int64) (*integration.JobExternalID, error) {
	args := m.Called(ctx, externalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*integration.JobExternalID), args.Error(1)
}

func (m *MockJobMappingRepository) ExistsByID(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockJobMappingRepository) Save(ctx context.Context, mapping *integration.JobExternalID) error {
	args := m.Called(ctx, mapping)
	return args.Error(0)
}

func (m *MockJobMappingRepository) DeleteAll(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockJobsBoardGateway is a mock implementation of JobsBoardGateway
type MockJobsBoardGateway struct {
	mock.Mock
}

func (m *MockJobsBoardGateway) GetEmployer(ctx context.Context, id string) (*integration.Employer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*integration.Employer), args.Error(1)
}

func (m *MockJobsBoardGateway) GetJob(ctx context.Context, id string) (*integration.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*integration.Job), args.Error(1)
}

func (m *MockJobsBoardGateway) GetAllEmployers(ctx context.Context, page, size int) (*integration.EmployerPage, error) {
	args := m.Called(ctx, page, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*integration.EmployerPage), args.Error(1)
}

func (m *MockJobsBoardGateway) GetAllJobs(ctx context.Context, page, size int) (*integration.JobPage, error) {
	args := m.Called(ctx, page, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*integration.JobPage), args.Error(1)
}

func (m *MockJobsBoardGateway) CreateExpressionOfInterest(ctx context.Context, jobID, prisonNumber string) error {
	args := m.Called(ctx, jobID, prisonNumber)
	return args.Error(0)
}
