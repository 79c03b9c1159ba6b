package messaging

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jobsboard/integration-bridge/internal/application/registrar"
	"github.com/jobsboard/integration-bridge/internal/domain/integration"
)

// MockDownstreamGateway is a mock implementation of MNGateway
type MockDownstreamGateway struct {
	mock.Mock
}

func (m *MockDownstreamGateway) CreateEmployer(ctx context.Context, employer integration.MNEmployer) (*integration.MNEmployer, error) {
	args := m.Called(ctx, employer)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*integration.MNEmployer), args.Error(1)
}

func (m *MockDownstreamGateway) UpdateEmployer(ctx context.Context, employer integration.MNEmployer) (*integration.MNEmployer, error) {
	args := m.Called(ctx, employer)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*integration.MNEmployer), args.Error(1)
}

func (m *MockDownstreamGateway) CreateJob(ctx context.Context, job integration.MNJob) (*integration.MNJob, error) {
	args := m.Called(ctx, job)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*integration.MNJob), args.Error(1)
}

func (m *MockDownstreamGateway) UpdateJob(ctx context.Context, job integration.MNJob) (*integration.MNJob, error) {
	args := m.Called(ctx, job)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*integration.MNJob), args.Error(1)
}

// MockEmployerMappings is a mock implementation of EmployerExternalIDRepository
type MockEmployerMappings struct {
	mock.Mock
}

func (m *MockEmployerMappings) FindByID(ctx context.Context, id string) (*integration.EmployerExternalID, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*integration.EmployerExternalID), args.Error(1)
}

func (m *MockEmployerMappings) FindByExternalID(ctx context.Context, externalID int64) (*integration.EmployerExternalID, error) {
	args := m.Called(ctx, externalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*integration.EmployerExternalID), args.Error(1)
}

func (m *MockEmployerMappings) ExistsByID(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockEmployerMappings) Save(ctx context.Context, mapping *integration.EmployerExternalID) error {
	args := m.Called(ctx, mapping)
	return args.Error(0)
}

func (m *MockEmployerMappings) DeleteAll(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockTranslator is a mock implementation of RefDataTranslator
type MockTranslator struct {
	mock.Mock
}

func (m *MockTranslator) TranslateID(ctx context.Context, group integration.RefDataGroup, value string) (int64, error) {
	args := m.Called(ctx, group, value)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTranslator) TranslateOptionalID(ctx context.Context, group integration.RefDataGroup, value string) (*int64, error) {
	args := m.Called(ctx, group, value)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*int64), args.Error(1)
}

func TestEmployerMessageService_HandleMessage(t *testing.T) {
	ctx := context.Background()

	t.Run("creation event fetches current state and registers it", func(t *testing.T) {
		source := new(MockSourceGateway)
		gateway := new(MockDownstreamGateway)
		mappings := new(MockEmployerMappings)
		translator := new(MockTranslator)

		employer := &integration.Employer{ID: "e1", Name: "Acme Stores", Sector: "RETAIL", Status: "GOLD"}
		source.On("GetEmployer", ctx, "e1").Return(employer, nil)
		mappings.On("ExistsByID", ctx, "e1").Return(false, nil)
		translator.On("TranslateID", ctx, integration.RefDataEmployerSector, "RETAIL").Return(int64(7), nil)
		translator.On("TranslateID", ctx, integration.RefDataEmployerStatus, "GOLD").Return(int64(2), nil)
		createdID := int64(501)
		gateway.On("CreateEmployer", ctx, mock.Anything).Return(&integration.MNEmployer{ID: &createdID}, nil)
		mappings.On("Save", ctx, mock.MatchedBy(func(m *integration.EmployerExternalID) bool {
			return m.ID == "e1" && m.ExternalID == 501
		})).Return(nil)

		svc := NewEmployerMessageService(
			registrar.NewEmployerRetriever(source),
			registrar.NewEmployerRegistrar(mappings, gateway, registrar.NewEmployerConverter(translator), zap.NewNop()),
			zap.NewNop(),
		)

		err := svc.HandleMessage(ctx, Message{
			MessageID: "m1",
			Body:      `{"eventId":"evt-1","eventType":"jobs-board-employer-created","employerId":"e1"}`,
			Attributes: map[string]string{
				AttrEventType: string(integration.EventTypeEmployerCreated),
			},
		})
		require.NoError(t, err)
		mappings.AssertExpectations(t)
	})

	t.Run("rejects a malformed payload", func(t *testing.T) {
		svc := NewEmployerMessageService(nil, nil, zap.NewNop())
		err := svc.HandleMessage(ctx, Message{MessageID: "m2", Body: "{not json"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid employer event payload")
	})

	t.Run("rejects an event type it does not own", func(t *testing.T) {
		svc := NewEmployerMessageService(nil, nil, zap.NewNop())
		err := svc.HandleMessage(ctx, Message{
			MessageID: "m3",
			Body:      `{"eventId":"evt-3","eventType":"jobs-board-job-created","employerId":"e1"}`,
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Unexpected event type: jobs-board-job-created")
		assert.Contains(t, err.Error(), "eventId=evt-3")
	})

	t.Run("propagates registration failures", func(t *testing.T) {
		source := new(MockSourceGateway)
		source.On("GetEmployer", ctx, "e1").Return(nil, nil)

		svc := NewEmployerMessageService(
			registrar.NewEmployerRetriever(source),
			nil,
			zap.NewNop(),
		)
		err := svc.HandleMessage(ctx, Message{
			MessageID: "m4",
			Body:      `{"eventId":"evt-4","eventType":"jobs-board-employer-updated","employerId":"e1"}`,
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Employer with id=e1 not found")
	})
}
