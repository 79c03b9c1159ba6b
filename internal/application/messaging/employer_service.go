package messaging

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/jobsboard/integration-bridge/internal/application/registrar"
	"github.com/jobsboard/integration-bridge/internal/domain/integration"
)

// EmployerMessageService handles employer creation/update events: it decodes
// the typed event, fetches current employer state from the source API, and
// invokes the registrar.
type EmployerMessageService struct {
	retriever *registrar.EmployerRetriever
	registrar *registrar.EmployerRegistrar
	logger    *zap.Logger
}

// NewEmployerMessageService creates a new EmployerMessageService.
func NewEmployerMessageService(
	retriever *registrar.EmployerRetriever,
	reg *registrar.EmployerRegistrar,
	logger *zap.Logger,
) *EmployerMessageService {
	return &EmployerMessageService{
		retriever: retriever,
		registrar: reg,
		logger:    logger,
	}
}

// HandleMessage implements MessageService.
func (s *EmployerMessageService) HandleMessage(ctx context.Context, msg Message) error {
	var event integration.EmployerEvent
	if err := json.Unmarshal([]byte(msg.Body), &event); err != nil {
		return fmt.Errorf("invalid employer event payload: %w", err)
	}

	if err := s.handleEvent(ctx, event); err != nil {
		return fmt.Errorf("eventId=%s: %w", event.EventID, err)
	}
	return nil
}

func (s *EmployerMessageService) handleEvent(ctx context.Context, event integration.EmployerEvent) error {
	switch event.EventType {
	case integration.EventTypeEmployerCreated, integration.EventTypeEmployerUpdated:
	default:
		return fmt.Errorf("Unexpected event type: %s", event.EventType)
	}

	employer, err := s.retriever.Retrieve(ctx, event.EmployerID)
	if err != nil {
		return err
	}

	s.logger.Debug("handling employer event",
		zap.String("event_id", event.EventID),
		zap.String("event_type", string(event.EventType)),
		zap.String("employer_id", employer.ID),
	)

	if event.EventType == integration.EventTypeEmployerCreated {
		return s.registrar.RegisterCreation(ctx, employer)
	}
	return s.registrar.RegisterUpdate(ctx, employer)
}
