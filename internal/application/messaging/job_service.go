package messaging

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/jobsboard/integration-bridge/internal/application/registrar"
	"github.com/jobsboard/integration-bridge/internal/domain/integration"
)

// JobMessageService handles job creation/update events.
type JobMessageService struct {
	retriever *registrar.JobRetriever
	registrar *registrar.JobRegistrar
	logger    *zap.Logger
}

// NewJobMessageService creates a new JobMessageService.
func NewJobMessageService(
	retriever *registrar.JobRetriever,
	reg *registrar.JobRegistrar,
	logger *zap.Logger,
) *JobMessageService {
	return &JobMessageService{
		retriever: retriever,
		registrar: reg,
		logger:    logger,
	}
}

// HandleMessage implements MessageService.
func (s *JobMessageService) HandleMessage(ctx context.Context, msg Message) error {
	var event integration.JobEvent
	if err := json.Unmarshal([]byte(msg.Body), &event); err != nil {
		return fmt.Errorf("invalid job event payload: %w", err)
	}

	if err := s.handleEvent(ctx, event); err != nil {
		return fmt.Errorf("eventId=%s: %w", event.EventID, err)
	}
	return nil
}

func (s *JobMessageService) handleEvent(ctx context.Context, event integration.JobEvent) error {
	switch event.EventType {
	case integration.EventTypeJobCreated, integration.EventTypeJobUpdated:
	default:
		return fmt.Errorf("Unexpected event type: %s", event.EventType)
	}

	job, err := s.retriever.Retrieve(ctx, event.JobID)
	if err != nil {
		return err
	}

	s.logger.Debug("handling job event",
		zap.String("event_id", event.EventID),
		zap.String("event_type", string(event.EventType)),
		zap.String("job_id", job.ID),
	)

	if event.EventType == integration.EventTypeJobCreated {
		return s.registrar.RegisterCreation(ctx, job)
	}
	return s.registrar.RegisterUpdate(ctx, job)
}
