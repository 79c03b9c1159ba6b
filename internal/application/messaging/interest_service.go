package messaging

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/jobsboard/integration-bridge/internal/domain/integration"
)

// InterestMessageService handles expression-of-interest events. Unlike the
// employer/job events these carry their payload in message attributes: the MN
// job ID and the prison number. The MN ID is resolved back to the local job ID
// through the mapping store's reverse lookup, then the interest is recorded in
// the source system.
type InterestMessageService struct {
	jobMappings integration.JobExternalIDReader
	source      integration.JobsBoardGateway
	logger      *zap.Logger
}

// NewInterestMessageService creates a new InterestMessageService.
func NewInterestMessageService(
	jobMappings integration.JobExternalIDReader,
	source integration.JobsBoardGateway,
	logger *zap.Logger,
) *InterestMessageService {
	return &InterestMessageService{
		jobMappings: jobMappings,
		source:      source,
		logger:      logger,
	}
}

// HandleMessage implements MessageService. Malformed attributes are rejected
// before any side effect.
func (s *InterestMessageService) HandleMessage(ctx context.Context, msg Message) error {
	externalJobID, err := strconv.ParseInt(msg.Attributes[AttrJobID], 10, 64)
	if err != nil {
		return fmt.Errorf("Invalid jobId: %q", msg.Attributes[AttrJobID])
	}

	prisonNumber := msg.Attributes[AttrPrisonNumber]
	if prisonNumber == "" {
		return errors.New("Missing prisonNumber")
	}

	mapping, err := s.jobMappings.FindByExternalID(ctx, externalJobID)
	if err != nil {
		if errors.Is(err, integration.ErrMappingNotFound) {
			return fmt.Errorf("Job ID not found; jobIdExternal=%d: %w", externalJobID, err)
		}
		return err
	}

	interest, err := integration.NewExpressionOfInterest(mapping.ID, prisonNumber)
	if err != nil {
		return err
	}

	s.logger.Debug("forwarding expression of interest",
		zap.String("message_id", msg.MessageID),
		zap.Int64("job_id_external", externalJobID),
		zap.String("job_id", interest.JobID),
	)

	return s.source.CreateExpressionOfInterest(ctx, interest.JobID, interest.PrisonNumber)
}
