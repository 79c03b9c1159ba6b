package messaging

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/jobsboard/integration-bridge/internal/domain/integration"
)

var (
	// ErrMissingEventType is returned for a message without an event-type
	// attribute. Redelivery cannot fix it.
	ErrMissingEventType = errors.New("Missing event type")
	// ErrUnknownEventType is returned for an event type outside the registry.
	// Redelivery cannot fix it.
	ErrUnknownEventType = errors.New("MessageService not found")
)

// Dispatcher routes an inbound message to the message service registered for
// its event type. The registry is built explicitly at construction from the
// closed list of supported event types; there is no reflection and no dynamic
// registration.
type Dispatcher struct {
	services map[integration.EventType]MessageService
	logger   *zap.Logger
}

// NewDispatcher creates the dispatcher with the full event-type registry.
func NewDispatcher(
	employers MessageService,
	jobs MessageService,
	interests MessageService,
	logger *zap.Logger,
) *Dispatcher {
	return &Dispatcher{
		services: map[integration.EventType]MessageService{
			integration.EventTypeEmployerCreated:             employers,
			integration.EventTypeEmployerUpdated:             employers,
			integration.EventTypeJobCreated:                  jobs,
			integration.EventTypeJobUpdated:                  jobs,
			integration.EventTypeExpressionOfInterestCreated: interests,
		},
		logger: logger,
	}
}

// HandleMessage resolves the message service by event-type attribute and
// delegates. A missing tag and an unknown tag are both fatal, rejected before
// any side effect.
func (d *Dispatcher) HandleMessage(ctx context.Context, msg Message) error {
	eventType := msg.EventType()
	if eventType == "" {
		return fmt.Errorf("%w; messageId=%s", ErrMissingEventType, msg.MessageID)
	}

	service, ok := d.services[integration.EventType(eventType)]
	if !ok {
		return fmt.Errorf("%w for Event type=%s", ErrUnknownEventType, eventType)
	}

	d.logger.Debug("dispatching message",
		zap.String("message_id", msg.MessageID),
		zap.String("event_type", eventType),
	)

	if err := service.HandleMessage(ctx, msg); err != nil {
		return fmt.Errorf("Fail to handle message; messageId=%s: %w", msg.MessageID, err)
	}
	return nil
}
