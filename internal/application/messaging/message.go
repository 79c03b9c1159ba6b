// Package messaging is the event dispatch facade: it routes inbound queue
// messages to the entity-specific message service by event-type attribute.
package messaging

import "context"

// Attribute keys carried on inbound messages.
const (
	// AttrEventType tags every message with its event type.
	AttrEventType = "eventType"
	// AttrJobID carries the MN job ID on expression-of-interest messages.
	AttrJobID = "jobId"
	// AttrPrisonNumber carries the prison number on expression-of-interest
	// messages.
	AttrPrisonNumber = "prisonNumber"
)

// Message is an inbound queue message: a transport-level ID, a raw body, and
// key-value attributes.
type Message struct {
	// MessageID is the transport-level message ID
	MessageID string
	// Body is the raw event payload; empty for attribute-only events
	Body string
	// Attributes are the message's key-value headers
	Attributes map[string]string
}

// EventType returns the message's event-type attribute, or "" when missing.
func (m Message) EventType() string {
	return m.Attributes[AttrEventType]
}

// MessageService handles messages of one entity's event types. Failures are
// returned, never swallowed; the transport decides on redelivery or
// dead-lettering.
type MessageService interface {
	HandleMessage(ctx context.Context, msg Message) error
}
