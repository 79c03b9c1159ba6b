// Package queue is the Redis transport for inbound integration events. It
// pops JSON envelopes off a list, hands them to the application dispatcher,
// and re-queues or dead-letters failures by receive count.
package queue

import (
	"encoding/json"
	"fmt"

	"github.com/jobsboard/integration-bridge/internal/application/messaging"
)

// Envelope is the wire form of a queued message.
type Envelope struct {
	// MessageID is the transport-level message ID
	MessageID string `json:"messageId"`
	// Body is the raw event payload
	Body string `json:"body"`
	// Attributes are the message's key-value headers
	Attributes map[string]string `json:"attributes"`
	// ReceiveCount counts delivery attempts, including the current one
	ReceiveCount int `json:"receiveCount"`
}

// DecodeEnvelope parses a raw queue entry.
func DecodeEnvelope(raw []byte) (*Envelope, error) {
	var env Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("queue: malformed envelope: %w", err)
	}
	if env.MessageID == "" {
		return nil, fmt.Errorf("queue: envelope is missing messageId")
	}
	return &env, nil
}

// Encode serializes the envelope back to its wire form.
func (e *Envelope) Encode() ([]byte, error) {
	return json.Marshal(e)
}

// ToMessage converts the envelope into the application-level message.
func (e *Envelope) ToMessage() messaging.Message {
	return messaging.Message{
		MessageID:  e.MessageID,
		Body:       e.Body,
		Attributes: e.Attributes,
	}
}
