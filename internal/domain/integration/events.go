package integration

import "time"

// EventType identifies an inbound queue event. The set is closed; the
// dispatch registry is built explicitly from these values at startup.
type EventType string

// Supported event types.
const (
	EventTypeEmployerCreated EventType = "jobs-board-employer-created"
	EventTypeEmployerUpdated EventType = "jobs-board-employer-updated"
	EventTypeJobCreated      EventType = "jobs-board-job-created"
	EventTypeJobUpdated      EventType = "jobs-board-job-updated"
	// EventTypeExpressionOfInterestCreated carries its payload entirely in
	// message attributes rather than a structured body.
	EventTypeExpressionOfInterestCreated EventType = "jobs-board-expression-of-interest-created"
)

// EmployerEvent is the structured payload of employer creation/update events.
type EmployerEvent struct {
	EventID    string    `json:"eventId"`
	EventType  EventType `json:"eventType"`
	Timestamp  time.Time `json:"timestamp"`
	EmployerID string    `json:"employerId"`
}

// JobEvent is the structured payload of job creation/update events.
type JobEvent struct {
	EventID   string    `json:"eventId"`
	EventType EventType `json:"eventType"`
	Timestamp time.Time `json:"timestamp"`
	JobID     string    `json:"jobId"`
}
