package service

import (
	"context"
	"time"
)

// Tracking event types published on the outbound event channel.
const (
	TrackingEventStarted        = "tracking_started"
	TrackingEventStopped        = "tracking_stopped"
	TrackingEventError          = "tracking_error"
	TrackingEventSampleAccepted = "sample_accepted"
)

// TrackingEvent is one outbound notification from the tracking state
// machine. It replaces per-observer delegate fan-out: the state machine
// publishes, any number of downstream consumers subscribe.
type TrackingEvent struct {
	RequestID  string    `json:"request_id,omitempty"` // For distributed tracing
	Type       string    `json:"type"`
	IdentityID string    `json:"identity_id,omitempty"`
	SampleID   string    `json:"sample_id,omitempty"`
	Latitude   float64   `json:"latitude,omitempty"`
	Longitude  float64   `json:"longitude,omitempty"`
	Accuracy   float64   `json:"accuracy,omitempty"`
	Error      string    `json:"error,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing tracking events to a
// message queue for downstream consumers.
type EventPublisher interface {
	// PublishTrackingEvent publishes one tracking lifecycle event. Failures
	// are best effort from the state machine's perspective.
	PublishTrackingEvent(ctx context.Context, event *TrackingEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
