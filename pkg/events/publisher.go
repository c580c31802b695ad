// Package events publishes domain lifecycle events for downstream consumers
// (notifications, analytics). Publishing is best-effort: a broker failure is
// logged and never fails the originating request.
package events

import (
	"context"
	"time"
)

const (
	TypeWaitlistJoined       = "waitlist.joined"
	TypeMaidRegistered       = "maid.registered"
	TypeBookingCreated       = "booking.created"
	TypeBookingStatusChanged = "booking.status_changed"
	TypeUserRegistered       = "user.registered"
)

type Event struct {
	Type       string    `json:"type"`
	Key        string    `json:"key"`
	Payload    any       `json:"payload"`
	OccurredAt time.Time `json:"occurredAt"`
}

type Publisher interface {
	Publish(ctx context.Context, event Event) error
	Close() error
}

// NoopPublisher is used when no broker is configured.
type NoopPublisher struct{}

func (NoopPublisher) Publish(ctx context.Context, event Event) error { return nil }

func (NoopPublisher) Close() error { return nil }
