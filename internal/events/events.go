package events

import (
	"context"
	"sync"
	"time"
)

// Event types published by the services
const (
	WorkCycleCreated    = "workcycle.created"
	WorkCycleReassigned = "workcycle.reassigned"
	WorkCycleClosed     = "workcycle.closed"
	WorkItemSubmitted   = "workitem.submitted"
	WorkItemReviewed    = "workitem.reviewed"
	NotificationCreated = "notification.created"
)

// Event is the envelope written to the event stream
type Event struct {
	Type       string      `json:"type"`
	Key        string      `json:"key"`
	OccurredAt time.Time   `json:"occurred_at"`
	Payload    interface{} `json:"payload"`
}

// New builds an event stamped with the current time
func New(eventType, key string, payload interface{}) Event {
	return Event{Type: eventType, Key: key, OccurredAt: time.Now().UTC(), Payload: payload}
}

// Publisher emits domain events after a successful commit
type Publisher interface {
	Publish(ctx context.Context, events ...Event) error
	Close() error
}

// NoopPublisher drops every event
type NoopPublisher struct{}

// Publish discards events
func (NoopPublisher) Publish(ctx context.Context, events ...Event) error { return nil }

// Close does nothing
func (NoopPublisher) Close() error { return nil }

// Recorder keeps published events in memory
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

// NewRecorder creates an empty recorder
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Publish appends events
func (r *Recorder) Publish(ctx context.Context, events ...Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, events...)
	return nil
}

// Close does nothing
func (r *Recorder) Close() error { return nil }

// Events returns a copy of what was published
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}

// Types returns the type of every published event in order
func (r *Recorder) Types() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	types := make([]string, len(r.events))
	for i, e := range r.events {
		types[i] = e.Type
	}
	return types
}
