package events

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const (
	EventSource  = "english-school-service"
	EventVersion = "1.0"
)

// Event types, one per entity and committed write
const (
	AdminCreated   = "admin.created"
	AdminUpdated   = "admin.updated"
	AdminDeleted   = "admin.deleted"
	TeacherCreated = "teacher.created"
	TeacherUpdated = "teacher.updated"
	TeacherDeleted = "teacher.deleted"
	StudentCreated = "student.created"
	StudentUpdated = "student.updated"
	StudentDeleted = "student.deleted"
	UserCreated    = "user.created"
	UserUpdated    = "user.updated"
	UserDeleted    = "user.deleted"
)

// Event is the envelope published after a write has been committed
type Event struct {
	ID        string      `json:"id"`
	Type      string      `json:"type"`
	Source    string      `json:"source"`
	Version   string      `json:"version"`
	Timestamp time.Time   `json:"timestamp"`
	Data      interface{} `json:"data"`
}

// EntityEvent is the payload for entity lifecycle events
type EntityEvent struct {
	Entity string      `json:"entity"`
	ID     uint        `json:"id"`
	State  interface{} `json:"state,omitempty"`
}

func NewEvent(eventType string, data interface{}) Event {
	return Event{
		ID:        uuid.New().String(),
		Type:      eventType,
		Source:    EventSource,
		Version:   EventVersion,
		Timestamp: time.Now().UTC(),
		Data:      data,
	}
}

// EventPublisher delivers events to the configured broker
type EventPublisher interface {
	Publish(ctx context.Context, event Event) error
	Close() error
}

// NoopPublisher drops every event
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, Event) error { return nil }
func (NoopPublisher) Close() error                         { return nil }
