package events

import (
	"time"
)

// Event is a single entry in a generation run's event stream
type Event struct {
	Type      string
	StreamID  string
	Data      any
	Timestamp time.Time
	Version   int
}

// EventHandler reacts to events of the types it can handle
type EventHandler interface {
	Handle(event Event) error
	CanHandle(eventType string) bool
}

// Publisher appends events to a stream
type Publisher interface {
	Publish(streamID, eventType string, data any) error
}

// NewEvent creates an unversioned event stamped with the current time
func NewEvent(eventType, streamID string, data any) Event {
	return Event{
		Type:      eventType,
		StreamID:  streamID,
		Data:      data,
		Timestamp: time.Now(),
	}
}
