package events

import (
	"errors"
	"fmt"
	"sync"
)

// InMemoryEventStore keeps every stream in memory and notifies subscribers
// synchronously, in subscription order, before Publish returns
type InMemoryEventStore struct {
	streams     map[string][]Event
	subscribers map[string][]EventHandler
	mutex       sync.RWMutex
}

func NewInMemoryEventStore() *InMemoryEventStore {
	return &InMemoryEventStore{
		streams:     make(map[string][]Event),
		subscribers: make(map[string][]EventHandler),
	}
}

// Publish appends an event to the stream and returns the joined errors of
// any handler that failed
func (s *InMemoryEventStore) Publish(streamID, eventType string, data any) error {
	if streamID == "" {
		return fmt.Errorf("stream id cannot be empty")
	}

	s.mutex.Lock()
	event := NewEvent(eventType, streamID, data)
	event.Version = len(s.streams[streamID]) + 1
	s.streams[streamID] = append(s.streams[streamID], event)
	handlers := append([]EventHandler(nil), s.subscribers[eventType]...)
	s.mutex.Unlock()

	var errs []error
	for _, h := range handlers {
		if !h.CanHandle(eventType) {
			continue
		}
		if err := h.Handle(event); err != nil {
			errs = append(errs, fmt.Errorf("handling %s: %w", eventType, err))
		}
	}
	return errors.Join(errs...)
}

// ReadEvents returns the stream's events starting at fromVersion (1-based)
func (s *InMemoryEventStore) ReadEvents(streamID string, fromVersion int) []Event {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	stream := s.streams[streamID]
	if fromVersion < 1 {
		fromVersion = 1
	}
	if fromVersion > len(stream) {
		return []Event{}
	}
	return append([]Event(nil), stream[fromVersion-1:]...)
}

func (s *InMemoryEventStore) Subscribe(eventTypes []string, handler EventHandler) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	for _, eventType := range eventTypes {
		s.subscribers[eventType] = append(s.subscribers[eventType], handler)
	}
}
