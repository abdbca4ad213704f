package debug

import (
	"time"
)

// EventPublisher distributes game events to subscribers without blocking
type EventPublisher interface {
	Publish(event Event)
	Subscribe(eventType string, handler EventHandler)
	Unsubscribe(eventType string, handler EventHandler)
}

// EventHandler processes events asynchronously
type EventHandler interface {
	Handle(event Event)
	GetID() string
}

// Event represents a game event with contextual data
type Event struct {
	Type      string
	Timestamp time.Time
	Data      map[string]interface{}
}

// Logger provides structured logging with a component name
type Logger interface {
	Info(component string, message string, fields map[string]interface{})
	Error(component string, err error, fields map[string]interface{})
	Warning(component string, message string, fields map[string]interface{})
	Debug(component string, message string, fields map[string]interface{})
}

// TimingTracker measures operation durations
type TimingTracker interface {
	Start(operation string) Span
	GetTimings(operation string) []time.Duration
	GetAverageTime(operation string) time.Duration
}

// Span is a running measurement; End records it.
type Span interface {
	End() time.Duration
}

// Coordinator combines all debug capabilities
type Coordinator interface {
	Logger() Logger
	TimingTracker() TimingTracker
	EventPublisher() EventPublisher
	Shutdown()
}
