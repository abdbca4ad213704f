package timing

import (
	"sync"
	"time"
)

// DefaultMaxSamples bounds the history kept per operation.
const DefaultMaxSamples = 256

type EventPublisher interface {
	Publish(event Event)
}

type Event struct {
	Type      string
	Timestamp time.Time
	Data      map[string]interface{}
}

type Tracker struct {
	timings    map[string][]time.Duration
	mu         sync.RWMutex
	eventBus   EventPublisher
	enabled    bool
	maxSamples int
	now        func() time.Time
}

func NewTracker(eventBus EventPublisher) *Tracker {
	return &Tracker{
		timings:    make(map[string][]time.Duration),
		eventBus:   eventBus,
		enabled:    true,
		maxSamples: DefaultMaxSamples,
		now:        time.Now,
	}
}

// Span measures one run of an operation.
type Span struct {
	tracker   *Tracker
	operation string
	start     time.Time
	quiet     bool
}

// Start begins measuring operation. Spans for frequent operations can be
// started with StartQuiet so that no event is published for them.
func (tt *Tracker) Start(operation string) *Span {
	return &Span{tracker: tt, operation: operation, start: tt.now()}
}

func (tt *Tracker) StartQuiet(operation string) *Span {
	s := tt.Start(operation)
	s.quiet = true
	return s
}

// End records the span and returns its duration. Disabled trackers measure
// but do not record.
func (s *Span) End() time.Duration {
	tt := s.tracker
	duration := tt.now().Sub(s.start)

	tt.mu.Lock()
	if !tt.enabled {
		tt.mu.Unlock()
		return duration
	}
	samples := append(tt.timings[s.operation], duration)
	if len(samples) > tt.maxSamples {
		samples = samples[len(samples)-tt.maxSamples:]
	}
	tt.timings[s.operation] = samples
	tt.mu.Unlock()

	if tt.eventBus != nil && !s.quiet {
		tt.eventBus.Publish(Event{
			Type: "timing_completed",
			Data: map[string]interface{}{
				"operation": s.operation,
				"duration":  duration,
			},
		})
	}

	return duration
}

func (tt *Tracker) GetTimings(operation string) []time.Duration {
	tt.mu.RLock()
	defer tt.mu.RUnlock()

	timings := tt.timings[operation]
	if timings == nil {
		return nil
	}

	result := make([]time.Duration, len(timings))
	copy(result, timings)
	return result
}

func (tt *Tracker) GetAverageTime(operation string) time.Duration {
	timings := tt.GetTimings(operation)
	if len(timings) == 0 {
		return 0
	}

	var total time.Duration
	for _, duration := range timings {
		total += duration
	}

	return total / time.Duration(len(timings))
}

func (tt *Tracker) SetEnabled(enabled bool) {
	tt.mu.Lock()
	defer tt.mu.Unlock()
	tt.enabled = enabled
}

func (tt *Tracker) Reset(operation string) {
	tt.mu.Lock()
	defer tt.mu.Unlock()

	if operation == "" {
		tt.timings = make(map[string][]time.Duration)
	} else {
		delete(tt.timings, operation)
	}
}
