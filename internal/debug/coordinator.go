package debug

import (
	"time"

	"blackjack/internal/debug/eventbus"
	"blackjack/internal/debug/logger"
	"blackjack/internal/debug/timing"

	"github.com/rs/zerolog"
)

// EventBusImpl wraps eventbus.Bus to implement EventPublisher interface
type EventBusImpl struct {
	*eventbus.Bus
}

func (e *EventBusImpl) Publish(event Event) {
	e.Bus.Publish(eventbus.Event{
		Type:      event.Type,
		Timestamp: event.Timestamp,
		Data:      event.Data,
	})
}

func (e *EventBusImpl) Subscribe(eventType string, handler EventHandler) {
	e.Bus.Subscribe(eventType, &eventHandlerAdapter{handler: handler})
}

func (e *EventBusImpl) Unsubscribe(eventType string, handler EventHandler) {
	e.Bus.Unsubscribe(eventType, &eventHandlerAdapter{handler: handler})
}

type eventHandlerAdapter struct {
	handler EventHandler
}

func (e *eventHandlerAdapter) Handle(event eventbus.Event) {
	e.handler.Handle(Event{
		Type:      event.Type,
		Timestamp: event.Timestamp,
		Data:      event.Data,
	})
}

func (e *eventHandlerAdapter) GetID() string {
	return e.handler.GetID()
}

type TimingTrackerEventBus struct {
	eventBus *EventBusImpl
}

func (t *TimingTrackerEventBus) Publish(event timing.Event) {
	t.eventBus.Publish(Event{
		Type:      event.Type,
		Timestamp: event.Timestamp,
		Data:      event.Data,
	})
}

type TimingTrackerImpl struct {
	tracker *timing.Tracker
}

func (t *TimingTrackerImpl) Start(operation string) Span {
	return t.tracker.Start(operation)
}

func (t *TimingTrackerImpl) GetTimings(operation string) []time.Duration {
	return t.tracker.GetTimings(operation)
}

func (t *TimingTrackerImpl) GetAverageTime(operation string) time.Duration {
	return t.tracker.GetAverageTime(operation)
}

type DebugCoordinator struct {
	logger        Logger
	timingTracker TimingTracker
	eventBus      EventPublisher
}

func NewCoordinator(config Config) *DebugCoordinator {
	bus := eventbus.NewBus(config.EventBufferSize)
	eventBus := &EventBusImpl{Bus: bus}

	var loggerImpl Logger
	switch {
	case !config.EnableLogging:
		loggerImpl = logger.NoOpLogger{}
	case config.UseJSONLogging:
		loggerImpl = logger.NewJSONLogger(config.LogLevel)
	default:
		loggerImpl = logger.NewConsoleLogger(config.LogLevel)
	}

	timingTracker := timing.NewTracker(&TimingTrackerEventBus{eventBus: eventBus})
	timingTracker.SetEnabled(config.EnableTimingTracking)

	dc := &DebugCoordinator{
		logger:        loggerImpl,
		timingTracker: &TimingTrackerImpl{tracker: timingTracker},
		eventBus:      eventBus,
	}

	if config.LogEvents {
		eventLog := &EventLogger{logger: loggerImpl}
		for _, eventType := range LoggedEventTypes {
			eventBus.Subscribe(eventType, eventLog)
		}
	}

	return dc
}

func (dc *DebugCoordinator) Logger() Logger {
	return dc.logger
}

func (dc *DebugCoordinator) TimingTracker() TimingTracker {
	return dc.timingTracker
}

func (dc *DebugCoordinator) EventPublisher() EventPublisher {
	return dc.eventBus
}

// Shutdown flushes buffered events.
func (dc *DebugCoordinator) Shutdown() {
	if busImpl, ok := dc.eventBus.(*EventBusImpl); ok {
		busImpl.Bus.Shutdown()
	}
}

type Config struct {
	EnableLogging        bool
	EnableTimingTracking bool
	LogEvents            bool
	UseJSONLogging       bool
	LogLevel             zerolog.Level
	EventBufferSize      int
}

func DefaultConfig() Config {
	return Config{
		EnableLogging:        true,
		EnableTimingTracking: true,
		LogEvents:            true,
		UseJSONLogging:       false,
		LogLevel:             zerolog.InfoLevel,
		EventBufferSize:      1000,
	}
}

func ProductionConfig() Config {
	return Config{
		EnableLogging:        true,
		EnableTimingTracking: false,
		LogEvents:            false,
		UseJSONLogging:       true,
		LogLevel:             zerolog.ErrorLevel,
		EventBufferSize:      100,
	}
}
