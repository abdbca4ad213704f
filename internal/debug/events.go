package debug

const (
	EventRoundStarted = "round_started"
	EventCardDrawn    = "card_drawn"
	EventRoundOver    = "round_over"
	EventSessionReset = "session_reset"
	EventTiming       = "timing_completed"
)

// LoggedEventTypes are the events EventLogger subscribes to.
var LoggedEventTypes = []string{
	EventRoundStarted,
	EventCardDrawn,
	EventRoundOver,
	EventSessionReset,
	EventTiming,
}

// EventLogger writes every event it receives to the debug log.
type EventLogger struct {
	logger Logger
}

func NewEventLogger(l Logger) *EventLogger {
	return &EventLogger{logger: l}
}

func (e *EventLogger) Handle(event Event) {
	e.logger.Debug("EventBus", event.Type, event.Data)
}

func (e *EventLogger) GetID() string {
	return "event-logger"
}
