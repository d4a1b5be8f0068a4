package sim

import "time"

// Severity tags an event for the log viewer.
type Severity string

const (
	SeverityInfo     Severity = "INFO"
	SeverityWarning  Severity = "WARNING"
	SeveritySuccess  Severity = "SUCCESS"
	SeverityError    Severity = "ERROR"
	SeverityAdvisory Severity = "ADVISORY"
)

// Event is one observational log record. The engine only ever appends
// events; nothing in the tick path reads them back.
type Event struct {
	Time     time.Time
	Message  string
	Severity Severity
}

// EventCap bounds the retained event log.
const EventCap = 50

// eventLog is a capped ring: the oldest event is evicted on overflow.
// Mutated only from the tick path, so no locking.
type eventLog struct {
	limit  int
	events []Event
}

func newEventLog(limit int) *eventLog {
	if limit <= 0 {
		limit = EventCap
	}
	return &eventLog{
		limit:  limit,
		events: make([]Event, 0, limit),
	}
}

func (l *eventLog) append(e Event) {
	l.events = append(l.events, e)
	if len(l.events) > l.limit {
		l.events = l.events[1:]
	}
}

func (l *eventLog) snapshot() []Event {
	out := make([]Event, len(l.events))
	copy(out, l.events)
	return out
}
