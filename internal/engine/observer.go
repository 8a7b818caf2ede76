package engine

import "CoinStreak/internal/model"

// Observer receives engine events as they happen. Observers must not
// retain pointers into engine state; events are passed by value.
type Observer interface {
	OnEvent(evt model.Event)
}

// ObserverFunc adapts a plain function to Observer.
type ObserverFunc func(evt model.Event)

func (f ObserverFunc) OnEvent(evt model.Event) { f(evt) }

// EventLog collects every event it sees, mostly for tests and history.
type EventLog struct {
	Events []model.Event
}

func (l *EventLog) OnEvent(evt model.Event) { l.Events = append(l.Events, evt) }

// Kind returns the logged events of one kind.
func (l *EventLog) Kind(kind model.EventKind) []model.Event {
	var out []model.Event
	for _, e := range l.Events {
		if e.Kind == kind {
			out = append(out, e)
		}
	}
	return out
}
