package model

// EventKind indicates what happened during a flip.
type EventKind string

const (
	EventUpgrade       EventKind = "UPGRADE"
	EventHeads         EventKind = "HEADS"
	EventTails         EventKind = "TAILS"
	EventNotableStreak EventKind = "NOTABLE_STREAK"
)

// Event is emitted by the engine for progress reporting.
// Fields that don't apply to a kind are left zero.
type Event struct {
	Flip   int       `json:"flip"`
	Kind   EventKind `json:"kind"`
	Cash   float64   `json:"cash"` // balance after the event
	Streak int       `json:"streak,omitempty"`
	Gain   float64   `json:"gain,omitempty"`

	// Upgrade transition
	Track     string  `json:"track,omitempty"`
	FromIndex int     `json:"from_index,omitempty"`
	ToIndex   int     `json:"to_index,omitempty"`
	From      string  `json:"from,omitempty"`
	To        string  `json:"to,omitempty"`
	Cost      float64 `json:"cost,omitempty"`
}

// IsTerminal reports whether a notable-streak event is the run-ending one.
func (e Event) IsTerminal() bool {
	return e.Kind == EventNotableStreak && e.Streak == TerminalStreak
}
