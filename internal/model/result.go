package model

// TerminalStreak is the streak length that ends a run.
const TerminalStreak = 10

// Outcome is the result of a single coin flip.
type Outcome int

const (
	Tails Outcome = iota
	Heads
)

func (o Outcome) String() string {
	if o == Heads {
		return "H"
	}
	return "T"
}

// Histogram counts streak-ending events by streak length.
// Index 0 counts immediate tails; index 10 counts the terminal run.
type Histogram [TerminalStreak + 1]int

// Total returns the number of streak-ending events.
func (h Histogram) Total() int {
	n := 0
	for _, c := range h {
		n += c
	}
	return n
}

// RunResult is the outcome of one simulation run.
type RunResult struct {
	TotalFlips int       `json:"total_flips"`
	Histogram  Histogram `json:"histogram"`
}

// TrackLevel describes where an upgrade track currently sits.
type TrackLevel struct {
	Name  string  `json:"name"`
	Index int     `json:"index"`
	Tiers int     `json:"tiers"`
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// IsFinal reports whether the track is at its last tier.
func (l TrackLevel) IsFinal() bool {
	return l.Index == l.Tiers-1
}

// Snapshot is a read-only view of a simulation's state.
type Snapshot struct {
	Cash   float64    `json:"cash"`
	Streak int        `json:"streak"`
	Coin   TrackLevel `json:"coin"`
	Chance TrackLevel `json:"chance"`
	Combo  TrackLevel `json:"combo"`
}
