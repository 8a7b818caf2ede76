package upgrade

import "fmt"

// Tier is one rung of an upgrade track.
// Cost is the price of moving to the next tier and is ignored on the last one.
type Tier[V any] struct {
	Value V
	Cost  float64
}

// Track is an ordered tier ladder that only ever moves up.
type Track[V any] struct {
	name  string
	tiers []Tier[V]
	index int
}

// NewTrack creates a track positioned at its first tier.
func NewTrack[V any](name string, tiers []Tier[V]) *Track[V] {
	if len(tiers) == 0 {
		panic(fmt.Sprintf("upgrade: track %q has no tiers", name))
	}
	return &Track[V]{name: name, tiers: tiers}
}

func (t *Track[V]) Name() string { return t.name }
func (t *Track[V]) Index() int   { return t.index }
func (t *Track[V]) Len() int     { return len(t.tiers) }

// Value returns the current tier's value.
func (t *Track[V]) Value() V {
	return t.tiers[t.index].Value
}

// IsFinal reports whether the track is at its last tier.
func (t *Track[V]) IsFinal() bool {
	return t.index == len(t.tiers)-1
}

// UpgradeCost returns the price of the next tier, or false at the final tier.
func (t *Track[V]) UpgradeCost() (float64, bool) {
	if t.IsFinal() {
		return 0, false
	}
	return t.tiers[t.index].Cost, true
}

// TryUpgrade moves up one tier if cash covers the cost and returns the amount
// the caller must deduct. It never moves more than one tier per call.
func (t *Track[V]) TryUpgrade(cash float64) (float64, bool) {
	cost, ok := t.UpgradeCost()
	if !ok || cash < cost {
		return 0, false
	}
	t.advance()
	return cost, true
}

func (t *Track[V]) advance() {
	if t.IsFinal() {
		panic(fmt.Sprintf("upgrade: cannot upgrade %s past %v", t.name, t.Value()))
	}
	t.index++
}
