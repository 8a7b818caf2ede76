package engine

import (
	"fmt"

	"CoinStreak/internal/calculator"
	"CoinStreak/internal/flipper"
	"CoinStreak/internal/model"
	"CoinStreak/internal/upgrade"
)

// Engine owns the state of a single streak-game run.
type Engine struct {
	source    flipper.Source
	observers []Observer

	cash   float64
	streak int
	coin   *upgrade.Track[upgrade.Coin]
	chance *upgrade.Track[float64]
	combo  *upgrade.Track[float64]

	ran bool
}

// Option configures an Engine.
type Option func(*Engine)

// WithSource replaces the default random source.
func WithSource(src flipper.Source) Option {
	return func(e *Engine) { e.source = src }
}

// WithObserver registers an event observer. May be given more than once.
func WithObserver(obs Observer) Option {
	return func(e *Engine) { e.observers = append(e.observers, obs) }
}

// WithStartingCash seeds the balance, rounded to the cent.
func WithStartingCash(cash float64) Option {
	return func(e *Engine) { e.cash = calculator.RoundToCent(cash) }
}

// New creates an engine with zero cash and every track at its first tier.
func New(opts ...Option) *Engine {
	e := &Engine{
		coin:   upgrade.NewCoinTrack(),
		chance: upgrade.NewChanceTrack(),
		combo:  upgrade.NewComboTrack(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.source == nil {
		e.source = flipper.NewRandSource()
	}
	return e
}

// Run flips until the first streak of TerminalStreak heads and returns the result.
// It returns calculator.ErrPrecisionLost if the balance outgrows float64 cents;
// no partial result is produced in that case.
func (e *Engine) Run() (*model.RunResult, error) {
	if e.ran {
		panic("engine: Run called twice on the same engine")
	}
	e.ran = true

	var hist model.Histogram
	flips := 0

	for {
		// Upgrades in fixed order, each against the balance left by the previous one.
		tryUpgrade(e, e.coin, flips, upgrade.Coin.String)
		tryUpgrade(e, e.chance, flips, upgrade.ChanceLabel)
		tryUpgrade(e, e.combo, flips, upgrade.ComboLabel)

		if e.cash < 0 {
			panic(fmt.Sprintf("engine: negative cash $%.2f at flip %d", e.cash, flips))
		}
		if err := calculator.CheckCentPrecision(e.cash); err != nil {
			return nil, fmt.Errorf("flip %d: %w", flips, err)
		}

		outcome := flipper.Flip(e.source, e.chance.Value())
		flips++

		if outcome == model.Heads {
			e.streak++
			gain := calculator.Reward(e.coin.Value().Dollars, e.combo.Value(), e.streak)
			e.cash = calculator.RoundToCent(e.cash + gain)
			e.emit(model.Event{Flip: flips, Kind: model.EventHeads, Cash: e.cash, Streak: e.streak, Gain: gain})
			if e.streak < model.TerminalStreak {
				continue
			}
		} else {
			e.emit(model.Event{Flip: flips, Kind: model.EventTails, Cash: e.cash, Streak: e.streak})
		}

		hist[e.streak]++
		if hist[e.streak] == 1 {
			e.emit(model.Event{Flip: flips, Kind: model.EventNotableStreak, Cash: e.cash, Streak: e.streak})
		}
		if e.streak == model.TerminalStreak {
			break
		}
		e.streak = 0
	}

	return &model.RunResult{TotalFlips: flips, Histogram: hist}, nil
}

// Snapshot returns the current balance, streak and track levels.
func (e *Engine) Snapshot() model.Snapshot {
	return model.Snapshot{
		Cash:   e.cash,
		Streak: e.streak,
		Coin:   level(e.coin, upgrade.Coin.String, func(c upgrade.Coin) float64 { return c.Dollars }),
		Chance: level(e.chance, upgrade.ChanceLabel, identity),
		Combo:  level(e.combo, upgrade.ComboLabel, identity),
	}
}

func (e *Engine) emit(evt model.Event) {
	for _, o := range e.observers {
		o.OnEvent(evt)
	}
}

func tryUpgrade[V any](e *Engine, t *upgrade.Track[V], flips int, label func(V) string) {
	from, fromIdx := t.Value(), t.Index()
	cost, ok := t.TryUpgrade(e.cash)
	if !ok {
		return
	}
	e.cash = calculator.RoundToCent(e.cash - cost)
	e.emit(model.Event{
		Flip:      flips,
		Kind:      model.EventUpgrade,
		Cash:      e.cash,
		Track:     t.Name(),
		FromIndex: fromIdx,
		ToIndex:   t.Index(),
		From:      label(from),
		To:        label(t.Value()),
		Cost:      cost,
	})
}

func level[V any](t *upgrade.Track[V], label func(V) string, value func(V) float64) model.TrackLevel {
	return model.TrackLevel{
		Name:  t.Name(),
		Index: t.Index(),
		Tiers: t.Len(),
		Label: label(t.Value()),
		Value: value(t.Value()),
	}
}

func identity(v float64) float64 { return v }
