package batch

import (
	"context"
	"fmt"

	"CoinStreak/internal/engine"
	"CoinStreak/internal/flipper"
	"CoinStreak/internal/model"
	"CoinStreak/internal/recorder"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SourceFactory returns the random source for the i-th run of a batch.
type SourceFactory func(run int) flipper.Source

// RandomSources gives every run its own randomly seeded source.
func RandomSources() SourceFactory {
	return func(int) flipper.Source { return flipper.NewRandSource() }
}

// SeededSources makes a batch reproducible: run i uses seed+i.
func SeededSources(seed uint64) SourceFactory {
	return func(run int) flipper.Source { return flipper.NewSeededSource(seed + uint64(run)) }
}

// Outcome is one finished run together with its final state.
type Outcome struct {
	RunID    string
	Result   *model.RunResult
	Final    model.Snapshot
	Upgrades []model.Event
}

// Runner executes independent simulation runs one after another.
type Runner struct {
	Recorder recorder.Recorder
	Sources  SourceFactory
	Log      *zap.Logger

	// Progress, when set, builds an extra observer for each run.
	Progress func(runID string) engine.Observer
}

// NewRunner creates a Runner with random sources and no progress observer.
func NewRunner(rec recorder.Recorder, logger *zap.Logger) *Runner {
	return &Runner{Recorder: rec, Sources: RandomSources(), Log: logger}
}

// Run executes n runs. The context is only checked between runs.
// A run that aborts stops the batch and its error is returned.
func (r *Runner) Run(ctx context.Context, n int) ([]*Outcome, error) {
	if n <= 0 {
		return nil, fmt.Errorf("batch size must be positive, got %d", n)
	}
	batchID := uuid.NewString()
	outcomes := make([]*Outcome, 0, n)

	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			return outcomes, err
		}
		out, err := r.runOne(i)
		if err != nil {
			return outcomes, fmt.Errorf("run %d/%d: %w", i+1, n, err)
		}
		outcomes = append(outcomes, out)
		r.record(batchID, out)

		r.Log.Debug("run finished",
			zap.String("batch", batchID),
			zap.String("run", out.RunID),
			zap.Int("flips", out.Result.TotalFlips),
			zap.Float64("cash", out.Final.Cash),
		)
	}
	return outcomes, nil
}

func (r *Runner) runOne(i int) (*Outcome, error) {
	runID := uuid.NewString()
	upgrades := &engine.EventLog{}

	opts := []engine.Option{
		engine.WithSource(r.Sources(i)),
		engine.WithObserver(engine.ObserverFunc(func(evt model.Event) {
			if evt.Kind == model.EventUpgrade {
				upgrades.OnEvent(evt)
			}
		})),
	}
	if r.Progress != nil {
		opts = append(opts, engine.WithObserver(r.Progress(runID)))
	}

	e := engine.New(opts...)
	res, err := e.Run()
	if err != nil {
		return nil, err
	}
	return &Outcome{RunID: runID, Result: res, Final: e.Snapshot(), Upgrades: upgrades.Events}, nil
}

func (r *Runner) record(batchID string, out *Outcome) {
	if err := r.Recorder.RecordRun(&recorder.RunRecord{
		RunID:      out.RunID,
		BatchID:    batchID,
		TotalFlips: out.Result.TotalFlips,
		Histogram:  out.Result.Histogram,
		Final:      out.Final,
	}); err != nil {
		r.Log.Error("record run", zap.String("run", out.RunID), zap.Error(err))
		return
	}
	for _, evt := range out.Upgrades {
		if err := r.Recorder.RecordUpgrade(&recorder.UpgradeRecord{RunID: out.RunID, Event: evt}); err != nil {
			r.Log.Error("record upgrade", zap.String("run", out.RunID), zap.Error(err))
		}
	}
}
