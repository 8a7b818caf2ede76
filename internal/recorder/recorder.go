package recorder

import "CoinStreak/internal/model"

// RunRecord holds the outcome of one simulation run.
type RunRecord struct {
	RunID      string
	BatchID    string
	TotalFlips int
	Histogram  model.Histogram
	Final      model.Snapshot
}

// UpgradeRecord holds one tier transition made during a run.
type UpgradeRecord struct {
	RunID string
	Event model.Event // EventUpgrade
}

// Recorder persists run history for offline analysis.
// Nothing recorded here is ever read back into a simulation.
type Recorder interface {
	RecordRun(rec *RunRecord) error
	RecordUpgrade(rec *UpgradeRecord) error
	Close() error
}
