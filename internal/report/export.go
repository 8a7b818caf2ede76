package report

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"CoinStreak/internal/batch"
	"CoinStreak/internal/model"
)

// Export is the JSON document written for a finished batch.
type Export struct {
	GeneratedAt time.Time     `json:"generated_at"`
	Summary     batch.Summary `json:"summary"`
	Runs        []ExportedRun `json:"runs"`
}

// ExportedRun is one run inside an Export.
type ExportedRun struct {
	RunID  string          `json:"run_id"`
	Result model.RunResult `json:"result"`
	Final  model.Snapshot  `json:"final"`
}

// WriteJSON writes the batch outcomes and their summary to a JSON file.
func WriteJSON(path string, outcomes []*batch.Outcome) error {
	exp := Export{
		GeneratedAt: time.Now(),
		Summary:     batch.Summarize(outcomes),
		Runs:        make([]ExportedRun, 0, len(outcomes)),
	}
	for _, o := range outcomes {
		exp.Runs = append(exp.Runs, ExportedRun{RunID: o.RunID, Result: *o.Result, Final: o.Final})
	}

	data, err := json.MarshalIndent(exp, "", "  ")
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0644)
}
