package report

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"CoinStreak/internal/batch"
	"CoinStreak/internal/model"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func sampleOutcome() *batch.Outcome {
	var h model.Histogram
	h[0], h[2], h[10] = 1200, 35, 1
	return &batch.Outcome{
		RunID:  "abc",
		Result: &model.RunResult{TotalFlips: 2345, Histogram: h},
		Final: model.Snapshot{
			Cash:   1234.5,
			Coin:   model.TrackLevel{Label: "Quarter"},
			Chance: model.TrackLevel{Label: "45%", Value: 0.45},
			Combo:  model.TrackLevel{Label: "x2.5", Value: 2.5},
		},
	}
}

func TestDollars(t *testing.T) {
	tests := map[float64]string{0: "$0.00", 0.1: "$0.10", 22519: "$22519.00", 1234.5: "$1234.50"}
	for in, want := range tests {
		if got := Dollars(in); got != want {
			t.Errorf("Dollars(%v): expected %q, got %q", in, want, got)
		}
	}
}

func TestFormatRun(t *testing.T) {
	got := FormatRun(sampleOutcome())
	for _, want := range []string{
		"Got 10-Heads in 2,345 flips:\n",
		"   Odds: 45.00%\n",
		"   Coin: Quarter\n",
		"  Combo: x2.5\n",
		"   Cash: $1234.50\n",
		"     tails: 1200 time(s)\n",
		"     2-run: 35 time(s)\n",
		"    10-run: 1 time(s)\n",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("report missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "1-run") {
		t.Errorf("empty buckets should be skipped:\n%s", got)
	}
}

func TestFormatBatch(t *testing.T) {
	s := batch.Summarize([]*batch.Outcome{sampleOutcome(), sampleOutcome()})
	got := FormatBatch(s)
	for _, want := range []string{
		"Batch of 2 runs:\n",
		"   Flips: min 2,345, mean 2,345, max 2,345\n",
		"   Mean cash: $1234.50\n",
		"    10-run: 2 time(s)\n",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("batch report missing %q:\n%s", want, got)
		}
	}
}

func TestProgressLogger(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	p := NewProgressLogger(zap.New(core), "run-1")

	p.OnEvent(model.Event{Flip: 3, Kind: model.EventHeads, Streak: 1, Gain: 0.01, Cash: 0.01})
	p.OnEvent(model.Event{Flip: 4, Kind: model.EventUpgrade, Track: "chance", From: "20%", To: "25%", Cost: 0.01})
	p.OnEvent(model.Event{Flip: 5, Kind: model.EventNotableStreak, Streak: 3})
	p.OnEvent(model.Event{Flip: 9, Kind: model.EventNotableStreak, Streak: model.TerminalStreak})

	entries := logs.All()
	if len(entries) != 2 {
		t.Fatalf("expected 2 info entries, got %d", len(entries))
	}
	if entries[0].Message != "upgrade" {
		t.Errorf("expected upgrade entry first, got %q", entries[0].Message)
	}
	ctx := entries[0].ContextMap()
	if ctx["run"] != "run-1" || ctx["to"] != "25%" || ctx["cost"] != "$0.01" {
		t.Errorf("unexpected upgrade fields %v", ctx)
	}
	if entries[1].ContextMap()["streak"] != int64(3) {
		t.Errorf("expected notable streak 3, got %v", entries[1].ContextMap()["streak"])
	}
}

func TestWriteJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "summary.json")
	if err := WriteJSON(path, []*batch.Outcome{sampleOutcome()}); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var exp Export
	if err := json.Unmarshal(data, &exp); err != nil {
		t.Fatalf("decode export: %v", err)
	}
	if exp.Summary.Runs != 1 || len(exp.Runs) != 1 || exp.Runs[0].Result.TotalFlips != 2345 {
		t.Errorf("unexpected export %+v", exp)
	}
}
