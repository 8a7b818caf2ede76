package scheduler

import (
	"context"
	"testing"
	"time"

	"CoinStreak/internal/batch"
	"CoinStreak/internal/flipper"
	"CoinStreak/internal/recorder"

	"go.uber.org/zap"
)

func newTestScheduler(ctx context.Context, size int) *Scheduler {
	r := batch.NewRunner(recorder.NewNoopRecorder(), zap.NewNop())
	r.Sources = func(int) flipper.Source { return flipper.ConstSource(0) }
	return NewScheduler(ctx, r, size, zap.NewNop())
}

func TestRunBatchNow(t *testing.T) {
	s := newTestScheduler(context.Background(), 3)
	var got []*batch.Outcome
	s.OnBatch = func(o []*batch.Outcome) { got = o }

	outcomes, err := s.RunBatchNow()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(outcomes) != 3 || len(got) != 3 {
		t.Errorf("expected 3 outcomes delivered, got %d and %d", len(outcomes), len(got))
	}
	for _, o := range outcomes {
		if o.Result.TotalFlips != 10 {
			t.Errorf("always-heads run took %d flips", o.Result.TotalFlips)
		}
	}
}

func TestRegister_InvalidSpec(t *testing.T) {
	s := newTestScheduler(context.Background(), 1)
	if err := s.Register("not a cron spec"); err == nil {
		t.Error("expected error for invalid spec")
	}
	if err := s.Register("*/5 * * * *"); err != nil {
		t.Errorf("five-field spec should be accepted: %v", err)
	}
	if err := s.Register("0 0 8 * * 1"); err != nil {
		t.Errorf("six-field spec should be accepted: %v", err)
	}
}

func TestScheduledBatchRuns(t *testing.T) {
	s := newTestScheduler(context.Background(), 1)
	done := make(chan int, 1)
	s.OnBatch = func(o []*batch.Outcome) {
		select {
		case done <- len(o):
		default:
		}
	}
	if err := s.Register("@every 1s"); err != nil {
		t.Fatal(err)
	}
	s.Start()
	defer s.Stop()

	select {
	case n := <-done:
		if n != 1 {
			t.Errorf("expected 1 run per batch, got %d", n)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("scheduled batch did not run")
	}
}
