package scheduler

import (
	"context"
	"fmt"
	"sync"

	"CoinStreak/internal/batch"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Scheduler runs simulation batches on a cron schedule.
type Scheduler struct {
	Cron      *cron.Cron
	Runner    *batch.Runner
	BatchSize int
	Log       *zap.Logger
	Ctx       context.Context

	// OnBatch, when set, receives each finished batch.
	OnBatch func(outcomes []*batch.Outcome)

	mu sync.Mutex // one batch at a time
}

// NewScheduler creates a new Scheduler. Specs accept an optional seconds field.
func NewScheduler(ctx context.Context, runner *batch.Runner, batchSize int, logger *zap.Logger) *Scheduler {
	return &Scheduler{
		Cron:      cron.New(cron.WithParser(cron.NewParser(cron.SecondOptional | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor))),
		Runner:    runner,
		BatchSize: batchSize,
		Log:       logger,
		Ctx:       ctx,
	}
}

// Register schedules the batch task.
func (s *Scheduler) Register(spec string) error {
	if _, err := s.Cron.AddFunc(spec, s.batchTask); err != nil {
		return fmt.Errorf("register batch task: %w", err)
	}
	s.Log.Info("batch task registered", zap.String("spec", spec), zap.Int("runs", s.BatchSize))
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	s.Log.Info("scheduler started")
}

// Stop stops the cron scheduler and waits for a running batch to finish.
func (s *Scheduler) Stop() {
	<-s.Cron.Stop().Done()
	s.Log.Info("scheduler stopped")
}

// RunBatchNow executes one batch immediately.
func (s *Scheduler) RunBatchNow() ([]*batch.Outcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	outcomes, err := s.Runner.Run(s.Ctx, s.BatchSize)
	if err != nil {
		return outcomes, err
	}
	sum := batch.Summarize(outcomes)
	s.Log.Info("batch finished",
		zap.Int("runs", sum.Runs),
		zap.Int("min_flips", sum.MinFlips),
		zap.Float64("mean_flips", sum.MeanFlips),
		zap.Int("max_flips", sum.MaxFlips),
		zap.Float64("mean_cash", sum.MeanCash),
	)
	if s.OnBatch != nil {
		s.OnBatch(outcomes)
	}
	return outcomes, nil
}

func (s *Scheduler) batchTask() {
	s.Log.Info("running scheduled batch")
	if _, err := s.RunBatchNow(); err != nil {
		s.Log.Error("scheduled batch", zap.Error(err))
	}
}
