package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"CoinStreak/internal/batch"
	"CoinStreak/internal/config"
	"CoinStreak/internal/engine"
	"CoinStreak/internal/logger"
	"CoinStreak/internal/recorder"
	"CoinStreak/internal/report"
	"CoinStreak/internal/scheduler"

	"go.uber.org/zap"
)

func main() {
	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	lg, err := logger.New(cfg.Log.Level, cfg.Log.Development)
	if err != nil {
		log.Fatalf("[FATAL] init logger: %v", err)
	}
	defer lg.Sync()
	lg.Info("CoinStreak starting", zap.String("config", cfgPath), zap.Int("runs", cfg.Simulation.Runs))

	// Init recorder
	var rec recorder.Recorder = recorder.NewNoopRecorder()
	if cfg.RecorderEnabled() {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath, lg)
		if err != nil {
			lg.Warn("init sqlite recorder failed, using noop", zap.Error(err))
		} else {
			rec = sr
			defer sr.Close()
		}
	}

	// Init runner
	runner := batch.NewRunner(rec, lg)
	if cfg.Simulation.Seed != 0 {
		runner.Sources = batch.SeededSources(cfg.Simulation.Seed)
	}
	if cfg.Log.Progress {
		runner.Progress = func(runID string) engine.Observer {
			return report.NewProgressLogger(lg, runID)
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sched := scheduler.NewScheduler(ctx, runner, cfg.Simulation.Runs, lg)
	sched.OnBatch = func(outcomes []*batch.Outcome) {
		if cfg.Report.SummaryFile == "" {
			return
		}
		if err := report.WriteJSON(cfg.Report.SummaryFile, outcomes); err != nil {
			lg.Error("write summary file", zap.Error(err))
		}
	}

	if cfg.Schedule.BatchCron == "" {
		outcomes, err := sched.RunBatchNow()
		if err != nil {
			lg.Fatal("simulation aborted", zap.Error(err))
		}
		for _, o := range outcomes {
			fmt.Println(report.FormatRun(o))
		}
		if len(outcomes) > 1 {
			fmt.Println(report.FormatBatch(batch.Summarize(outcomes)))
		}
		return
	}

	if err := sched.Register(cfg.Schedule.BatchCron); err != nil {
		lg.Fatal("register cron task", zap.Error(err))
	}
	sched.Start()
	defer sched.Stop()

	lg.Info("CoinStreak is running. Press Ctrl+C to stop.")

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	lg.Info("shutdown signal received, stopping...")
	cancel()
}
