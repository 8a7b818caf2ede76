package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())
	cfg, err := Load("does-not-exist.yaml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Simulation.Runs != 1 {
		t.Errorf("expected 1 run, got %d", cfg.Simulation.Runs)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("expected info level, got %q", cfg.Log.Level)
	}
	if cfg.Database.SQLitePath != "data/coin_streak.db" {
		t.Errorf("unexpected sqlite path %q", cfg.Database.SQLitePath)
	}
	if !cfg.RecorderEnabled() {
		t.Error("recorder should be enabled by default")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoad_YAML(t *testing.T) {
	t.Chdir(t.TempDir())
	path := writeConfig(t, `
simulation:
  runs: 5
  seed: 42
log:
  level: debug
  progress: true
database:
  sqlite_path: "-"
schedule:
  batch_cron: "0 */5 * * * *"
report:
  summary_file: out/summary.json
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Simulation.Runs != 5 || cfg.Simulation.Seed != 42 {
		t.Errorf("unexpected simulation section %+v", cfg.Simulation)
	}
	if cfg.Log.Level != "debug" || !cfg.Log.Progress {
		t.Errorf("unexpected log section %+v", cfg.Log)
	}
	if cfg.RecorderEnabled() {
		t.Error("recorder should be disabled by \"-\"")
	}
	if cfg.Schedule.BatchCron != "0 */5 * * * *" || cfg.Report.SummaryFile != "out/summary.json" {
		t.Errorf("unexpected schedule/report %+v %+v", cfg.Schedule, cfg.Report)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	path := writeConfig(t, "simulation:\n  runs: 5\n")
	t.Setenv("STREAK_RUNS", "2")
	t.Setenv("STREAK_SEED", "7")
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("SQLITE_PATH", "/tmp/x.db")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Simulation.Runs != 2 || cfg.Simulation.Seed != 7 {
		t.Errorf("env should override yaml, got %+v", cfg.Simulation)
	}
	if cfg.Log.Level != "warn" || cfg.Database.SQLitePath != "/tmp/x.db" {
		t.Errorf("unexpected overrides %+v %+v", cfg.Log, cfg.Database)
	}
}

func TestLoad_DotEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("BATCH_CRON=\"@every 1m\"\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Unsetenv("BATCH_CRON") })

	cfg, err := Load("missing.yaml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Schedule.BatchCron != "@every 1m" {
		t.Errorf("expected cron from .env, got %q", cfg.Schedule.BatchCron)
	}
}

func TestLoad_BadInput(t *testing.T) {
	t.Chdir(t.TempDir())
	if _, err := Load(writeConfig(t, "simulation: [not a map")); err == nil {
		t.Error("expected parse error")
	}
	t.Setenv("STREAK_RUNS", "many")
	if _, err := Load("missing.yaml"); err == nil {
		t.Error("expected error for non-numeric STREAK_RUNS")
	}
}

func TestValidate(t *testing.T) {
	cfg := &Config{}
	cfg.Simulation.Runs = 1
	cfg.Log.Level = "verbose"
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for unknown log level")
	}
	cfg.Log.Level = "info"
	cfg.Simulation.Runs = -1
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for negative runs")
	}
}
