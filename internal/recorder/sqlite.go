package recorder

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

// SQLiteRecorder persists run history to a SQLite database.
type SQLiteRecorder struct {
	db  *sql.DB
	mu  sync.Mutex
	log *zap.Logger
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string, logger *zap.Logger) (*SQLiteRecorder, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create db dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db, log: logger}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	logger.Info("sqlite recorder opened", zap.String("path", dbPath))
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id           INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp    INTEGER NOT NULL,
			run_id       TEXT NOT NULL UNIQUE,
			batch_id     TEXT,
			total_flips  INTEGER,
			final_cash   TEXT,
			coin_level   INTEGER,
			coin_label   TEXT,
			chance_level INTEGER,
			chance_label TEXT,
			combo_level  INTEGER,
			combo_label  TEXT,
			histogram    TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_ts ON runs(timestamp)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_batch ON runs(batch_id)`,

		`CREATE TABLE IF NOT EXISTS upgrades (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp  INTEGER NOT NULL,
			run_id     TEXT NOT NULL,
			flip       INTEGER,
			track      TEXT,
			from_level INTEGER,
			to_level   INTEGER,
			from_label TEXT,
			to_label   TEXT,
			cost       TEXT,
			cash_after TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_upgrades_run ON upgrades(run_id)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) RecordRun(rec *RunRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	hist, err := json.Marshal(rec.Histogram)
	if err != nil {
		return fmt.Errorf("marshal histogram: %w", err)
	}
	f := rec.Final

	_, err = r.db.Exec(`INSERT INTO runs
		(timestamp, run_id, batch_id, total_flips, final_cash,
		 coin_level, coin_label, chance_level, chance_label, combo_level, combo_label,
		 histogram)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?)`,
		time.Now().Unix(), rec.RunID, rec.BatchID, rec.TotalFlips, money(f.Cash),
		f.Coin.Index, f.Coin.Label, f.Chance.Index, f.Chance.Label, f.Combo.Index, f.Combo.Label,
		string(hist),
	)
	return err
}

func (r *SQLiteRecorder) RecordUpgrade(rec *UpgradeRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	evt := rec.Event
	_, err := r.db.Exec(`INSERT INTO upgrades
		(timestamp, run_id, flip, track, from_level, to_level, from_label, to_label, cost, cash_after)
		VALUES (?,?,?,?,?,?,?,?,?,?)`,
		time.Now().Unix(), rec.RunID, evt.Flip, evt.Track,
		evt.FromIndex, evt.ToIndex, evt.From, evt.To,
		money(evt.Cost), money(evt.Cash),
	)
	return err
}

func (r *SQLiteRecorder) Close() error {
	r.log.Info("closing sqlite recorder")
	return r.db.Close()
}

func money(x float64) string {
	return decimal.NewFromFloat(x).StringFixed(2)
}
