package report

import (
	"CoinStreak/internal/model"

	"go.uber.org/zap"
)

// ProgressLogger is an engine observer that writes run progress to zap.
// Flips go to debug; upgrades and first-time streak lengths go to info.
// The terminal streak is left to the run summary.
type ProgressLogger struct {
	log *zap.Logger
}

// NewProgressLogger tags every line with the run id.
func NewProgressLogger(logger *zap.Logger, runID string) *ProgressLogger {
	return &ProgressLogger{log: logger.With(zap.String("run", runID))}
}

func (p *ProgressLogger) OnEvent(evt model.Event) {
	switch evt.Kind {
	case model.EventUpgrade:
		p.log.Info("upgrade",
			zap.Int("flip", evt.Flip),
			zap.String("track", evt.Track),
			zap.String("from", evt.From),
			zap.String("to", evt.To),
			zap.String("cost", Dollars(evt.Cost)),
			zap.String("cash", Dollars(evt.Cash)),
		)
	case model.EventHeads:
		p.log.Debug("heads",
			zap.Int("flip", evt.Flip),
			zap.Int("streak", evt.Streak),
			zap.String("gain", Dollars(evt.Gain)),
			zap.String("cash", Dollars(evt.Cash)),
		)
	case model.EventTails:
		p.log.Debug("tails",
			zap.Int("flip", evt.Flip),
			zap.Int("streak", evt.Streak),
			zap.String("cash", Dollars(evt.Cash)),
		)
	case model.EventNotableStreak:
		if evt.IsTerminal() {
			return
		}
		p.log.Info("first streak of this length",
			zap.Int("flip", evt.Flip),
			zap.Int("streak", evt.Streak),
		)
	}
}
