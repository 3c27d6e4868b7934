package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/crrd/internal/logger"
)

// SessionSweeper is the part of the session service the sweeper needs.
type SessionSweeper interface {
	SweepExpiredSessions(ctx context.Context) (int64, error)
}

type sessionSweeperWorker struct {
	sweeper  SessionSweeper
	interval time.Duration
	logger   *logger.Logger
}

// NewSessionSweeperWorker returns a [Worker] that purges expired sessions
// every interval.
func NewSessionSweeperWorker(sweeper SessionSweeper, interval time.Duration, logger *logger.Logger) Worker {
	return &sessionSweeperWorker{
		sweeper:  sweeper,
		interval: interval,
		logger:   logger,
	}
}

func (w *sessionSweeperWorker) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.logger.Info().Str("func", "*sessionSweeperWorker.Run").Dur("interval", w.interval).Msg("session sweeper started")
	for {
		select {
		case <-ctx.Done():
			w.logger.Info().Str("func", "*sessionSweeperWorker.Run").Msg("session sweeper stopped")
			return
		case <-ticker.C:
			w.sweep(ctx)
		}
	}
}

func (w *sessionSweeperWorker) sweep(ctx context.Context) {
	removed, err := w.sweeper.SweepExpiredSessions(ctx)
	if err != nil {
		w.logger.Err(err).Str("func", "*sessionSweeperWorker.sweep").Msg("error sweeping expired sessions")
		return
	}
	if removed > 0 {
		w.logger.Debug().Int64("removed", removed).Msg("expired sessions swept")
	}
}
