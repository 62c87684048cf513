package service

import (
	"context"
	"log/slog"
	"time"
)

// Sweeper invokes the expiry sweep on a fixed cadence, so campaigns that
// stop receiving pledges still transition past their deadline.
type Sweeper struct {
	service  *SettlementService
	interval time.Duration
	logger   *slog.Logger
}

func NewSweeper(service *SettlementService, interval time.Duration, logger *slog.Logger) *Sweeper {
	if logger == nil {
		logger = slog.Default()
	}
	return &Sweeper{service: service, interval: interval, logger: logger}
}

// Run blocks until ctx is cancelled, sweeping once per interval.
func (s *Sweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("expiry sweeper started", "interval", s.interval)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("expiry sweeper stopped")
			return
		case <-ticker.C:
			s.service.SweepExpired(ctx)
		}
	}
}
