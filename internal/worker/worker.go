package worker

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/campuseats/campuseats/internal/logger"
)

// ReportService is the sweep performed on each tick
type ReportService interface {
	SweepStale(ctx context.Context) error
}

// EscalationSweeper is worker escalating stale resolved reports on a fixed
// interval for the lifetime of the process
type EscalationSweeper struct {
	svc      ReportService
	interval time.Duration
}

// NewEscalationSweeper creates new escalation sweeper
func NewEscalationSweeper(svc ReportService, interval time.Duration) *EscalationSweeper {
	return &EscalationSweeper{svc: svc, interval: interval}
}

// Run sweeps until the context is cancelled
func (es *EscalationSweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(es.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Log.Debug("escalation sweeper is done")
			return
		case <-ticker.C:
			if err := es.svc.SweepStale(ctx); err != nil {
				logger.Log.Error("escalation sweep pass", zap.Error(err))
			}
		}
	}
}
