package session

import (
	"context"
	"time"
)

// RunSweeper cancels overdue sessions every cfg.SweepInterval until ctx is
// done.
func (o *Orchestrator) RunSweeper(ctx context.Context) error {
	ticker := time.NewTicker(o.cfg.SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if swept := o.Sweep(ctx, o.clk.Now()); len(swept) > 0 {
				o.log.WithField("sessions", len(swept)).Info("swept overdue focus sessions")
			}
		}
	}
}
