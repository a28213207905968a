package app

import (
	"context"
	"fmt"
)

// Run loads the plan and writes the session summary.
func (a *App) Run(ctx context.Context) error {
	a.logger.Debug("App.Run method started.")

	if err := a.Load(ctx); err != nil {
		return err
	}
	if err := WriteReport(a.outW, a.registry); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	queued := len(a.registry.Collections())
	if queued == 0 {
		a.logger.Warn("No scans flagged, nothing to collect.")
	}
	a.logger.Debug("App.Run method finished.", "collections", queued)
	return nil
}
