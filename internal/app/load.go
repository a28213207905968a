package app

import (
	"context"
	"fmt"

	"github.com/specialistvlad/xrdcollect/internal/ctxlog"
	"github.com/specialistvlad/xrdcollect/internal/plan"
)

// Load reads the configured plan files and applies them to the registry.
func (a *App) Load(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)

	p, err := plan.LoadRecursively(ctx, a.config.PlanPaths...)
	if err != nil {
		return fmt.Errorf("failed to load plan: %w", err)
	}
	if err := p.Apply(ctx, a.registry); err != nil {
		return fmt.Errorf("failed to apply plan: %w", err)
	}

	a.logger.Info("Registry populated.", "setups", a.registry.SetupCount(), "points", a.registry.PointCount())
	return nil
}
