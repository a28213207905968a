// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package plan

import (
	"context"
	"fmt"

	"github.com/specialistvlad/xrdcollect/internal/ctxlog"
	"github.com/specialistvlad/xrdcollect/internal/registry"
)

// Apply adds the plan's setups, then its points, to reg and sets the
// requested scan flags. Names must be unique across the plan and the
// registry. Apply stops at the first error; whatever was added before it
// stays in the registry.
func (p *Plan) Apply(ctx context.Context, reg *registry.Registry) error {
	logger := ctxlog.FromContext(ctx)

	for _, spec := range p.Setups {
		if _, err := reg.AddUniqueExperimentSetup(spec.Name, spec.Params); err != nil {
			return fmt.Errorf("%s: %w", spec.FSInformation.FilePath, err)
		}
	}

	for _, spec := range p.Points {
		point, err := reg.AddUniqueSamplePoint(spec.Name, spec.X, spec.Y, spec.Z)
		if err != nil {
			return fmt.Errorf("%s: %w", spec.FSInformation.FilePath, err)
		}

		for _, ref := range spec.StepScan {
			idx, err := reg.ResolveSetup(ref)
			if err != nil {
				return fmt.Errorf("%s: point %q step_scan: %w", spec.FSInformation.FilePath, spec.Name, err)
			}
			if err := point.SetPerformStepScanSetup(idx, true); err != nil {
				return fmt.Errorf("%s: point %q: %w", spec.FSInformation.FilePath, spec.Name, err)
			}
		}
		for _, ref := range spec.WideScan {
			idx, err := reg.ResolveSetup(ref)
			if err != nil {
				return fmt.Errorf("%s: point %q wide_scan: %w", spec.FSInformation.FilePath, spec.Name, err)
			}
			if err := point.SetPerformWideScanSetup(idx, true); err != nil {
				return fmt.Errorf("%s: point %q: %w", spec.FSInformation.FilePath, spec.Name, err)
			}
		}
	}

	logger.Debug("Plan applied to registry.", "setups", reg.SetupCount(), "points", reg.PointCount())
	return nil
}
