// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines the ExperimentSetup, a named detector position combined
// with an omega scan range and a per-step exposure time.
package model

import (
	"fmt"

	"github.com/specialistvlad/xrdcollect/internal/itemid"
)

// DefaultDetectorPosZ is the detector z position used when none is given.
const DefaultDetectorPosZ = 49

// SetupParams holds the physical parameters of an experiment setup.
type SetupParams struct {
	DetectorPosX float64
	DetectorPosZ float64
	OmegaStart   float64
	OmegaEnd     float64
	OmegaStep    float64
	TimePerStep  float64
}

// DefaultSetupParams returns the parameters used for a setup when the caller
// supplies nothing else.
func DefaultSetupParams() SetupParams {
	return SetupParams{DetectorPosZ: DefaultDetectorPosZ}
}

// ExperimentSetup is a named detector/scan configuration. Its identifier is
// fixed at construction since sample points key their scan flags by it.
type ExperimentSetup struct {
	id   itemid.ID
	Name string

	DetectorPosX float64
	DetectorPosZ float64

	OmegaStart float64
	OmegaEnd   float64
	OmegaStep  float64

	TimePerStep float64
}

// NewExperimentSetup creates a setup from the given parameters.
func NewExperimentSetup(id itemid.ID, name string, p SetupParams) *ExperimentSetup {
	return &ExperimentSetup{
		id:           id,
		Name:         name,
		DetectorPosX: p.DetectorPosX,
		DetectorPosZ: p.DetectorPosZ,
		OmegaStart:   p.OmegaStart,
		OmegaEnd:     p.OmegaEnd,
		OmegaStep:    p.OmegaStep,
		TimePerStep:  p.TimePerStep,
	}
}

// ID returns the identifier the setup was created with.
func (s *ExperimentSetup) ID() itemid.ID {
	return s.id
}

// Params returns the setup's current physical parameters.
func (s *ExperimentSetup) Params() SetupParams {
	return SetupParams{
		DetectorPosX: s.DetectorPosX,
		DetectorPosZ: s.DetectorPosZ,
		OmegaStart:   s.OmegaStart,
		OmegaEnd:     s.OmegaEnd,
		OmegaStep:    s.OmegaStep,
		TimePerStep:  s.TimePerStep,
	}
}

// TotalExposureTime is the exposure accumulated over the whole omega range:
// (end - start) / step * time_per_step.
func (s *ExperimentSetup) TotalExposureTime() (float64, error) {
	if s.OmegaStep == 0 {
		return 0, fmt.Errorf("setup %q: %w: omega step is zero", s.Name, ErrUndefinedExposure)
	}
	return (s.OmegaEnd - s.OmegaStart) / s.OmegaStep * s.TimePerStep, nil
}

// StepExposureTime converts a total exposure into the per-step exposure for
// this setup's omega range: total * step / (end - start).
func (s *ExperimentSetup) StepExposureTime(total float64) (float64, error) {
	if s.OmegaEnd == s.OmegaStart {
		return 0, fmt.Errorf("setup %q: %w: omega range is empty", s.Name, ErrUndefinedExposure)
	}
	return total * s.OmegaStep / (s.OmegaEnd - s.OmegaStart), nil
}

// String renders the setup as "name: x, z, start, end, step, time".
func (s *ExperimentSetup) String() string {
	return fmt.Sprintf("%s: %g, %g, %g, %g, %g, %g",
		s.Name, s.DetectorPosX, s.DetectorPosZ,
		s.OmegaStart, s.OmegaEnd, s.OmegaStep, s.TimePerStep)
}
