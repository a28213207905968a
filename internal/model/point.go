// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines the SamplePoint and the scan flags it keeps for every
// experiment setup registered on it.
package model

import (
	"fmt"

	"github.com/specialistvlad/xrdcollect/internal/itemid"
)

// ScanFlags selects the scan modes to run for one (point, setup) pair.
type ScanFlags struct {
	Step bool
	Wide bool
}

// SamplePoint is a named location in sample space. The zero value is a point
// with no registered setups.
type SamplePoint struct {
	ID   itemid.ID
	Name string
	X    float64
	Y    float64
	Z    float64

	// setups keeps registration order for index access.
	setups []*ExperimentSetup
	// flags is keyed by setup ID and always has one entry per element of setups.
	flags map[itemid.ID]ScanFlags
}

// NewSamplePoint creates a point with no registered setups.
func NewSamplePoint(id itemid.ID, name string, x, y, z float64) *SamplePoint {
	return &SamplePoint{
		ID:    id,
		Name:  name,
		X:     x,
		Y:     y,
		Z:     z,
		flags: make(map[itemid.ID]ScanFlags),
	}
}

// SetPosition overwrites the point's coordinates.
func (p *SamplePoint) SetPosition(x, y, z float64) {
	p.X = x
	p.Y = y
	p.Z = z
}

// SetPerformStepScanSetup sets the step-scan flag for the setup at index.
func (p *SamplePoint) SetPerformStepScanSetup(index int, state bool) error {
	return p.updateFlags(index, func(f *ScanFlags) { f.Step = state })
}

// SetPerformWideScanSetup sets the wide-scan flag for the setup at index.
func (p *SamplePoint) SetPerformWideScanSetup(index int, state bool) error {
	return p.updateFlags(index, func(f *ScanFlags) { f.Wide = state })
}

func (p *SamplePoint) updateFlags(index int, update func(*ScanFlags)) error {
	if err := CheckIndex("setup", index, len(p.setups)); err != nil {
		return fmt.Errorf("sample point %q: %w", p.Name, err)
	}
	id := p.setups[index].ID()
	flags := p.flags[id]
	update(&flags)
	p.flags[id] = flags
	return nil
}

// ScanFlags returns the flags for the setup at index.
func (p *SamplePoint) ScanFlags(index int) (ScanFlags, error) {
	if err := CheckIndex("setup", index, len(p.setups)); err != nil {
		return ScanFlags{}, fmt.Errorf("sample point %q: %w", p.Name, err)
	}
	return p.flags[p.setups[index].ID()], nil
}

// RegisterSetup appends setup to the point with both scan flags cleared.
func (p *SamplePoint) RegisterSetup(setup *ExperimentSetup) error {
	if setup == nil || setup.ID().IsZero() {
		return fmt.Errorf("sample point %q: %w", p.Name, ErrSetupWithoutID)
	}
	if _, exists := p.flags[setup.ID()]; exists {
		if p.indexOf(setup) >= 0 {
			return fmt.Errorf("sample point %q: %w: %s", p.Name, ErrSetupAlreadyRegistered, setup.ID())
		}
		return fmt.Errorf("sample point %q: %w: %s", p.Name, ErrSetupIDConflict, setup.ID())
	}
	if p.flags == nil {
		p.flags = make(map[itemid.ID]ScanFlags)
	}
	p.setups = append(p.setups, setup)
	p.flags[setup.ID()] = ScanFlags{}
	return nil
}

// UnregisterSetup removes setup and its flags from the point. Only the exact
// setup that was registered matches.
func (p *SamplePoint) UnregisterSetup(setup *ExperimentSetup) error {
	if setup == nil {
		return fmt.Errorf("sample point %q: %w", p.Name, ErrSetupNotRegistered)
	}
	i := p.indexOf(setup)
	if i < 0 {
		return fmt.Errorf("sample point %q: %w: %s", p.Name, ErrSetupNotRegistered, setup.ID())
	}
	p.setups = append(p.setups[:i], p.setups[i+1:]...)
	delete(p.flags, setup.ID())
	return nil
}

func (p *SamplePoint) indexOf(setup *ExperimentSetup) int {
	for i, s := range p.setups {
		if s == setup {
			return i
		}
	}
	return -1
}

// ExperimentSetups returns the registered setups in registration order.
func (p *SamplePoint) ExperimentSetups() []*ExperimentSetup {
	out := make([]*ExperimentSetup, len(p.setups))
	copy(out, p.setups)
	return out
}

// SetupCount returns the number of registered setups.
func (p *SamplePoint) SetupCount() int {
	return len(p.setups)
}

// PerformStepScanForSetup returns the step-scan flags in registration order.
func (p *SamplePoint) PerformStepScanForSetup() []bool {
	out := make([]bool, len(p.setups))
	for i, s := range p.setups {
		out[i] = p.flags[s.ID()].Step
	}
	return out
}

// PerformWideScanForSetup returns the wide-scan flags in registration order.
func (p *SamplePoint) PerformWideScanForSetup() []bool {
	out := make([]bool, len(p.setups))
	for i, s := range p.setups {
		out[i] = p.flags[s.ID()].Wide
	}
	return out
}

// String renders the point as "name, x, y, z, [step flags], [wide flags]".
func (p *SamplePoint) String() string {
	return fmt.Sprintf("%s, %g, %g, %g, %v, %v",
		p.Name, p.X, p.Y, p.Z,
		p.PerformStepScanForSetup(), p.PerformWideScanForSetup())
}
