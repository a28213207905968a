package registry

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/specialistvlad/xrdcollect/internal/itemid"
	"github.com/specialistvlad/xrdcollect/internal/model"
)

// Registry holds the experiment setups and sample points of one session.
type Registry struct {
	logger *slog.Logger

	setupIDs *itemid.Sequence
	pointIDs *itemid.Sequence

	experimentSetups []*model.ExperimentSetup
	samplePoints     []*model.SamplePoint
}

// New creates an empty Registry. A nil logger falls back to slog.Default().
func New(logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.Default()
	}
	return &Registry{
		logger:   logger,
		setupIDs: itemid.NewSequence(itemid.KindSetup),
		pointIDs: itemid.NewSequence(itemid.KindPoint),
	}
}

// AddExperimentSetup appends a new setup and registers it on every existing
// sample point with both scan flags cleared. Names are not checked for
// uniqueness; see AddUniqueExperimentSetup.
func (r *Registry) AddExperimentSetup(name string, params model.SetupParams) *model.ExperimentSetup {
	setup := model.NewExperimentSetup(r.setupIDs.Next(), name, params)
	r.experimentSetups = append(r.experimentSetups, setup)

	for _, point := range r.samplePoints {
		// A freshly generated ID cannot already be registered.
		if err := point.RegisterSetup(setup); err != nil {
			panic(fmt.Sprintf("registry: %v", err))
		}
	}

	r.logger.Debug("Experiment setup added.", "id", setup.ID().String(), "name", name, "points", len(r.samplePoints))
	return setup
}

// AddUniqueExperimentSetup behaves like AddExperimentSetup but refuses names
// that are already in use.
func (r *Registry) AddUniqueExperimentSetup(name string, params model.SetupParams) (*model.ExperimentSetup, error) {
	if r.SetupNameExists(name) {
		return nil, fmt.Errorf("experiment setup %q: %w", name, ErrDuplicateName)
	}
	return r.AddExperimentSetup(name, params), nil
}

// DeleteExperimentSetup removes the setup at index from the registry and from
// every sample point.
func (r *Registry) DeleteExperimentSetup(index int) error {
	if err := model.CheckIndex("experiment setup", index, len(r.experimentSetups)); err != nil {
		return err
	}
	setup := r.experimentSetups[index]

	for _, point := range r.samplePoints {
		if err := point.UnregisterSetup(setup); err != nil {
			return fmt.Errorf("failed to delete experiment setup %s: %w", setup.ID(), err)
		}
	}
	r.experimentSetups = slices.Delete(r.experimentSetups, index, index+1)

	r.logger.Debug("Experiment setup deleted.", "id", setup.ID().String(), "name", setup.Name, "index", index)
	return nil
}

// ClearExperimentSetups removes every setup, and with them every scan flag on
// every sample point.
func (r *Registry) ClearExperimentSetups() {
	for i := len(r.experimentSetups) - 1; i >= 0; i-- {
		if err := r.DeleteExperimentSetup(i); err != nil {
			panic(fmt.Sprintf("registry: %v", err))
		}
	}
	r.logger.Debug("Experiment setups cleared.")
}

// AddSamplePoint appends a new point and registers every existing setup on
// it, in registry order, with both scan flags cleared.
func (r *Registry) AddSamplePoint(name string, x, y, z float64) *model.SamplePoint {
	point := model.NewSamplePoint(r.pointIDs.Next(), name, x, y, z)
	r.samplePoints = append(r.samplePoints, point)

	for _, setup := range r.experimentSetups {
		if err := point.RegisterSetup(setup); err != nil {
			panic(fmt.Sprintf("registry: %v", err))
		}
	}

	r.logger.Debug("Sample point added.", "id", point.ID.String(), "name", name, "setups", len(r.experimentSetups))
	return point
}

// AddUniqueSamplePoint behaves like AddSamplePoint but refuses names that are
// already in use.
func (r *Registry) AddUniqueSamplePoint(name string, x, y, z float64) (*model.SamplePoint, error) {
	if r.SampleNameExists(name) {
		return nil, fmt.Errorf("sample point %q: %w", name, ErrDuplicateName)
	}
	return r.AddSamplePoint(name, x, y, z), nil
}

// DeleteSamplePoint removes the point at index.
func (r *Registry) DeleteSamplePoint(index int) error {
	if err := model.CheckIndex("sample point", index, len(r.samplePoints)); err != nil {
		return err
	}
	point := r.samplePoints[index]
	r.samplePoints = slices.Delete(r.samplePoints, index, index+1)

	r.logger.Debug("Sample point deleted.", "id", point.ID.String(), "name", point.Name, "index", index)
	return nil
}

// ClearSamplePoints removes every sample point.
func (r *Registry) ClearSamplePoints() {
	r.samplePoints = nil
	r.logger.Debug("Sample points cleared.")
}

// ExperimentSetupNames returns the setup names in registry order.
func (r *Registry) ExperimentSetupNames() []string {
	names := make([]string, 0, len(r.experimentSetups))
	for _, setup := range r.experimentSetups {
		names = append(names, setup.Name)
	}
	return names
}

// SetupNameExists reports whether any setup is named exactly name.
func (r *Registry) SetupNameExists(name string) bool {
	for _, setup := range r.experimentSetups {
		if setup.Name == name {
			return true
		}
	}
	return false
}

// SampleNameExists reports whether any sample point is named exactly name.
func (r *Registry) SampleNameExists(name string) bool {
	for _, point := range r.samplePoints {
		if point.Name == name {
			return true
		}
	}
	return false
}

// ExperimentState returns the scan flags of every (point, setup) pair,
// point-major: state[point][setup].
func (r *Registry) ExperimentState() [][]model.ScanFlags {
	state := make([][]model.ScanFlags, 0, len(r.samplePoints))
	for _, point := range r.samplePoints {
		row := make([]model.ScanFlags, point.SetupCount())
		for i := range row {
			flags, err := point.ScanFlags(i)
			if err != nil {
				panic(fmt.Sprintf("registry: %v", err))
			}
			row[i] = flags
		}
		state = append(state, row)
	}
	return state
}

// ExperimentSetups returns the setups in registry order.
func (r *Registry) ExperimentSetups() []*model.ExperimentSetup {
	out := make([]*model.ExperimentSetup, len(r.experimentSetups))
	copy(out, r.experimentSetups)
	return out
}

// SamplePoints returns the sample points in registry order.
func (r *Registry) SamplePoints() []*model.SamplePoint {
	out := make([]*model.SamplePoint, len(r.samplePoints))
	copy(out, r.samplePoints)
	return out
}

// ExperimentSetup returns the setup at index.
func (r *Registry) ExperimentSetup(index int) (*model.ExperimentSetup, error) {
	if err := model.CheckIndex("experiment setup", index, len(r.experimentSetups)); err != nil {
		return nil, err
	}
	return r.experimentSetups[index], nil
}

// SamplePoint returns the sample point at index.
func (r *Registry) SamplePoint(index int) (*model.SamplePoint, error) {
	if err := model.CheckIndex("sample point", index, len(r.samplePoints)); err != nil {
		return nil, err
	}
	return r.samplePoints[index], nil
}

// SetupCount returns the number of experiment setups.
func (r *Registry) SetupCount() int {
	return len(r.experimentSetups)
}

// PointCount returns the number of sample points.
func (r *Registry) PointCount() int {
	return len(r.samplePoints)
}
