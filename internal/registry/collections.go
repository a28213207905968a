package registry

import "github.com/specialistvlad/xrdcollect/internal/model"

// Mode is the kind of scan to collect.
type Mode string

const (
	ModeStep Mode = "step"
	ModeWide Mode = "wide"
)

// Collection is a single scan the measurement layer has to perform.
type Collection struct {
	Point *model.SamplePoint
	Setup *model.ExperimentSetup
	Mode  Mode
}

// Collections lists every flagged scan in point-major, setup order. For a
// pair with both flags set the step scan comes first.
func (r *Registry) Collections() []Collection {
	var out []Collection
	for _, point := range r.samplePoints {
		for i, setup := range point.ExperimentSetups() {
			flags, err := point.ScanFlags(i)
			if err != nil {
				// Index comes from the point's own setup list.
				panic(err)
			}
			if flags.Step {
				out = append(out, Collection{Point: point, Setup: setup, Mode: ModeStep})
			}
			if flags.Wide {
				out = append(out, Collection{Point: point, Setup: setup, Mode: ModeWide})
			}
		}
	}
	return out
}
