package registry

import (
	"fmt"

	"github.com/specialistvlad/xrdcollect/internal/itemid"
)

// ResolveSetup returns the current index of the setup referenced by ref.
// A reference is either a setup identifier such as `setup[3]` or an exact
// setup name. Identifiers take precedence; with duplicate names the first
// match wins.
func (r *Registry) ResolveSetup(ref string) (int, error) {
	if id, err := itemid.Parse(ref); err == nil && id.Kind == itemid.KindSetup {
		for i, setup := range r.experimentSetups {
			if setup.ID() == id {
				return i, nil
			}
		}
	}

	for i, setup := range r.experimentSetups {
		if setup.Name == ref {
			return i, nil
		}
	}

	return -1, fmt.Errorf("%w: %q", ErrSetupNotFound, ref)
}
