package registry

import "errors"

var (
	// ErrDuplicateName is returned by the AddUnique* methods.
	ErrDuplicateName = errors.New("name already in use")

	// ErrSetupNotFound is returned when a setup reference matches neither an
	// identifier nor a name.
	ErrSetupNotFound = errors.New("experiment setup not found")
)
