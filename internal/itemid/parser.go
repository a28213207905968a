package itemid

import (
	"fmt"
	"regexp"
	"strconv"
)

// idRegex matches the canonical form, e.g. `setup[12]`.
var idRegex = regexp.MustCompile(`^([a-z]+)\[(\d+)\]$`)

// Parse creates an ID from its canonical string representation.
func Parse(raw string) (ID, error) {
	if raw == "" {
		return ID{}, fmt.Errorf("identifier cannot be empty")
	}

	matches := idRegex.FindStringSubmatch(raw)
	if matches == nil {
		return ID{}, fmt.Errorf("invalid identifier format: %q", raw)
	}

	kind := Kind(matches[1])
	if _, ok := known[kind]; !ok {
		return ID{}, fmt.Errorf("unknown identifier kind: %q", kind)
	}

	seq, err := strconv.Atoi(matches[2])
	if err != nil {
		// Unreachable unless the number overflows int.
		return ID{}, fmt.Errorf("invalid identifier sequence %q: %w", matches[2], err)
	}

	return New(kind, seq), nil
}
