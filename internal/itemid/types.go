package itemid

import "fmt"

// Kind names the collection an identifier belongs to.
type Kind string

const (
	KindSetup Kind = "setup"
	KindPoint Kind = "point"
)

// known lists the kinds accepted by Parse.
var known = map[Kind]struct{}{
	KindSetup: {},
	KindPoint: {},
}

// ID identifies a single setup or sample point.
type ID struct {
	Kind Kind
	Seq  int
}

// New creates an identifier of the given kind.
func New(kind Kind, seq int) ID {
	return ID{Kind: kind, Seq: seq}
}

// String serializes the ID into its canonical `kind[seq]` form.
// The zero ID renders as an empty string.
func (id ID) String() string {
	if id.IsZero() {
		return ""
	}
	return fmt.Sprintf("%s[%d]", id.Kind, id.Seq)
}

// IsZero reports whether the ID was never assigned.
func (id ID) IsZero() bool {
	return id.Kind == ""
}

// Sequence hands out increasing identifiers of a single kind.
// It is not safe for concurrent use.
type Sequence struct {
	kind Kind
	next int
}

// NewSequence creates a sequence starting at zero.
func NewSequence(kind Kind) *Sequence {
	return &Sequence{kind: kind}
}

// Next returns a fresh identifier.
func (s *Sequence) Next() ID {
	id := New(s.kind, s.next)
	s.next++
	return id
}
