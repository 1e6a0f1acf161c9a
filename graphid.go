package keep

import (
	"fmt"
	"sync/atomic"
)

// GraphID identifies one resolution pass (an object graph). The resolver
// mints one before a top-level pass begins and threads it through nested
// resolutions unchanged; storage only uses it as an opaque map key.
//
// The zero GraphID is valid and means "no graph".
type GraphID struct {
	id uint64
}

var graphIDs atomic.Uint64

// NewGraphID returns a fresh identifier for a resolution pass.
func NewGraphID() GraphID {
	return GraphID{id: graphIDs.Add(1)}
}

// IsZero reports whether the identifier is the zero "no graph" value.
func (g GraphID) IsZero() bool {
	return g.id == 0
}

// String implements fmt.Stringer.
func (g GraphID) String() string {
	if g.IsZero() {
		return "graph-none"
	}

	return fmt.Sprintf("graph-%d", g.id)
}
