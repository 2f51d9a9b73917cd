package voronoi

import (
	"fmt"

	"github.com/wesleyclements/voronoi/internal/internalerror"
)

// InvalidInputError is returned by [Compute] when the input points or box
// dimensions violate the input contract (spec §7): a non-finite
// coordinate, a non-positive width or height, no sites, or two sites
// closer than epsilon. It is surfaced to the caller before any work
// begins; no partial diagram is built.
type InvalidInputError struct {
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("voronoi: invalid input: %s", e.Reason)
}

// InternalInvariantError reports a violated algorithm invariant (spec
// §7) — a beachline neighbour lookup returning an inconsistent triple, or
// a finishing step that could not close a cell. It should never occur on
// valid input; if it does, it names the stage and offending site.
//
// This is an alias rather than a new type: internal packages construct it
// directly via [internalerror.New] so their diagnostics reach the caller
// unchanged.
type InternalInvariantError = internalerror.Error
