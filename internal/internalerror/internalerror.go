// Package internalerror defines the error type internal packages raise
// when the algorithm itself misbehaves: a beachline neighbour lookup
// yielding an inconsistent triple, or a finishing step that cannot close a
// cell. Per spec §7 these indicate a bug, not a problem with caller
// input, and should never surface for valid input. The public voronoi
// package re-exports this type as InternalInvariantError rather than
// redefining it, so the Op/Reason a failing internal stage records reach
// the caller unchanged.
package internalerror

import "fmt"

// Error is an internal invariant violation. Op names the stage that
// detected it (e.g. "engine.handleCircleEvent", "finish.closeCell");
// Reason is a human-readable diagnostic, typically referencing the
// offending site by ID.
type Error struct {
	Op     string
	Reason string
}

func (e *Error) Error() string {
	return fmt.Sprintf("internal invariant violated in %s: %s", e.Op, e.Reason)
}

// New constructs an *Error, formatting Reason like fmt.Sprintf.
func New(op, format string, args ...any) *Error {
	return &Error{Op: op, Reason: fmt.Sprintf(format, args...)}
}
