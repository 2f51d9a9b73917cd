package options

import "time"

// WithClock returns a [ComputeOptionFunc] that overrides the clock Compute
// uses to measure Diagram.ExecTime. Production callers never need this; it
// exists so tests can pin ExecTime to a deterministic value.
func WithClock(now func() time.Time) ComputeOptionFunc {
	return func(opts *ComputeOptions) {
		if now == nil {
			return
		}
		opts.Now = now
	}
}
