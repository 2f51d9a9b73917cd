// Package numeric provides epsilon-tolerant floating-point comparisons used
// throughout the Voronoi sweep: breakpoint ordering, circle-event y values,
// and finishing-pass clipping all compare float64 values that accumulate
// rounding error and cannot be tested with ==.
//
// # Features
//
//   - Floating-Point Comparisons: FloatEquals, FloatGreaterThan, FloatLessThan,
//     and their variants provide robust comparisons between floating-point
//     numbers using an epsilon threshold to mitigate precision errors.
//
//   - Precision Adjustment: SnapToEpsilon snaps a value to the nearest whole
//     number when within an acceptable tolerance, reducing small precision
//     artifacts introduced by repeated arithmetic.
package numeric
