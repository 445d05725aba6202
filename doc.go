// Package plot implements the axis coordinate core of a 2D plotting
// surface: a reversible mapping between a data coordinate axis and a
// normalized plot coordinate axis, and generation of "nice" grid marks
// covering a visible range at multiple density tiers.
//
// # egui_plot
//
// This package is a manual, idiomatic Go port of the axis-transform core of
// the [egui_plot] Rust crate. It covers the coordinate transform and grid
// generation algorithm only; rendering, input handling, and layout are the
// business of whatever surface consumes the marks.
//
// Where the original left preconditions to debug assertions, this package
// checks them in all builds and returns typed errors (see
// [ErrDegenerateBounds], [ErrInvertedInterval], [ErrInvalidMagnitude], and
// [ErrMarkLimit]).
//
// # Features
//
//   - Bidirectional linear axis transforms, optionally inverted
//     (see [LinearAxisTransform])
//   - Grid-mark generation at three density tiers with overlap removed
//     (see [AxisTransform])
//   - Rounding of magnitudes to powers of a base (see [NextPower])
//   - Mapping of normalized plot coordinates onto a device interval
//     (see [OutputScale])
//   - A gonum/plot ticker bridge (see package
//     [github.com/mkalte666/egui-plot/gonumtick])
//
// # Coordinate spaces
//
// Data coordinates are the caller's native axis units. Plot coordinates are
// normalized so that the visible bounds span [0, 1] (negated when the axis
// is inverted). [OutputScale] optionally maps plot coordinates onto a device
// interval such as pixels. None of the mappings clamp by default: a data
// value outside the bounds transforms to a plot coordinate outside [0, 1].
//
// # Grid marks
//
// A [GridMark] is a tick position annotated with the step size of the
// density tier that produced it; a larger step size means a more visually
// significant mark. GridMarks rounds the requested base spacing up to a
// power of ten and emits candidate marks at that unit and at 10 and 100
// times it, then merges the tiers so that a shared position is reported
// once, with the coarsest applicable step size.
//
// All operations are pure functions over immutable value types; concurrent
// use needs no synchronization.
//
// [egui_plot]: https://github.com/emilk/egui_plot
package plot
