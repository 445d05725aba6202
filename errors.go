package plot

import "errors"

// Precondition violations reported by the grid and transform operations.
// The Rust original only checked these with debug assertions and let
// release builds propagate infinities and NaNs; here they are errors in
// every build. All are returned wrapped, so match with [errors.Is].
var (
	// ErrDegenerateBounds reports an axis extent with Min == Max, over
	// which the coordinate transform is not well-defined.
	ErrDegenerateBounds = errors.New("plot: degenerate axis bounds")

	// ErrInvertedInterval reports an interval with Min > Max.
	ErrInvertedInterval = errors.New("plot: inverted interval")

	// ErrInvalidMagnitude reports a magnitude that no integer power of a
	// base can contain, i.e. zero.
	ErrInvalidMagnitude = errors.New("plot: invalid magnitude")

	// ErrMarkLimit reports a grid request that would produce more than
	// MaxGridMarks marks.
	ErrMarkLimit = errors.New("plot: too many grid marks")
)
