package plot

import "math"

// logBase is the logarithm base the grid tier hierarchy is derived from:
// tiers are successive powers of it. It is a constant of the algorithm,
// not a tunable.
const logBase = 10.0

// machEps is the IEEE 754 machine epsilon for float64.
const machEps = 0x1p-52

// AxisTransform describes the transformation of data from its own
// coordinate system to normalized plot coordinates, plus grid spacer
// generation for that axis.
//
// This package provides the linear variant, [LinearAxisTransform].
// Non-linear axes (for example logarithmic ones) can implement the same
// interface.
type AxisTransform interface {
	// DataToPlot turns a data coordinate into a normalized plot
	// coordinate.
	DataToPlot(bounds Bounds, x float64) float64

	// PlotToData turns a normalized plot coordinate into a data
	// coordinate. It is the exact algebraic inverse of DataToPlot.
	PlotToData(bounds Bounds, x float64) float64

	// GridMarks generates grid marks covering in.Bounds, in ascending
	// Value order.
	GridMarks(in GridInput) ([]GridMark, error)
}

// LinearAxisTransform maps x -> sign * x, where sign is -1 if the axis is
// inverted and +1 otherwise.
type LinearAxisTransform struct {
	invert bool
}

var _ AxisTransform = LinearAxisTransform{}

// NewLinearAxisTransform returns a linear axis transform. Inversion flips
// the axis direction: data growing towards bounds.Max then maps towards
// -1 instead of +1, as is conventional for a screen Y axis.
func NewLinearAxisTransform(invert bool) LinearAxisTransform {
	return LinearAxisTransform{invert: invert}
}

// Normal returns the non-inverted linear axis transform.
func Normal() LinearAxisTransform {
	return NewLinearAxisTransform(false)
}

// Inverted returns the inverted linear axis transform.
func Inverted() LinearAxisTransform {
	return NewLinearAxisTransform(true)
}

func (t LinearAxisTransform) sign() float64 {
	if t.invert {
		return -1
	}
	return 1
}

// DataToPlot maps x so that bounds.Min and bounds.Max correspond to 0 and
// sign()*1. The mapping does not clamp; values outside the bounds map
// outside [0, 1]. Degenerate bounds (Min == Max) divide by zero and
// propagate a non-finite result; check with [Bounds.Validate] first.
func (t LinearAxisTransform) DataToPlot(bounds Bounds, x float64) float64 {
	return t.sign() * (x - bounds.Min) / (bounds.Max - bounds.Min)
}

// PlotToData is the inverse of [LinearAxisTransform.DataToPlot]:
// PlotToData(b, DataToPlot(b, x)) == x up to floating-point rounding, for
// any x and non-degenerate bounds.
func (t LinearAxisTransform) PlotToData(bounds Bounds, x float64) float64 {
	return bounds.Min + t.sign()*x*(bounds.Max-bounds.Min)
}

// GridMarks generates marks covering in.Bounds at three density tiers:
// in.BaseStepSize rounded up to a power of ten, then 10 and 100 times
// that. A base step of (effectively) zero granularity yields no marks and
// no error. Inverted bounds fail with [ErrInvertedInterval]; a request
// that would produce more than [MaxGridMarks] marks fails with
// [ErrMarkLimit].
func (t LinearAxisTransform) GridMarks(in GridInput) ([]GridMark, error) {
	if math.Abs(in.BaseStepSize) < machEps {
		return nil, nil
	}

	// The distance between two of the thinnest grid lines is rounded up
	// to the next-bigger power of the base.
	smallestVisibleUnit, err := NextPower(in.BaseStepSize, logBase)
	if err != nil {
		return nil, err
	}

	stepSizes := [3]float64{
		smallestVisibleUnit,
		smallestVisibleUnit * logBase,
		smallestVisibleUnit * logBase * logBase,
	}

	return generateMarks(stepSizes, in.Bounds)
}
