package plot

import (
	"fmt"
	"math"
	"slices"
)

// MaxGridMarks caps the number of marks a single grid request may produce.
// The mark count grows with (Max-Min)/step, so a huge visible range paired
// with a tiny step size would otherwise force unbounded allocation.
const MaxGridMarks = 1 << 20

// Bounds is the extent [Min, Max] of a data axis.
type Bounds struct {
	Min float64
	Max float64
}

// Validate reports whether b can parameterize the coordinate transform:
// [ErrInvertedInterval] if Min > Max, [ErrDegenerateBounds] if Min == Max.
// The scalar transforms do not validate per call; run this once at the
// boundary instead.
func (b Bounds) Validate() error {
	switch {
	case b.Min > b.Max:
		return fmt.Errorf("%w: min %g > max %g", ErrInvertedInterval, b.Min, b.Max)
	case b.Min == b.Max:
		return fmt.Errorf("%w: [%g, %g]", ErrDegenerateBounds, b.Min, b.Max)
	}
	return nil
}

// GridInput describes the visible range grid marks are requested for.
type GridInput struct {
	// BaseStepSize is the finest mark spacing worth considering,
	// typically derived from the smallest distance of interest on
	// screen. Only its magnitude matters; it is commonly negative for
	// an inverted Y axis.
	BaseStepSize float64

	// Bounds is the visible extent of the axis in data coordinates.
	Bounds Bounds
}

// GridMark is a single tick position on an axis.
type GridMark struct {
	// Value is the position of the mark in data coordinates.
	Value float64

	// StepSize is the spacing of the density tier that produced the
	// mark. A larger step size means a more significant mark.
	StepSize float64
}

// NextPower returns the smallest integer power of base whose magnitude is
// at least |value|:
//
//	NextPower(0.01, 10) == 0.01
//	NextPower(0.02, 10) == 0.1
//	NextPower(0.2, 10) == 1.0
//
// A step size must be positive regardless of axis direction, so only the
// magnitude of value matters. Zero has no containing power and returns
// [ErrInvalidMagnitude].
func NextPower(value, base float64) (float64, error) {
	if value == 0 {
		return 0, fmt.Errorf("%w: zero has no next power of %g", ErrInvalidMagnitude, base)
	}
	return math.Pow(base, math.Ceil(logBaseOf(math.Abs(value), base))), nil
}

// logBaseOf is the base-b logarithm of x. Log10 and Log2 are exact at
// powers of their base where the generic quotient is not: ln(0.01)/ln(10)
// is -1.9999999999999996, which would round 0.01 up to 0.1.
func logBaseOf(x, b float64) float64 {
	switch b {
	case 10:
		return math.Log10(x)
	case 2:
		return math.Log2(x)
	}
	return math.Log(x) / math.Log(b)
}

// generateMarks emits every multiple of each step size inside bounds and
// merges the tiers into one ascending sequence with duplicates removed.
func generateMarks(stepSizes [3]float64, bounds Bounds) ([]GridMark, error) {
	var steps []GridMark
	var err error
	for _, stepSize := range stepSizes {
		steps, err = fillMarksBetween(steps, stepSize, bounds)
		if err != nil {
			return nil, err
		}
	}

	// The tiers are multiples of one another, so their outputs overlap
	// at shared positions, e.g.:
	//	step   10  =>  [-10, 0, 10, 20, ..., 110, 120]
	//	step  100  =>  [     0,            100        ]
	//	step 1000  =>  [     0                        ]
	slices.SortFunc(steps, func(a, b GridMark) int {
		return cmpFloat64(a.Value, b.Value)
	})

	minStep := min(stepSizes[0], stepSizes[1], stepSizes[2])
	eps := 0.1 * minStep // avoid putting two marks too closely together

	deduplicated := make([]GridMark, 0, len(steps))
	for _, step := range steps {
		if n := len(deduplicated); n > 0 {
			last := &deduplicated[n-1]
			if math.Abs(last.Value-step.Value) < eps {
				// Keep the one with the largest step size.
				if last.StepSize < step.StepSize {
					*last = step
				}
				continue
			}
		}
		deduplicated = append(deduplicated, step)
	}

	return deduplicated, nil
}

// fillMarksBetween appends one mark for every multiple of stepSize inside
// the half-open interval [bounds.Min, bounds.Max). When bounds.Max lands
// exactly on a multiple it is excluded, so a shared edge never yields
// duplicate marks across adjacent tiers. Bounds so far from zero that
// multiple indices leave the int64-exact range yield no marks.
func fillMarksBetween(out []GridMark, stepSize float64, bounds Bounds) ([]GridMark, error) {
	if bounds.Min > bounds.Max {
		return nil, fmt.Errorf("%w: min %g > max %g", ErrInvertedInterval, bounds.Min, bounds.Max)
	}

	firstf := math.Ceil(bounds.Min / stepSize)
	lastf := math.Ceil(bounds.Max / stepSize)

	// The count check runs on floats so that extreme ratios (or NaN
	// bounds) fail before any int conversion can overflow.
	if n := lastf - firstf; !(n <= MaxGridMarks-float64(len(out))) {
		return nil, fmt.Errorf("%w: step %g over [%g, %g] exceeds %d marks",
			ErrMarkLimit, stepSize, bounds.Min, bounds.Max, MaxGridMarks)
	}
	if firstf < math.MinInt64 || lastf >= math.MaxInt64 {
		// Beyond the integer-exact float range adjacent multiples of
		// stepSize are no longer representable; there is nothing to emit.
		return out, nil
	}

	first := int64(firstf)
	last := int64(lastf)
	for i := first; i < last; i++ {
		out = append(out, GridMark{Value: float64(i) * stepSize, StepSize: stepSize})
	}
	return out, nil
}

// cmpFloat64 is a total order over float64: the usual order on the reals,
// with NaN after every real value and NaN equal to NaN.
func cmpFloat64(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	case a == b:
		return 0
	}
	switch {
	case math.IsNaN(a) && math.IsNaN(b):
		return 0
	case math.IsNaN(a):
		return 1
	default:
		return -1
	}
}
