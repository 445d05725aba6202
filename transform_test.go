package plot

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestDataToPlot(t *testing.T) {
	tr := NewLinearAxisTransform(false)
	b := Bounds{Min: 0, Max: 10}

	if got := tr.DataToPlot(b, 5); got != 0.5 {
		t.Errorf("DataToPlot(%v, 5) = %g, want 0.5", b, got)
	}
	if got := tr.PlotToData(b, 0.5); got != 5 {
		t.Errorf("PlotToData(%v, 0.5) = %g, want 5", b, got)
	}

	// The endpoints map to 0 and 1, and the mapping does not clamp.
	for _, tc := range []struct {
		x, want float64
	}{
		{0, 0},
		{10, 1},
		{20, 2},
		{-5, -0.5},
	} {
		if got := tr.DataToPlot(b, tc.x); got != tc.want {
			t.Errorf("DataToPlot(%v, %g) = %g, want %g", b, tc.x, got, tc.want)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	bounds := []Bounds{
		{0, 10},
		{-5, 5},
		{-123.25, -7.5},
		{1e-6, 2e-6},
		{-1e9, 1e9},
	}
	xs := []float64{-27.5, -1, 0, 0.125, 1, 3.75, 1e6}

	for _, invert := range []bool{false, true} {
		tr := NewLinearAxisTransform(invert)
		for _, b := range bounds {
			for _, x := range xs {
				got := tr.PlotToData(b, tr.DataToPlot(b, x))
				if d := math.Abs(got - x); d > 1e-9*math.Max(1, math.Abs(x)) {
					t.Errorf("invert=%v: PlotToData(%v, DataToPlot(%v, %g)) = %g", invert, b, b, x, got)
				}
			}
		}
	}
}

func TestInverted(t *testing.T) {
	normal := Normal()
	inverted := Inverted()
	b := Bounds{Min: -3, Max: 17}

	for _, x := range []float64{-3, -1, 0, 2.5, 17, 100} {
		want := -normal.DataToPlot(b, x)
		if got := inverted.DataToPlot(b, x); got != want {
			t.Errorf("inverted DataToPlot(%v, %g) = %g, want %g", b, x, got, want)
		}
	}
}

func TestConstructors(t *testing.T) {
	if Normal() != NewLinearAxisTransform(false) {
		t.Error("Normal() differs from NewLinearAxisTransform(false)")
	}
	if Inverted() != NewLinearAxisTransform(true) {
		t.Error("Inverted() differs from NewLinearAxisTransform(true)")
	}
}

func TestGridMarks(t *testing.T) {
	tr := NewLinearAxisTransform(false)
	got, err := tr.GridMarks(GridInput{
		BaseStepSize: 1,
		Bounds:       Bounds{Min: 0, Max: 25},
	})
	if err != nil {
		t.Fatal(err)
	}

	// Tiers are [1, 10, 100]. Shared positions keep the coarsest step
	// size, and 25 is absent: an exact multiple at the upper bound is
	// excluded.
	want := []GridMark{{Value: 0, StepSize: 100}}
	for i := 1; i <= 24; i++ {
		switch i {
		case 10, 20:
			want = append(want, GridMark{Value: float64(i), StepSize: 10})
		default:
			want = append(want, GridMark{Value: float64(i), StepSize: 1})
		}
	}
	diff(t, want, got)
}

func TestGridMarksFractional(t *testing.T) {
	tr := NewLinearAxisTransform(false)
	got, err := tr.GridMarks(GridInput{
		BaseStepSize: 0.02,
		Bounds:       Bounds{Min: 0.1, Max: 0.45},
	})
	if err != nil {
		t.Fatal(err)
	}

	// The base step rounds up to 0.1; the coarser tiers have no
	// multiples inside the bounds.
	want := []GridMark{
		{Value: 0.1, StepSize: 0.1},
		{Value: 0.2, StepSize: 0.1},
		{Value: 0.3, StepSize: 0.1},
		{Value: 0.4, StepSize: 0.1},
	}
	diff(t, want, got, cmpopts.EquateApprox(0, 1e-12))
}

func TestGridMarksNegativeStep(t *testing.T) {
	// A negative base step is typical for an inverted Y axis; only its
	// magnitude matters.
	tr := NewLinearAxisTransform(true)
	got, err := tr.GridMarks(GridInput{
		BaseStepSize: -1,
		Bounds:       Bounds{Min: 0, Max: 5},
	})
	if err != nil {
		t.Fatal(err)
	}

	want := []GridMark{
		{Value: 0, StepSize: 100},
		{Value: 1, StepSize: 1},
		{Value: 2, StepSize: 1},
		{Value: 3, StepSize: 1},
		{Value: 4, StepSize: 1},
	}
	diff(t, want, got)
}

func TestGridMarksDegenerateStep(t *testing.T) {
	tr := NewLinearAxisTransform(false)
	for _, base := range []float64{0, 1e-17, -1e-17, machEps / 2} {
		got, err := tr.GridMarks(GridInput{
			BaseStepSize: base,
			Bounds:       Bounds{Min: 0, Max: 100},
		})
		if err != nil {
			t.Fatalf("base %g: %v", base, err)
		}
		if len(got) != 0 {
			t.Errorf("base %g: got %d marks, want none", base, len(got))
		}
	}
}

func TestGridMarksEqualBounds(t *testing.T) {
	tr := NewLinearAxisTransform(false)
	got, err := tr.GridMarks(GridInput{
		BaseStepSize: 1,
		Bounds:       Bounds{Min: 3, Max: 3},
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("got %d marks over an empty range, want none", len(got))
	}
}

func TestGridMarksInvertedBounds(t *testing.T) {
	tr := NewLinearAxisTransform(false)
	_, err := tr.GridMarks(GridInput{
		BaseStepSize: 1,
		Bounds:       Bounds{Min: 5, Max: 0},
	})
	if !errors.Is(err, ErrInvertedInterval) {
		t.Errorf("got %v, want ErrInvertedInterval", err)
	}
}

func TestGridMarksLimit(t *testing.T) {
	tr := NewLinearAxisTransform(false)
	_, err := tr.GridMarks(GridInput{
		BaseStepSize: 1,
		Bounds:       Bounds{Min: 0, Max: 2e6},
	})
	if !errors.Is(err, ErrMarkLimit) {
		t.Errorf("got %v, want ErrMarkLimit", err)
	}
}

func TestBoundsValidate(t *testing.T) {
	for _, tc := range []struct {
		b    Bounds
		want error
	}{
		{Bounds{0, 10}, nil},
		{Bounds{-1, -0.5}, nil},
		{Bounds{5, 5}, ErrDegenerateBounds},
		{Bounds{7, 2}, ErrInvertedInterval},
	} {
		err := tc.b.Validate()
		if tc.want == nil && err != nil {
			t.Errorf("%v.Validate() = %v, want nil", tc.b, err)
		}
		if tc.want != nil && !errors.Is(err, tc.want) {
			t.Errorf("%v.Validate() = %v, want %v", tc.b, err, tc.want)
		}
	}
}
