// Package gonumtick bridges grid marks to gonum.org/v1/plot: it derives a
// base step from the requested axis range, generates marks with an
// [eguiplot.AxisTransform], and converts them into plot ticks. Marks from
// the coarser density tiers become labelled major ticks; the finest tier
// becomes unlabelled minor ticks.
package gonumtick

import (
	"github.com/dustin/go-humanize"
	"gonum.org/v1/plot"

	eguiplot "github.com/mkalte666/egui-plot"
)

// DefaultCount is the target number of finest-tier marks across an axis
// when [Ticker.Count] is zero.
const DefaultCount = 10

// Ticker generates axis ticks from the grid-mark generator. The zero
// value is ready to use and covers an axis with roughly DefaultCount
// finest-tier marks.
type Ticker struct {
	// Count is the target number of finest-tier marks across the axis.
	// The actual number is usually lower, since the derived base step is
	// rounded up to a power of ten. Zero means DefaultCount.
	Count int

	// Transform generates the marks. Nil means a non-inverted
	// LinearAxisTransform.
	Transform eguiplot.AxisTransform
}

var _ plot.Ticker = Ticker{}

// Ticks implements plot.Ticker. An empty or inverted range yields no
// ticks, as does a generation error.
func (tk Ticker) Ticks(min, max float64) []plot.Tick {
	if !(min < max) {
		return nil
	}

	count := tk.Count
	if count <= 0 {
		count = DefaultCount
	}
	transform := tk.Transform
	if transform == nil {
		transform = eguiplot.Normal()
	}

	marks, err := transform.GridMarks(eguiplot.GridInput{
		BaseStepSize: (max - min) / float64(count),
		Bounds:       eguiplot.Bounds{Min: min, Max: max},
	})
	if err != nil || len(marks) == 0 {
		return nil
	}

	finest := marks[0].StepSize
	for _, m := range marks[1:] {
		if m.StepSize < finest {
			finest = m.StepSize
		}
	}
	// When only one tier survived, every mark is as significant as any
	// other; label them all rather than none.
	labelAll := true
	for _, m := range marks {
		if m.StepSize > finest {
			labelAll = false
			break
		}
	}

	ticks := make([]plot.Tick, len(marks))
	for i, m := range marks {
		ticks[i] = plot.Tick{Value: m.Value}
		if labelAll || m.StepSize > finest {
			ticks[i].Label = humanize.SI(m.Value, "")
		}
	}
	return ticks
}
