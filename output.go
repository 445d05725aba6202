package plot

// An OutputScale maps a normalized plot coordinate onto a device interval
// [min, max], completing the data -> plot -> device pipeline. min may be
// greater than max, which is typical for a screen Y axis growing
// downwards.
//
// Coordinates outside [0, 1] come from data outside the visible bounds;
// what happens to them is selected with [OutputScale.Crop],
// [OutputScale.Clamp], and [OutputScale.Unclamp].
type OutputScale struct {
	min, max float64
	mode     int
}

const (
	modeCrop = iota
	modeUnclamp
	modeClamp
)

// NewOutputScale returns an output scale onto [min, max] that crops
// out-of-range coordinates.
func NewOutputScale(min, max float64) OutputScale {
	return OutputScale{min: min, max: max, mode: modeCrop}
}

// Crop makes s report coordinates outside [0, 1] as not representable.
func (s *OutputScale) Crop() {
	s.mode = modeCrop
}

// Unclamp makes s extrapolate coordinates outside [0, 1] beyond the
// device interval.
func (s *OutputScale) Unclamp() {
	s.mode = modeUnclamp
}

// Clamp makes s saturate coordinates outside [0, 1] to the nearest edge
// of the device interval.
func (s *OutputScale) Clamp() {
	s.mode = modeClamp
}

// Of maps the normalized plot coordinate x onto the device interval. The
// boolean is false only when x was cropped.
func (s OutputScale) Of(x float64) (float64, bool) {
	switch s.mode {
	case modeCrop:
		if x < 0 || x > 1 {
			return 0, false
		}
	case modeClamp:
		if x < 0 {
			x = 0
		} else if x > 1 {
			x = 1
		}
	}
	return x*(s.max-s.min) + s.min, true
}
