package axis

import (
	"math"

	"plotnav/internal/errs"
)

// Mapper maps values of an Axis linearly onto a screen interval. The
// interval may run backwards (high < low), which is how y axes that grow
// upwards are expressed in a top-left screen frame.
type Mapper struct {
	axis      *Axis
	low, high float64
}

// NewMapper returns a mapper from a onto [low, high]. a may be nil and
// attached later; every mapping call fails until it is.
func NewMapper(a *Axis, low, high float64) (*Mapper, error) {
	m := &Mapper{axis: a}
	if err := m.SetScreenRange(low, high); err != nil {
		return nil, err
	}
	return m, nil
}

// Attach sets the axis m reads from.
func (m *Mapper) Attach(a *Axis) { m.axis = a }

// Axis returns the attached axis, or nil.
func (m *Mapper) Axis() *Axis { return m.axis }

// ScreenRange returns the screen interval as given at construction.
func (m *Mapper) ScreenRange() (low, high float64) { return m.low, m.high }

// SetScreenRange replaces the screen interval, e.g. after a relayout.
func (m *Mapper) SetScreenRange(low, high float64) error {
	if math.IsNaN(low) || math.IsNaN(high) || math.IsInf(low, 0) || math.IsInf(high, 0) {
		return errs.Invalid("screen range [%v, %v] is not finite", low, high)
	}
	if low == high {
		return errs.Invalid("screen range [%v, %v] is empty", low, high)
	}
	m.low, m.high = low, high
	return nil
}

// ToScreen maps value to a screen coordinate. With clamp the value is first
// restricted to the axis range; with round the mapped coordinate is rounded
// to the nearest pixel. A degenerate axis maps everything to the low end of
// the screen range.
func (m *Mapper) ToScreen(value float64, clamp, round bool) (float64, error) {
	if m.axis == nil {
		return 0, errs.Missing("mapper has no axis")
	}
	min, max := m.axis.Range()
	if clamp {
		value = math.Max(min, math.Min(max, value))
	}
	var t float64
	if max != min {
		t = (value - min) / (max - min)
	}
	s := m.low + t*(m.high-m.low)
	if round {
		s = math.Round(s)
	}
	return s, nil
}

// ToData is the inverse of the unrounded ToScreen. Inverting a rounded
// coordinate does not recover the original value. A degenerate axis
// returns its single value.
func (m *Mapper) ToData(screen float64) (float64, error) {
	if m.axis == nil {
		return 0, errs.Missing("mapper has no axis")
	}
	min, max := m.axis.Range()
	t := (screen - m.low) / (m.high - m.low)
	return min + t*(max-min), nil
}

// pos maps a value known to be valid; callers have checked m.axis.
func (m *Mapper) pos(min, max, v float64) float64 {
	if max == min {
		return m.low
	}
	return m.low + (v-min)/(max-min)*(m.high-m.low)
}
