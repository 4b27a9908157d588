// Package axis maps data values onto one screen dimension and back, and
// generates tick marks for that mapping.
package axis

import (
	"math"

	"plotnav/internal/errs"
)

// Axis holds the data-space range of one dimension. Min equal to Max is a
// legal, degenerate axis. An Axis is shared by reference between mappers
// and whatever auto-scales it; mappers read it on every call.
type Axis struct {
	min, max float64
}

// New returns an axis over [min, max].
func New(min, max float64) (*Axis, error) {
	a := &Axis{}
	if err := a.SetRange(min, max); err != nil {
		return nil, err
	}
	return a, nil
}

// SetRange replaces the range of a.
func (a *Axis) SetRange(min, max float64) error {
	if math.IsNaN(min) || math.IsNaN(max) || math.IsInf(min, 0) || math.IsInf(max, 0) {
		return errs.Invalid("axis range [%v, %v] is not finite", min, max)
	}
	if min > max {
		return errs.Invalid("axis range [%v, %v] has min > max", min, max)
	}
	a.min, a.max = min, max
	return nil
}

func (a *Axis) Min() float64 { return a.min }
func (a *Axis) Max() float64 { return a.max }

// Range returns both bounds.
func (a *Axis) Range() (min, max float64) { return a.min, a.max }

// Span returns Max - Min.
func (a *Axis) Span() float64 { return a.max - a.min }

// Contains reports whether v lies within the closed range.
func (a *Axis) Contains(v float64) bool { return v >= a.min && v <= a.max }

// Clamp restricts v to the closed range.
func (a *Axis) Clamp(v float64) float64 {
	return math.Max(a.min, math.Min(a.max, v))
}
