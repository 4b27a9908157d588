package axis

import (
	"iter"
	"math"

	"github.com/aclements/go-moremath/scale"

	"plotnav/internal/errs"
)

// AutoSpacing selects the tick step from the magnitude of the axis range.
const AutoSpacing = 0

// Bounds on the number of major ticks chosen in automatic mode.
const (
	MinAutoTicks = 4
	MaxAutoTicks = 12
)

// MaxTicks bounds the length of any tick sequence, minor ticks included.
// A configured spacing that would exceed it is replaced by the automatic
// step.
const MaxTicks = 1000

// Tick is one tick mark of a mapped axis.
type Tick struct {
	Value float64 // data space
	Pos   float64 // screen space
	Major bool
}

// TickConfig controls tick generation.
type TickConfig struct {
	// Spacing is the data-space distance between major ticks. Zero,
	// negative and NaN values select automatic spacing.
	Spacing float64
	// MinorCount is the number of minor ticks between two majors.
	MinorCount int
}

// Ticks returns the tick marks of m. The sequence is lazy and restartable:
// each iteration reads the current axis range, so ticks follow any
// auto-scaling applied in between. Values are strictly increasing and
// ticks that fall on the range bounds are included.
func (m *Mapper) Ticks(cfg TickConfig) (iter.Seq[Tick], error) {
	if m.axis == nil {
		return nil, errs.Missing("mapper has no axis")
	}
	if cfg.MinorCount < 0 {
		return nil, errs.Invalid("minor tick count %d", cfg.MinorCount)
	}
	return func(yield func(Tick) bool) {
		a := m.axis
		if a == nil {
			return
		}
		min, max := a.Range()
		if min == max {
			yield(Tick{Value: min, Pos: m.low, Major: true})
			return
		}
		step := cfg.Spacing
		if !(step > 0) || math.IsInf(step, 0) {
			step = autoStep(min, max)
		}
		per := cfg.MinorCount + 1
		minor := step / float64(per)
		if (max-min)/minor >= MaxTicks {
			per = 1
			minor = autoStep(min, max)
		}
		first, last := tickIndexes(min, max, minor)
		for i := first; i <= last; i++ {
			v := float64(i) * minor
			if v == 0 {
				v = 0 // drop negative zero
			}
			major := i%int64(per) == 0
			if !yield(Tick{Value: v, Pos: m.pos(min, max, v), Major: major}) {
				return
			}
		}
	}, nil
}

// tickIndexes returns the first and last multiples of step inside
// [min, max], with a little slack so rounding error does not drop the
// bounds themselves.
func tickIndexes(min, max, step float64) (first, last int64) {
	slack := (max - min) * 1e-10
	first = int64(math.Ceil((min - slack) / step))
	last = int64(math.Floor((max + slack) / step))
	return first, last
}

// autoStep picks the smallest 1-2-5 step giving at most MaxAutoTicks
// ticks over [min, max]. Adjacent steps differ by at most 2.5x, so the
// result has at least MinAutoTicks ticks.
func autoStep(min, max float64) float64 {
	t := niceTicker{min: min, max: max}
	guess := 3 * (int(math.Floor(math.Log10(max-min))) - 1)
	o := scale.TickOptions{
		Max:      MaxAutoTicks,
		MinLevel: guess - 30,
		MaxLevel: guess + 30,
	}
	level, ok := o.FindLevel(t, guess)
	if !ok {
		return (max - min) / float64(MaxAutoTicks-1)
	}
	return t.step(level)
}

// niceTicker is a scale.Ticker over steps 1, 2, 5, 10, 20, 50, ...
// Level 0 is a step of 1; every three levels multiply the step by ten.
type niceTicker struct {
	min, max float64
}

var niceMantissas = [3]float64{1, 2, 5}

func (t niceTicker) step(level int) float64 {
	e := level / 3
	k := level % 3
	if k < 0 {
		k += 3
		e--
	}
	return niceMantissas[k] * math.Pow(10, float64(e))
}

func (t niceTicker) CountTicks(level int) int {
	first, last := tickIndexes(t.min, t.max, t.step(level))
	if last < first {
		return 0
	}
	return int(last - first + 1)
}

func (t niceTicker) TicksAtLevel(level int) interface{} {
	step := t.step(level)
	first, last := tickIndexes(t.min, t.max, step)
	var vals []float64
	for i := first; i <= last; i++ {
		vals = append(vals, float64(i)*step)
	}
	return vals
}
