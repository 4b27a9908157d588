package plot

import (
	"strconv"

	"plotnav/internal/axis"
	"plotnav/internal/geom"
	"plotnav/internal/scene"
	"plotnav/internal/shape"
)

// Mark is the drawn form of one data row.
type Mark struct {
	Row    int
	Values []float64
	Shape  shape.Geometry
}

func (m *Mark) Bounds() geom.Rect                  { return m.Shape.Bounds().Translate(m.Shape.Anchor()) }
func (m *Mark) Children() []scene.Element          { return nil }
func (m *Mark) Contains(p geom.Point) bool         { return m.Bounds().Contains(p) }
func (m *Mark) Draw(c geom.Canvas, tx geom.Matrix) { m.Shape.Draw(c, tx) }

// LineElement connects the centers of consecutive marks.
type LineElement struct {
	Line shape.Line
	// Tolerance is how far from a segment a point still hits the line.
	Tolerance float64
}

func (l *LineElement) Bounds() geom.Rect                  { return l.Line.Bounds().Translate(l.Line.Anchor()) }
func (l *LineElement) Children() []scene.Element          { return nil }
func (l *LineElement) Draw(c geom.Canvas, tx geom.Matrix) { l.Line.Draw(c, tx) }

func (l *LineElement) Contains(p geom.Point) bool {
	local := p.Sub(l.Line.Anchor())
	for _, s := range l.Line.Segments {
		if s.Dist(local) <= l.Tolerance {
			return true
		}
	}
	return false
}

// Orientation of an axis element or a legend.
type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

// AxisElement draws an axis line along one edge of the plot area with its
// ticks and labels.
type AxisElement struct {
	Orientation Orientation
	Mapper      *axis.Mapper
	Ticks       axis.TickConfig
	TickLength  float64

	bounds geom.Rect
	// line is the axis line; ticks extend away from the plot area.
	line geom.Segment
}

func (a *AxisElement) Bounds() geom.Rect          { return a.bounds }
func (a *AxisElement) Children() []scene.Element  { return nil }
func (a *AxisElement) Contains(p geom.Point) bool { return a.bounds.Contains(p) }

// TickMarks returns the ticks of the axis, each positioned on screen.
func (a *AxisElement) TickMarks() ([]axis.Tick, error) {
	seq, err := a.Mapper.Ticks(a.Ticks)
	if err != nil {
		return nil, err
	}
	var out []axis.Tick
	for t := range seq {
		out = append(out, t)
	}
	return out, nil
}

func (a *AxisElement) Draw(c geom.Canvas, tx geom.Matrix) {
	geom.StrokeLine(c, tx, a.line, geom.RoleAxis)
	ticks, err := a.TickMarks()
	if err != nil {
		return
	}
	for _, t := range ticks {
		n := a.TickLength
		if !t.Major {
			n /= 2
		}
		var s geom.Segment
		var at geom.Point
		align := geom.AlignBelow
		if a.Orientation == Horizontal {
			s = geom.Seg(t.Pos, a.line.A.Y, t.Pos, a.line.A.Y+n)
			at = geom.Pt(t.Pos, a.line.A.Y+a.TickLength)
		} else {
			s = geom.Seg(a.line.A.X-n, t.Pos, a.line.A.X, t.Pos)
			at = geom.Pt(a.line.A.X-a.TickLength, t.Pos)
			align = geom.AlignLeft
		}
		geom.StrokeLine(c, tx, s, geom.RoleTick)
		if t.Major {
			geom.Label(c, tx, at, FormatTick(t.Value), align)
		}
	}
}

// FormatTick renders a tick value compactly.
func FormatTick(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}
