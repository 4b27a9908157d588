package shape

import (
	"math"

	"plotnav/internal/axis"
	"plotnav/internal/geom"
)

// Rect is a single rectangle relative to Origin.
type Rect struct {
	Origin geom.Point
	Shape  geom.Rect
	Role   geom.Role
}

func (r Rect) Anchor() geom.Point { return r.Origin }
func (r Rect) Bounds() geom.Rect {
	return bounds(geom.Pt(r.Shape.X, r.Shape.Y), geom.Pt(r.Shape.MaxX(), r.Shape.MaxY()))
}

func (r Rect) Draw(c geom.Canvas, tx geom.Matrix) {
	geom.StrokeRect(c, tx.Multiply(geom.Translate(r.Origin.X, r.Origin.Y)), r.Shape, r.Role)
}

// Point draws a square marker of Size screen units at (Position, Center).
type Point struct {
	Size    float64
	Columns Columns
}

func (s Point) Shape(x, y *axis.Mapper, row []float64) (Geometry, bool, error) {
	if err := mappers(x, y); err != nil {
		return nil, false, err
	}
	r := s.Columns.StatRow(row)
	if !finite(r.Position) || !finite(r.BarCenter) {
		return nil, false, nil
	}
	px, err := x.ToScreen(r.Position, false, false)
	if err != nil {
		return nil, false, err
	}
	py, err := y.ToScreen(r.BarCenter, false, false)
	if err != nil {
		return nil, false, err
	}
	h := s.Size / 2
	return Rect{
		Origin: geom.Pt(px, py),
		Shape:  geom.Rect{X: -h, Y: -h, W: s.Size, H: s.Size},
		Role:   geom.RoleMarker,
	}, true, nil
}

// Symbol centers one marker in r, shrunk to fit.
func (s Point) Symbol(r geom.Rect) Geometry {
	size := math.Min(s.Size, math.Min(r.W, r.H))
	return Rect{
		Origin: geom.Pt(r.X+r.W/2, r.Y+r.H/2),
		Shape:  geom.Rect{X: -size / 2, Y: -size / 2, W: size, H: size},
		Role:   geom.RoleMarker,
	}
}

// Bar draws a bar from the y axis baseline to Center, Width x data units
// wide. The baseline is zero clamped into the y axis range.
type Bar struct {
	Width   float64
	Columns Columns
}

func (s Bar) Shape(x, y *axis.Mapper, row []float64) (Geometry, bool, error) {
	if err := mappers(x, y); err != nil {
		return nil, false, err
	}
	r := s.Columns.StatRow(row)
	if !finite(r.Position) || !finite(r.BarCenter) {
		return nil, false, nil
	}
	px, err := x.ToScreen(r.Position, false, false)
	if err != nil {
		return nil, false, err
	}
	x0, err := x.ToScreen(r.Position-s.Width/2, false, false)
	if err != nil {
		return nil, false, err
	}
	x1, err := x.ToScreen(r.Position+s.Width/2, false, false)
	if err != nil {
		return nil, false, err
	}
	py, err := y.ToScreen(r.BarCenter, false, false)
	if err != nil {
		return nil, false, err
	}
	base, err := y.ToScreen(0, true, false)
	if err != nil {
		return nil, false, err
	}
	left := math.Min(x0, x1)
	top := math.Min(py, base)
	return Rect{
		Origin: geom.Pt(px, py),
		Shape: geom.Rect{
			X: left - px,
			Y: top - py,
			W: math.Abs(x1 - x0),
			H: math.Abs(base - py),
		},
		Role: geom.RoleBar,
	}, true, nil
}

// Symbol is a full-height bar half as wide as r.
func (s Bar) Symbol(r geom.Rect) Geometry {
	return Rect{
		Origin: geom.Pt(r.X+r.W/2, r.Y+r.H/2),
		Shape:  geom.Rect{X: -r.W / 4, Y: -r.H / 2, W: r.W / 2, H: r.H},
		Role:   geom.RoleBar,
	}
}
