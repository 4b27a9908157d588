package geom

import "math"

// Point is a 2D coordinate or vector.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

func (p Point) Add(q Point) Point   { return Point{X: p.X + q.X, Y: p.Y + q.Y} }
func (p Point) Sub(q Point) Point   { return Point{X: p.X - q.X, Y: p.Y - q.Y} }
func (p Point) Mul(s float64) Point { return Point{X: p.X * s, Y: p.Y * s} }
func (p Point) Div(s float64) Point { return Point{X: p.X / s, Y: p.Y / s} }
func (p Point) Neg() Point          { return Point{X: -p.X, Y: -p.Y} }
func (p Point) Near(q Point, eps float64) bool {
	return math.Abs(p.X-q.X) <= eps && math.Abs(p.Y-q.Y) <= eps
}

// Rect is an axis-aligned rectangle with its origin at the top-left corner.
// W and H may be negative for geometry built from inverted input; such a
// rectangle contains no points.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) MinX() float64 { return r.X }
func (r Rect) MinY() float64 { return r.Y }
func (r Rect) MaxX() float64 { return r.X + r.W }
func (r Rect) MaxY() float64 { return r.Y + r.H }

// Empty reports whether r has no area.
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// Contains reports whether p lies inside r. The left and top edges are
// inclusive, the right and bottom edges exclusive.
func (r Rect) Contains(p Point) bool {
	if r.Empty() {
		return false
	}
	return p.X >= r.X && p.Y >= r.Y && p.X < r.X+r.W && p.Y < r.Y+r.H
}

// Translate returns r moved by d.
func (r Rect) Translate(d Point) Rect {
	return Rect{X: r.X + d.X, Y: r.Y + d.Y, W: r.W, H: r.H}
}

// Inset shrinks r by d on every side.
func (r Rect) Inset(d float64) Rect {
	return Rect{X: r.X + d, Y: r.Y + d, W: r.W - 2*d, H: r.H - 2*d}
}

// Union returns the smallest rectangle covering r and o. Empty inputs are
// ignored.
func (r Rect) Union(o Rect) Rect {
	if r.Empty() {
		return o
	}
	if o.Empty() {
		return r
	}
	minX := math.Min(r.X, o.X)
	minY := math.Min(r.Y, o.Y)
	maxX := math.Max(r.MaxX(), o.MaxX())
	maxY := math.Max(r.MaxY(), o.MaxY())
	return Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}

// Segment is a straight line from A to B.
type Segment struct {
	A, B Point
}

// Seg is shorthand for a segment from (x0,y0) to (x1,y1).
func Seg(x0, y0, x1, y1 float64) Segment {
	return Segment{A: Point{X: x0, Y: y0}, B: Point{X: x1, Y: y1}}
}

// Translate returns s moved by d.
func (s Segment) Translate(d Point) Segment {
	return Segment{A: s.A.Add(d), B: s.B.Add(d)}
}

// Dist returns the distance from p to the closest point of s.
func (s Segment) Dist(p Point) float64 {
	d := s.B.Sub(s.A)
	t := 0.0
	if l2 := d.X*d.X + d.Y*d.Y; l2 > 0 {
		t = ((p.X-s.A.X)*d.X + (p.Y-s.A.Y)*d.Y) / l2
		t = math.Max(0, math.Min(1, t))
	}
	q := s.A.Add(d.Mul(t))
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Len returns the length of s.
func (s Segment) Len() float64 { return math.Hypot(s.B.X-s.A.X, s.B.Y-s.A.Y) }

// BBox is a bounding box grown point by point.
type BBox struct {
	MinX float64
	MinY float64
	MaxX float64
	MaxY float64

	set bool
}

// Extend grows b to include p. The first point initializes the box.
func (b *BBox) Extend(p Point) {
	if !b.set {
		*b = BBox{MinX: p.X, MinY: p.Y, MaxX: p.X, MaxY: p.Y, set: true}
		return
	}
	if p.X < b.MinX {
		b.MinX = p.X
	}
	if p.Y < b.MinY {
		b.MinY = p.Y
	}
	if p.X > b.MaxX {
		b.MaxX = p.X
	}
	if p.Y > b.MaxY {
		b.MaxY = p.Y
	}
}

// Valid reports whether at least one point was added.
func (b BBox) Valid() bool { return b.set }

// Rect converts b into a Rect.
func (b BBox) Rect() Rect {
	return Rect{X: b.MinX, Y: b.MinY, W: b.MaxX - b.MinX, H: b.MaxY - b.MinY}
}
