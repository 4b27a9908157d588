package geom

// Role tells a Canvas what a primitive represents so it can pick a style.
type Role int

const (
	RoleFrame Role = iota
	RoleAxis
	RoleTick
	RoleBox
	RoleWhisker
	RoleBar
	RoleCenter
	RoleMarker
	RoleLine
	RoleLegend
)

func (r Role) String() string {
	switch r {
	case RoleFrame:
		return "frame"
	case RoleAxis:
		return "axis"
	case RoleTick:
		return "tick"
	case RoleBox:
		return "box"
	case RoleWhisker:
		return "whisker"
	case RoleBar:
		return "bar"
	case RoleCenter:
		return "center"
	case RoleMarker:
		return "marker"
	case RoleLine:
		return "line"
	case RoleLegend:
		return "legend"
	}
	return "unknown"
}

// Canvas receives primitives in device coordinates.
type Canvas interface {
	Rect(r Rect, role Role)
	Line(s Segment, role Role)
}

// StrokeRect draws the transformed outline of r onto c. Only axis-aligned
// transforms are supported, which is all the navigator produces.
func StrokeRect(c Canvas, tx Matrix, r Rect, role Role) {
	p0 := tx.TransformPoint(Point{X: r.X, Y: r.Y})
	p1 := tx.TransformPoint(Point{X: r.MaxX(), Y: r.MaxY()})
	c.Rect(Rect{X: p0.X, Y: p0.Y, W: p1.X - p0.X, H: p1.Y - p0.Y}, role)
}

// StrokeLine draws the transformed segment s onto c.
func StrokeLine(c Canvas, tx Matrix, s Segment, role Role) {
	c.Line(Segment{A: tx.TransformPoint(s.A), B: tx.TransformPoint(s.B)}, role)
}

// Align says where text goes relative to its anchor point.
type Align int

const (
	// AlignBelow centers the text horizontally under the point.
	AlignBelow Align = iota
	// AlignLeft ends the text at the point, centered vertically.
	AlignLeft
	// AlignRight starts the text at the point, centered vertically.
	AlignRight
)

// Labeler is implemented by canvases that can place text. p is in device
// coordinates.
type Labeler interface {
	Label(p Point, text string, a Align)
}

// Label places text at the transformed p when c supports it.
func Label(c Canvas, tx Matrix, p Point, text string, a Align) {
	if l, ok := c.(Labeler); ok {
		l.Label(tx.TransformPoint(p), text, a)
	}
}
