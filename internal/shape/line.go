package shape

import (
	"math"

	"plotnav/internal/axis"
	"plotnav/internal/geom"
)

// LineConfig controls how BuildLine connects points.
type LineConfig struct {
	// Gap is the screen distance kept free around every point. Zero,
	// negative and NaN values connect the points directly.
	Gap float64
	// Rounded punches a circle of diameter Gap around each point instead
	// of a square of edge Gap.
	Rounded bool
}

// Line is a polyline relative to Origin, the first connected point.
type Line struct {
	Origin   geom.Point
	Segments []geom.Segment
}

// BuildLine connects consecutive drawable points, given in data space.
// Points with a non-finite coordinate are skipped and the line joins their
// neighbours. ok is false when fewer than two points remain.
func BuildLine(x, y *axis.Mapper, pts []geom.Point, cfg LineConfig) (Line, bool, error) {
	if err := mappers(x, y); err != nil {
		return Line{}, false, err
	}
	var screen []geom.Point
	for _, p := range pts {
		if !finite(p.X) || !finite(p.Y) {
			continue
		}
		sx, err := x.ToScreen(p.X, false, false)
		if err != nil {
			return Line{}, false, err
		}
		sy, err := y.ToScreen(p.Y, false, false)
		if err != nil {
			return Line{}, false, err
		}
		screen = append(screen, geom.Pt(sx, sy))
	}
	if len(screen) < 2 {
		return Line{}, false, nil
	}

	origin := screen[0]
	ln := Line{Origin: origin}
	for i := 1; i < len(screen); i++ {
		s, ok := punch(geom.Segment{A: screen[i-1], B: screen[i]}, cfg)
		if ok {
			ln.Segments = append(ln.Segments, s.Translate(origin.Neg()))
		}
	}
	return ln, true, nil
}

// punch shortens both ends of s by the gap around its end points. ok is
// false when nothing of s is left.
func punch(s geom.Segment, cfg LineConfig) (geom.Segment, bool) {
	l := s.Len()
	if l == 0 {
		return s, false
	}
	if !(cfg.Gap > 0) {
		return s, true
	}
	u := s.B.Sub(s.A).Div(l)
	cut := cfg.Gap / 2
	if !cfg.Rounded {
		// Distance from the center of a square to its edge along u.
		cut /= math.Max(math.Abs(u.X), math.Abs(u.Y))
	}
	if 2*cut >= l {
		return s, false
	}
	return geom.Segment{A: s.A.Add(u.Mul(cut)), B: s.B.Sub(u.Mul(cut))}, true
}

func (l Line) Anchor() geom.Point { return l.Origin }

func (l Line) Bounds() geom.Rect {
	pts := make([]geom.Point, 0, 2*len(l.Segments))
	for _, s := range l.Segments {
		pts = append(pts, s.A, s.B)
	}
	return bounds(pts...)
}

func (l Line) Draw(c geom.Canvas, tx geom.Matrix) {
	m := tx.Multiply(geom.Translate(l.Origin.X, l.Origin.Y))
	for _, s := range l.Segments {
		geom.StrokeLine(c, m, s, geom.RoleLine)
	}
}

// LineSymbol is a horizontal line through the middle of r.
func LineSymbol(r geom.Rect) Line {
	o := geom.Pt(r.X, r.Y+r.H/2)
	return Line{Origin: o, Segments: []geom.Segment{geom.Seg(0, 0, r.W, 0)}}
}
