// Package shape turns rows of plot data into geometry expressed in a local
// frame around an anchor point. Each kind of mark is an independent Shaper
// selected by configuration.
package shape

import (
	"math"

	"plotnav/internal/axis"
	"plotnav/internal/errs"
	"plotnav/internal/geom"
)

// Geometry is an assembly of primitives stored relative to Anchor, the
// mapped screen position of the row's reference value.
type Geometry interface {
	// Anchor is the origin of the local frame in plot (world) space.
	Anchor() geom.Point
	// Bounds covers every primitive, in the local frame.
	Bounds() geom.Rect
	// Draw emits the primitives; tx maps world space to the device.
	Draw(c geom.Canvas, tx geom.Matrix)
}

// Shaper builds the geometry of one data row. ok is false when the row
// cannot be drawn, for instance because a required cell is non-numeric;
// that is not an error.
type Shaper interface {
	Shape(x, y *axis.Mapper, row []float64) (g Geometry, ok bool, err error)
}

// Symbolizer is implemented by shapers that can draw a sample of their
// mark, for instance in a legend. The result fills r, in world space.
type Symbolizer interface {
	Symbol(r geom.Rect) Geometry
}

// Kinds accepted by New.
const (
	KindBox   = "box"
	KindPoint = "point"
	KindBar   = "bar"
)

// Columns names the row indexes a shaper reads.
type Columns struct {
	Position  int
	Center    int
	Bottom    int
	BoxBottom int
	BoxTop    int
	Top       int
}

// DefaultColumns matches the layout produced by data.BoxData.
func DefaultColumns() Columns {
	return Columns{Position: 0, Center: 1, Bottom: 2, BoxBottom: 3, BoxTop: 4, Top: 5}
}

// StatRow picks the six box statistics out of row. Missing indexes read as
// NaN.
func (c Columns) StatRow(row []float64) StatRow {
	at := func(i int) float64 {
		if i < 0 || i >= len(row) {
			return math.NaN()
		}
		return row[i]
	}
	return StatRow{
		Position:  at(c.Position),
		BarBottom: at(c.Bottom),
		BoxBottom: at(c.BoxBottom),
		BarCenter: at(c.Center),
		BoxTop:    at(c.BoxTop),
		BarTop:    at(c.Top),
	}
}

// Config selects and parameterizes a Shaper.
type Config struct {
	Kind       string
	BoxWidth   float64 // box width in x data units
	BarWidth   float64 // whisker bar width relative to the box
	MarkerSize float64 // point marker edge in screen units
	Columns    Columns
}

// DefaultConfig returns a box-and-whisker configuration.
func DefaultConfig() Config {
	return Config{
		Kind:       KindBox,
		BoxWidth:   0.75,
		BarWidth:   0.75,
		MarkerSize: 4,
		Columns:    DefaultColumns(),
	}
}

// New returns the Shaper for cfg.Kind.
func New(cfg Config) (Shaper, error) {
	switch cfg.Kind {
	case KindBox, "":
		if cfg.BoxWidth <= 0 || cfg.BarWidth < 0 || cfg.BarWidth > 1 {
			return nil, errs.Invalid("box width %v, bar width %v", cfg.BoxWidth, cfg.BarWidth)
		}
		return Box{BoxWidth: cfg.BoxWidth, BarWidth: cfg.BarWidth, Columns: cfg.Columns}, nil
	case KindPoint:
		if cfg.MarkerSize <= 0 {
			return nil, errs.Invalid("marker size %v", cfg.MarkerSize)
		}
		return Point{Size: cfg.MarkerSize, Columns: cfg.Columns}, nil
	case KindBar:
		if cfg.BoxWidth <= 0 {
			return nil, errs.Invalid("bar width %v", cfg.BoxWidth)
		}
		return Bar{Width: cfg.BoxWidth, Columns: cfg.Columns}, nil
	}
	return nil, errs.Invalid("unknown shape kind %q", cfg.Kind)
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

func mappers(x, y *axis.Mapper) error {
	if x == nil || y == nil {
		return errs.Missing("shape needs both axis mappers")
	}
	return nil
}

// bounds returns the rectangle covering pts.
func bounds(pts ...geom.Point) geom.Rect {
	var b geom.BBox
	for _, p := range pts {
		b.Extend(p)
	}
	return b.Rect()
}
