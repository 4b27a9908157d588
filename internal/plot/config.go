package plot

import (
	"plotnav/internal/axis"
	"plotnav/internal/geom"
	"plotnav/internal/shape"
)

// Insets are the margins between the plot bounds and the plot area, in
// world units.
type Insets struct {
	Top, Right, Bottom, Left float64
}

// Config is fixed for the life of a plot. Build a new plot to change it.
type Config struct {
	Shape      shape.Config
	YTicks     axis.TickConfig
	Insets     Insets
	TickLength float64
	// Connect draws a line through the centers of consecutive marks.
	Connect bool
	Line    shape.LineConfig
	Legend  LegendConfig
}

// DefaultConfig returns box-and-whisker marks, automatic y ticks and
// margins sized for tick labels.
func DefaultConfig() Config {
	return Config{
		Shape:      shape.DefaultConfig(),
		YTicks:     axis.TickConfig{Spacing: axis.AutoSpacing},
		Insets:     Insets{Top: 8, Right: 8, Bottom: 16, Left: 24},
		TickLength: 3,
		Legend:     DefaultLegendConfig(),
	}
}

// area shrinks r by the insets, keeping at least one unit in each
// direction.
func (in Insets) area(r geom.Rect) geom.Rect {
	a := geom.Rect{
		X: r.X + in.Left,
		Y: r.Y + in.Top,
		W: r.W - in.Left - in.Right,
		H: r.H - in.Top - in.Bottom,
	}
	if a.W < 1 {
		a.W = 1
	}
	if a.H < 1 {
		a.H = 1
	}
	return a
}
