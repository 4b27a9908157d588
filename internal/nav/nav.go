// Package nav holds the interactive view state of a plot: a zoom factor and
// a pan center over one viewport.
package nav

import (
	"math"

	"plotnav/internal/errs"
	"plotnav/internal/geom"
)

// Viewport is the region a Navigator looks at.
type Viewport interface {
	Bounds() geom.Rect
}

// Navigator maps between world coordinates (laid out plot space) and view
// coordinates (device pixels or cells). It is bound to one viewport for
// its whole life.
type Navigator struct {
	viewport Viewport
	zoom     float64
	center   geom.Point
}

// New returns a navigator over v with zoom 1 and center (0,0).
func New(v Viewport) *Navigator {
	return &Navigator{viewport: v, zoom: 1}
}

func (n *Navigator) Viewport() Viewport { return n.viewport }

func (n *Navigator) Zoom() float64 { return n.zoom }

// SetZoom stores z as is. Range limits are the caller's business.
func (n *Navigator) SetZoom(z float64) error {
	if !(z > 0) || math.IsInf(z, 0) {
		return errs.Invalid("zoom must be positive, got %v", z)
	}
	n.zoom = z
	return nil
}

func (n *Navigator) Center() geom.Point { return n.center }

// SetCenter stores p, in world coordinates, as the pan center.
func (n *Navigator) SetCenter(p geom.Point) { n.center = p }

// ToView scales p by zoom. The pan center is not applied.
func (n *Navigator) ToView(p geom.Point, zoom float64) geom.Point { return p.Mul(zoom) }

// ToWorld divides p by zoom. The pan center is not applied.
func (n *Navigator) ToWorld(p geom.Point, zoom float64) geom.Point { return p.Div(zoom) }

// Transform returns the view transform for the current state.
func (n *Navigator) Transform() ViewTransform {
	return ViewTransform{Scale: n.zoom, Translate: n.center.Neg()}
}

// Pan moves the view by a screen-space delta: dragging content right moves
// the center left.
func (n *Navigator) Pan(delta geom.Point) {
	n.center = n.center.Sub(delta.Div(n.zoom))
}

// ZoomAt multiplies the zoom by factor while keeping the world point under
// screen fixed.
func (n *Navigator) ZoomAt(screen geom.Point, factor float64) error {
	world := n.Transform().Invert(screen)
	if err := n.SetZoom(n.zoom * factor); err != nil {
		return err
	}
	n.center = world.Sub(screen.Div(n.zoom))
	return nil
}

// Reset restores zoom 1 and center (0,0).
func (n *Navigator) Reset() {
	n.zoom = 1
	n.center = geom.Point{}
}
