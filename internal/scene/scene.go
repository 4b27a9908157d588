// Package scene is the composition tree plots are built from, and the
// navigable root that adds zoom, pan and hit testing on top of it.
package scene

import "plotnav/internal/geom"

// Element is a node of the composition tree. Bounds are in world space.
type Element interface {
	Bounds() geom.Rect
	Children() []Element
	Contains(p geom.Point) bool
}

// Drawable is an Element that can paint itself. tx maps world space to
// the device and is never modified by the callee.
type Drawable interface {
	Element
	Draw(c geom.Canvas, tx geom.Matrix)
}

// Layout positions the children of a container inside its bounds.
type Layout interface {
	Layout(c *Container) error
}

// LayoutFunc adapts a function to Layout.
type LayoutFunc func(c *Container) error

func (f LayoutFunc) Layout(c *Container) error { return f(c) }

// Container groups drawables. It does not clip its children.
type Container struct {
	bounds   geom.Rect
	children []Drawable
	layout   Layout
}

func NewContainer(bounds geom.Rect) *Container {
	return &Container{bounds: bounds}
}

func (c *Container) Bounds() geom.Rect          { return c.bounds }
func (c *Container) SetBounds(r geom.Rect)      { c.bounds = r }
func (c *Container) Contains(p geom.Point) bool { return c.bounds.Contains(p) }
func (c *Container) SetLayout(l Layout)         { c.layout = l }

// Add appends d to the children.
func (c *Container) Add(d Drawable) { c.children = append(c.children, d) }

// Clear drops every child.
func (c *Container) Clear() { c.children = nil }

func (c *Container) Drawables() []Drawable { return c.children }

func (c *Container) Children() []Element {
	out := make([]Element, len(c.children))
	for i, d := range c.children {
		out[i] = d
	}
	return out
}

// RecomputeLayout runs the layout, if any. Callers invoke it after
// changing bounds or children.
func (c *Container) RecomputeLayout() error {
	if c.layout == nil {
		return nil
	}
	return c.layout.Layout(c)
}

func (c *Container) Draw(cv geom.Canvas, tx geom.Matrix) {
	for _, d := range c.children {
		d.Draw(cv, tx)
	}
}
