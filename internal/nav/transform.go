package nav

import "plotnav/internal/geom"

// ViewTransform is a snapshot of the navigation state. Device coordinates
// are Scale·(world + Translate).
type ViewTransform struct {
	Scale     float64
	Translate geom.Point
}

// Matrix concatenates the scale and then the translation, so the
// translation acts on world coordinates before scaling.
func (t ViewTransform) Matrix() geom.Matrix {
	return geom.Scale(t.Scale, t.Scale).Multiply(geom.Translate(t.Translate.X, t.Translate.Y))
}

// Apply maps a world point to the device.
func (t ViewTransform) Apply(p geom.Point) geom.Point {
	return p.Add(t.Translate).Mul(t.Scale)
}

// Invert maps a device point back to world coordinates.
func (t ViewTransform) Invert(p geom.Point) geom.Point {
	return p.Div(t.Scale).Sub(t.Translate)
}
