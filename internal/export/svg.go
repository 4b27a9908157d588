// Package export writes drawables to vector files.
package export

import (
	"fmt"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"

	"plotnav/internal/errs"
	"plotnav/internal/geom"
	"plotnav/internal/scene"
)

// Resizable is a drawable whose layout can be recomputed for a new size.
type Resizable interface {
	scene.Drawable
	SetBounds(r geom.Rect)
	RecomputeLayout() error
}

const fontSize = 10

var styles = map[geom.Role]string{
	geom.RoleFrame:   "fill:none; stroke:#888; stroke-width:1",
	geom.RoleAxis:    "stroke:#444; stroke-width:1",
	geom.RoleTick:    "stroke:#444; stroke-width:1",
	geom.RoleBox:     "fill:#fff; stroke:#000; stroke-width:1",
	geom.RoleWhisker: "stroke:#000; stroke-width:1",
	geom.RoleBar:     "stroke:#000; stroke-width:1",
	geom.RoleCenter:  "stroke:#000; stroke-width:2",
	geom.RoleMarker:  "fill:#000; stroke:none",
	geom.RoleLine:    "fill:none; stroke:#1f77b4; stroke-width:1.5",
	geom.RoleLegend:  "fill:#fff; stroke:#000; stroke-width:1",
}

// WriteSVG lays d out at width×height, writes it as an SVG document to w
// and puts d back into its previous bounds.
func WriteSVG(w io.Writer, d Resizable, width, height int) (err error) {
	if width <= 0 || height <= 0 {
		return errs.Invalid("svg size %dx%d", width, height)
	}
	old := d.Bounds()
	d.SetBounds(geom.Rect{W: float64(width), H: float64(height)})
	defer func() {
		d.SetBounds(old)
		if rerr := d.RecomputeLayout(); err == nil {
			err = rerr
		}
	}()
	if err := d.RecomputeLayout(); err != nil {
		return err
	}

	c := newCanvas(w)
	c.doc.Start(width, height, fmt.Sprintf(`font-size="%dpx" font-family="Helvetica,Arial,sans-serif"`, fontSize))
	d.Draw(c, geom.Identity())
	c.doc.End()
	return nil
}

// canvas adapts an svgo document to geom.Canvas.
type canvas struct {
	doc *svg.SVG
}

func newCanvas(w io.Writer) *canvas { return &canvas{doc: svg.New(w)} }

func px(v float64) int { return int(math.Round(v)) }

func (c *canvas) Rect(r geom.Rect, role geom.Role) {
	// svg rejects negative sizes.
	if r.W < 0 {
		r.X, r.W = r.X+r.W, -r.W
	}
	if r.H < 0 {
		r.Y, r.H = r.Y+r.H, -r.H
	}
	c.doc.Rect(px(r.X), px(r.Y), px(r.W), px(r.H), styles[role])
}

func (c *canvas) Line(s geom.Segment, role geom.Role) {
	c.doc.Line(px(s.A.X), px(s.A.Y), px(s.B.X), px(s.B.Y), styles[role])
}

func (c *canvas) Label(p geom.Point, text string, a geom.Align) {
	style := `text-anchor="middle" dy="1em" fill="#666"`
	switch a {
	case geom.AlignLeft:
		style = `text-anchor="end" dy=".3em" fill="#666"`
	case geom.AlignRight:
		style = `text-anchor="start" dy=".3em" fill="#000"`
	}
	c.doc.Text(px(p.X), px(p.Y), text, style)
}
