package tui

import (
	"fmt"
	"strings"

	"plotnav/internal/data"
	"plotnav/internal/geom"
	"plotnav/internal/plot"
	"plotnav/internal/scene"
)

// renderPlot rasterizes the navigable plot into w x h cells.
func (m Model) renderPlot(w, h int) string {
	br := newBrailleBuf(w, h)
	if m.view != nil {
		m.view.Draw(br, geom.Identity())
	}
	lines := br.toLines()

	// Hover highlight: mark the hovered cell when it is over a box
	if m.hovering && m.hoverOnBox {
		cx, cy := m.hoverCellX, m.hoverCellY
		if cy >= 0 && cy < len(lines) {
			r := []rune(lines[cy])
			if cx >= 0 && cx < len(r) {
				lines[cy] = string(r[:cx]) + hoverStyle.Render("◯") + string(r[cx+1:])
			}
		}
	}
	return strings.Join(lines, "\n")
}

// screenToData converts a micro-pixel in view space to data coordinates,
// undoing zoom, pan and the axis mapping.
func (m Model) screenToData(screen geom.Point) (geom.Point, bool) {
	if m.view == nil {
		return geom.Point{}, false
	}
	world := m.view.Navigator().Transform().Invert(screen)
	x, err := m.plot.XMapper().ToData(world.X)
	if err != nil {
		return geom.Point{}, false
	}
	y, err := m.plot.YMapper().ToData(world.Y)
	if err != nil {
		return geom.Point{}, false
	}
	return geom.Pt(x, y), true
}

// hitTest lists the elements under a view-space micro-pixel.
func (m Model) hitTest(screen geom.Point) []scene.Element {
	if m.view == nil {
		return nil
	}
	return m.view.ElementsAt(screen)
}

// describe renders the hit-test result outermost first.
func (m Model) describe(hits []scene.Element) string {
	var out []string
	for _, e := range hits {
		switch e := e.(type) {
		case *plot.BoxPlot:
			x0, x1 := e.XAxis().Range()
			y0, y1 := e.YAxis().Range()
			out = append(out, fmt.Sprintf("plot %s  x=[%s, %s] y=[%s, %s]",
				m.name, formatValue(x0), formatValue(x1), formatValue(y0), formatValue(y1)))
		case *plot.AxisElement:
			if e.Orientation == plot.Horizontal {
				out = append(out, "x axis")
			} else {
				out = append(out, "y axis")
			}
		case *plot.Mark:
			out = append(out, m.describeMark(e))
		case *plot.LineElement:
			out = append(out, fmt.Sprintf("center line  %d segments", len(e.Line.Segments)))
		case *plot.LegendItem:
			out = append(out, "legend "+e.Label)
		}
	}
	return strings.Join(out, "\n")
}

func (m Model) describeMark(mk *plot.Mark) string {
	name := fmt.Sprintf("row %d", mk.Row+1)
	if m.raw != nil && mk.Row < m.raw.ColumnCount() {
		name = m.raw.Name(mk.Row)
	}
	v := func(i int) string {
		if i < len(mk.Values) {
			return formatValue(mk.Values[i])
		}
		return ""
	}
	return fmt.Sprintf("%s  median=%s min=%s q1=%s q3=%s max=%s",
		name, v(data.ColCenter), v(data.ColBottom), v(data.ColBoxBottom), v(data.ColBoxTop), v(data.ColTop))
}
