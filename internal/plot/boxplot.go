// Package plot assembles axes, mappers and marks into a box plot that can
// be placed in a scene.
package plot

import (
	"plotnav/internal/axis"
	"plotnav/internal/data"
	"plotnav/internal/errs"
	"plotnav/internal/geom"
	"plotnav/internal/scene"
	"plotnav/internal/shape"
)

// BoxPlot draws one mark per row of a single data source. Rows are
// expected in the layout of data.BoxData unless the shape config names
// other columns.
type BoxPlot struct {
	*scene.Container

	cfg    Config
	shaper shape.Shaper
	source *data.Table

	x, y   *axis.Axis
	xm, ym *axis.Mapper
	area   geom.Rect

	xAxis, yAxis *AxisElement
	marks        []*Mark
	line         *LineElement
	title        string
	legend       *Legend
}

// DefaultTitle labels the data source until SetTitle is called.
const DefaultTitle = "data"

// lineHitTolerance is the hit distance around the connecting line.
const lineHitTolerance = 2

// NewBoxPlot builds a plot over src laid out in bounds, with axes scaled
// to the data.
func NewBoxPlot(src *data.Table, bounds geom.Rect, cfg Config) (*BoxPlot, error) {
	shaper, err := shape.New(cfg.Shape)
	if err != nil {
		return nil, err
	}
	p := &BoxPlot{
		Container: scene.NewContainer(bounds),
		cfg:       cfg,
		shaper:    shaper,
		title:     DefaultTitle,
		legend:    NewLegend(cfg.Legend),
	}
	p.x, _ = axis.New(0, 1)
	p.y, _ = axis.New(0, 1)
	// Screen ranges are replaced by the first layout.
	p.xm, _ = axis.NewMapper(p.x, 0, 1)
	p.ym, _ = axis.NewMapper(p.y, 1, 0)
	p.xAxis = &AxisElement{
		Orientation: Horizontal,
		Mapper:      p.xm,
		Ticks:       axis.TickConfig{Spacing: 1},
		TickLength:  cfg.TickLength,
	}
	p.yAxis = &AxisElement{
		Orientation: Vertical,
		Mapper:      p.ym,
		Ticks:       cfg.YTicks,
		TickLength:  cfg.TickLength,
	}
	p.SetLayout(scene.LayoutFunc(p.layout))

	if err := p.AddSource(src); err != nil {
		return nil, err
	}
	if err := p.AutoScaleAxes(); err != nil {
		return nil, err
	}
	if err := p.RecomputeLayout(); err != nil {
		return nil, err
	}
	return p, nil
}

// AddSource sets the data source. A box plot holds exactly one.
func (p *BoxPlot) AddSource(src *data.Table) error {
	if src == nil {
		return errs.Missing("box plot needs a data source")
	}
	if p.source != nil {
		return errs.Invalid("box plot supports a single data source")
	}
	p.source = src
	p.legend.AddItem(p.title, p.symbol)
	return nil
}

// SetTitle names the data source in the legend. Call RecomputeLayout
// afterwards.
func (p *BoxPlot) SetTitle(title string) {
	for _, it := range p.legend.Items() {
		if it.Label == p.title {
			it.Label = title
		}
	}
	p.title = title
}

// symbol draws the legend sample of the source: the mark, crossed by the
// connecting line when there is one.
func (p *BoxPlot) symbol(r geom.Rect) []shape.Geometry {
	var gs []shape.Geometry
	if s, ok := p.shaper.(shape.Symbolizer); ok {
		gs = append(gs, s.Symbol(r))
	}
	if p.cfg.Connect {
		gs = append(gs, shape.LineSymbol(r))
	}
	return gs
}

func (p *BoxPlot) Source() *data.Table   { return p.source }
func (p *BoxPlot) Config() Config        { return p.cfg }
func (p *BoxPlot) XAxis() *axis.Axis     { return p.x }
func (p *BoxPlot) YAxis() *axis.Axis     { return p.y }
func (p *BoxPlot) XMapper() *axis.Mapper { return p.xm }
func (p *BoxPlot) YMapper() *axis.Mapper { return p.ym }
func (p *BoxPlot) Area() geom.Rect       { return p.area }
func (p *BoxPlot) Marks() []*Mark        { return p.marks }
func (p *BoxPlot) Title() string         { return p.title }
func (p *BoxPlot) Legend() *Legend       { return p.legend }

// Line returns the connecting line, nil when it is disabled or has fewer
// than two points.
func (p *BoxPlot) Line() *LineElement { return p.line }
func (p *BoxPlot) AxisElements() [2]*AxisElement {
	return [2]*AxisElement{p.xAxis, p.yAxis}
}

// AutoScaleAxes fits x to the positions ±0.5 and y to the whisker
// extremes with 5% padding. Axes are left alone when the source has no
// numeric values in the relevant columns. Call RecomputeLayout afterwards.
func (p *BoxPlot) AutoScaleAxes() error {
	if p.source == nil {
		return errs.Missing("box plot has no data source")
	}
	cols := p.cfg.Shape.Columns
	pos := p.column(cols.Position)
	if pos.Statistic(data.Count) > 0 {
		if err := p.x.SetRange(pos.Statistic(data.Min)-0.5, pos.Statistic(data.Max)+0.5); err != nil {
			return err
		}
	}
	bottom := p.column(cols.Bottom)
	top := p.column(cols.Top)
	if bottom.Statistic(data.Count) > 0 && top.Statistic(data.Count) > 0 {
		yMin := bottom.Statistic(data.Min)
		yMax := top.Statistic(data.Max)
		if yMin > yMax {
			yMin, yMax = yMax, yMin
		}
		pad := 0.05 * (yMax - yMin)
		if err := p.y.SetRange(yMin-pad, yMax+pad); err != nil {
			return err
		}
	}
	return nil
}

func (p *BoxPlot) column(i int) data.Column {
	if i < 0 || i >= p.source.ColumnCount() {
		return nil
	}
	return p.source.Column(i)
}

// layout maps the axes onto the plot area and rebuilds every child.
func (p *BoxPlot) layout(c *scene.Container) error {
	b := c.Bounds()
	in := p.cfg.Insets
	p.area = in.area(b)
	a := p.area

	if err := p.xm.SetScreenRange(a.MinX(), a.MaxX()); err != nil {
		return err
	}
	// y grows upward.
	if err := p.ym.SetScreenRange(a.MaxY(), a.MinY()); err != nil {
		return err
	}
	p.xAxis.line = geom.Seg(a.MinX(), a.MaxY(), a.MaxX(), a.MaxY())
	p.xAxis.bounds = geom.Rect{X: a.X, Y: a.MaxY(), W: a.W, H: in.Bottom}
	p.yAxis.line = geom.Seg(a.MinX(), a.MaxY(), a.MinX(), a.MinY())
	p.yAxis.bounds = geom.Rect{X: a.X - in.Left, Y: a.Y, W: in.Left, H: a.H}

	p.marks = nil
	var centers []geom.Point
	for i := 0; i < p.source.RowCount(); i++ {
		row := p.source.Row(i)
		g, ok, err := p.shaper.Shape(p.xm, p.ym, row)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}
		p.marks = append(p.marks, &Mark{Row: i, Values: row, Shape: g})
		st := p.cfg.Shape.Columns.StatRow(row)
		centers = append(centers, geom.Pt(st.Position, st.BarCenter))
	}

	p.line = nil
	if p.cfg.Connect {
		ln, ok, err := shape.BuildLine(p.xm, p.ym, centers, p.cfg.Line)
		if err != nil {
			return err
		}
		if ok {
			p.line = &LineElement{Line: ln, Tolerance: lineHitTolerance}
		}
	}

	c.Clear()
	c.Add(p.xAxis)
	c.Add(p.yAxis)
	for _, m := range p.marks {
		c.Add(m)
	}
	if p.line != nil {
		c.Add(p.line)
	}
	if p.cfg.Legend.Show && len(p.legend.Items()) > 0 {
		// Top right corner of the plot area.
		sz := p.legend.PreferredSize()
		in := p.cfg.Legend.Inset
		p.legend.SetBounds(geom.Rect{X: a.MaxX() - in - sz.X, Y: a.Y + in, W: sz.X, H: sz.Y})
		if err := p.legend.RecomputeLayout(); err != nil {
			return err
		}
		c.Add(p.legend)
	}
	return nil
}

// Draw paints the plot area frame and then every child.
func (p *BoxPlot) Draw(c geom.Canvas, tx geom.Matrix) {
	geom.StrokeRect(c, tx, p.area, geom.RoleFrame)
	p.Container.Draw(c, tx)
}
