package shape

import (
	"math"

	"plotnav/internal/axis"
	"plotnav/internal/geom"
)

// StatRow is the input of a box-and-whisker mark. BarBottom <= BoxBottom
// <= BarCenter <= BoxTop <= BarTop is expected but not enforced.
type StatRow struct {
	Position  float64
	BarBottom float64
	BoxBottom float64
	BarCenter float64
	BoxTop    float64
	BarTop    float64
}

// Numeric reports whether every field holds a finite number.
func (r StatRow) Numeric() bool {
	for _, v := range [...]float64{r.Position, r.BarBottom, r.BoxBottom, r.BarCenter, r.BoxTop, r.BarTop} {
		if !finite(v) {
			return false
		}
	}
	return true
}

// BoxWhisker is the geometry of one box-and-whisker mark. All shapes are
// relative to Origin, the mapped position of (Position, BarCenter).
type BoxWhisker struct {
	Origin      geom.Point
	Box         geom.Rect
	WhiskerHigh geom.Segment
	WhiskerLow  geom.Segment
	BarHigh     geom.Segment
	BarLow      geom.Segment
	BarCenter   geom.Segment
}

// BuildBox derives the box-and-whisker geometry of row. The box spans
// Position ± boxWidth/2 in x data units and the whisker bars span barWidth
// of the box's screen width. ok is false, with no error, when a field of
// row is not a number. Rows violating the expected ordering are drawn as
// given: the box height is negative when BoxTop < BoxBottom.
func BuildBox(x, y *axis.Mapper, row StatRow, boxWidth, barWidth float64) (BoxWhisker, bool, error) {
	if err := mappers(x, y); err != nil {
		return BoxWhisker{}, false, err
	}
	if !row.Numeric() {
		return BoxWhisker{}, false, nil
	}

	mx := func(v float64) (float64, error) { return x.ToScreen(v, false, false) }
	my := func(v float64) (float64, error) { return y.ToScreen(v, false, false) }
	var err error
	var boxX, boxXMin, boxXMax float64
	if boxX, err = mx(row.Position); err != nil {
		return BoxWhisker{}, false, err
	}
	if boxXMin, err = mx(row.Position - boxWidth/2); err != nil {
		return BoxWhisker{}, false, err
	}
	if boxXMax, err = mx(row.Position + boxWidth/2); err != nil {
		return BoxWhisker{}, false, err
	}
	ys := make([]float64, 5)
	for i, v := range [...]float64{row.BarBottom, row.BoxBottom, row.BarCenter, row.BoxTop, row.BarTop} {
		if ys[i], err = my(v); err != nil {
			return BoxWhisker{}, false, err
		}
	}
	barYBottom, boxYBottom, barYCenter, boxYTop, barYTop := ys[0], ys[1], ys[2], ys[3], ys[4]

	// A mapper may run backwards, so order the x edges on screen.
	left, right := math.Min(boxXMin, boxXMax), math.Max(boxXMin, boxXMax)
	boxW := right - left
	barInset := (1 - barWidth) * boxW / 2
	barLeft, barRight := left+barInset-boxX, right-barInset-boxX

	// Inverted rows keep both edges on the mapped quartiles and get a
	// negative height.
	boxY := math.Min(boxYTop, boxYBottom)
	boxH := math.Abs(boxYTop - boxYBottom)
	if row.BoxTop < row.BoxBottom {
		boxY = math.Max(boxYTop, boxYBottom)
		boxH = -boxH
	}

	bw := BoxWhisker{
		Origin: geom.Pt(boxX, barYCenter),
		Box: geom.Rect{
			X: left - boxX,
			Y: boxY - barYCenter,
			W: boxW,
			H: boxH,
		},
		WhiskerHigh: geom.Seg(0, boxYTop-barYCenter, 0, barYTop-barYCenter),
		WhiskerLow:  geom.Seg(0, boxYBottom-barYCenter, 0, barYBottom-barYCenter),
		BarHigh:     geom.Seg(barLeft, barYTop-barYCenter, barRight, barYTop-barYCenter),
		BarLow:      geom.Seg(barLeft, barYBottom-barYCenter, barRight, barYBottom-barYCenter),
		BarCenter:   geom.Seg(left-boxX, 0, right-boxX, 0),
	}
	return bw, true, nil
}

func (b BoxWhisker) Anchor() geom.Point { return b.Origin }

func (b BoxWhisker) Bounds() geom.Rect {
	return bounds(
		geom.Pt(b.Box.X, b.Box.Y), geom.Pt(b.Box.MaxX(), b.Box.MaxY()),
		b.WhiskerHigh.A, b.WhiskerHigh.B, b.WhiskerLow.A, b.WhiskerLow.B,
		b.BarHigh.A, b.BarHigh.B, b.BarLow.A, b.BarLow.B,
		b.BarCenter.A, b.BarCenter.B,
	)
}

func (b BoxWhisker) Draw(c geom.Canvas, tx geom.Matrix) {
	m := tx.Multiply(geom.Translate(b.Origin.X, b.Origin.Y))
	geom.StrokeLine(c, m, b.WhiskerHigh, geom.RoleWhisker)
	geom.StrokeLine(c, m, b.WhiskerLow, geom.RoleWhisker)
	geom.StrokeRect(c, m, b.Box, geom.RoleBox)
	geom.StrokeLine(c, m, b.BarHigh, geom.RoleBar)
	geom.StrokeLine(c, m, b.BarLow, geom.RoleBar)
	geom.StrokeLine(c, m, b.BarCenter, geom.RoleCenter)
}

// Symbol draws a box-and-whisker mark spanning the height of r. The box
// covers the middle half.
func (s Box) Symbol(r geom.Rect) Geometry {
	hw, hh := r.W*s.BoxWidth/2, r.H/2
	bar := hw * s.BarWidth
	return BoxWhisker{
		Origin:      geom.Pt(r.X+r.W/2, r.Y+hh),
		Box:         geom.Rect{X: -hw, Y: -hh / 2, W: 2 * hw, H: hh},
		WhiskerHigh: geom.Seg(0, -hh/2, 0, -hh),
		WhiskerLow:  geom.Seg(0, hh/2, 0, hh),
		BarHigh:     geom.Seg(-bar, -hh, bar, -hh),
		BarLow:      geom.Seg(-bar, hh, bar, hh),
		BarCenter:   geom.Seg(-hw, 0, hw, 0),
	}
}

// Box draws box-and-whisker marks.
type Box struct {
	BoxWidth float64
	BarWidth float64
	Columns  Columns
}

func (s Box) Shape(x, y *axis.Mapper, row []float64) (Geometry, bool, error) {
	bw, ok, err := BuildBox(x, y, s.Columns.StatRow(row), s.BoxWidth, s.BarWidth)
	if err != nil || !ok {
		return nil, ok, err
	}
	return bw, true, nil
}
