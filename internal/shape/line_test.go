package shape

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"plotnav/internal/errs"
	"plotnav/internal/geom"
)

func nearSeg(t *testing.T, want, got geom.Segment) {
	t.Helper()
	assert.True(t, want.A.Near(got.A, 1e-9) && want.B.Near(got.B, 1e-9), "want %v, got %v", want, got)
}

func TestBuildLine(t *testing.T) {
	x := mapper(t, 0, 10, 0, 100)
	y := mapper(t, 0, 10, 0, 100)
	pts := []geom.Point{{X: 1, Y: 1}, {X: 2, Y: 2}, {X: math.NaN(), Y: 5}, {X: 3, Y: math.Inf(1)}, {X: 3, Y: 2}}

	ln, ok, err := BuildLine(x, y, pts, LineConfig{})
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, geom.Pt(10, 10).Near(ln.Anchor(), 1e-9))
	require.Len(t, ln.Segments, 2, "non-finite points are skipped, not split on")
	nearSeg(t, geom.Seg(0, 0, 10, 10), ln.Segments[0])
	nearSeg(t, geom.Seg(10, 10, 20, 10), ln.Segments[1])
	b := ln.Bounds()
	assert.InDelta(t, 20, b.W, 1e-9)
	assert.InDelta(t, 10, b.H, 1e-9)

	ln, _, err = BuildLine(x, y, pts, LineConfig{Gap: math.NaN()})
	require.NoError(t, err)
	assert.Len(t, ln.Segments, 2)
}

func TestBuildLineGaps(t *testing.T) {
	x := mapper(t, 0, 10, 0, 100)
	y := mapper(t, 0, 10, 0, 100)
	pts := []geom.Point{{X: 1, Y: 1}, {X: 2, Y: 2}, {X: 3, Y: 2}}
	d := 2 / math.Sqrt2

	tests := []struct {
		name string
		cfg  LineConfig
		want []geom.Segment
	}{
		{"square", LineConfig{Gap: 4}, []geom.Segment{geom.Seg(2, 2, 8, 8), geom.Seg(12, 10, 18, 10)}},
		{"rounded", LineConfig{Gap: 4, Rounded: true}, []geom.Segment{geom.Seg(d, d, 10-d, 10-d), geom.Seg(12, 10, 18, 10)}},
		{"too wide", LineConfig{Gap: 20}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ln, ok, err := BuildLine(x, y, pts, tt.cfg)
			require.NoError(t, err)
			require.True(t, ok)
			require.Len(t, ln.Segments, len(tt.want))
			for i := range tt.want {
				nearSeg(t, tt.want[i], ln.Segments[i])
			}
		})
	}
}

func TestBuildLineTooFewPoints(t *testing.T) {
	x := mapper(t, 0, 10, 0, 100)
	y := mapper(t, 0, 10, 0, 100)

	_, ok, err := BuildLine(x, y, []geom.Point{{X: 1, Y: 1}, {X: math.NaN(), Y: 1}}, LineConfig{})
	assert.NoError(t, err)
	assert.False(t, ok)

	_, _, err = BuildLine(x, nil, nil, LineConfig{})
	assert.ErrorIs(t, err, errs.ErrMissingCollaborator)
}

func TestLineDraw(t *testing.T) {
	x := mapper(t, 0, 10, 0, 100)
	y := mapper(t, 0, 10, 0, 100)
	ln, _, err := BuildLine(x, y, []geom.Point{{X: 1, Y: 1}, {X: 2, Y: 1}, {X: 3, Y: 3}}, LineConfig{})
	require.NoError(t, err)

	var rec recorder
	ln.Draw(&rec, geom.Scale(2, 2))
	require.Len(t, rec.lines, 2)
	assert.Equal(t, []geom.Role{geom.RoleLine, geom.RoleLine}, rec.roles)
	nearSeg(t, geom.Seg(20, 20, 40, 20), rec.lines[0])
	nearSeg(t, geom.Seg(40, 20, 60, 60), rec.lines[1])
}

func TestSymbols(t *testing.T) {
	r := geom.Rect{X: 0, Y: 0, W: 12, H: 8}
	placed := func(g Geometry) geom.Rect { return g.Bounds().Translate(g.Anchor()) }

	box := Box{BoxWidth: 0.75, BarWidth: 0.5}
	assert.Equal(t, geom.Rect{X: 1.5, Y: 0, W: 9, H: 8}, placed(box.Symbol(r)))
	assert.Equal(t, geom.Rect{X: 4, Y: 2, W: 4, H: 4}, placed(Point{Size: 4}.Symbol(r)))
	assert.Equal(t, geom.Rect{X: 4, Y: 2, W: 4, H: 4}, placed(Point{Size: 40}.Symbol(geom.Rect{X: 4, Y: 2, W: 4, H: 4})))
	assert.Equal(t, geom.Rect{X: 3, Y: 0, W: 6, H: 8}, placed(Bar{Width: 1}.Symbol(r)))

	ln := LineSymbol(r)
	require.Len(t, ln.Segments, 1)
	assert.Equal(t, geom.Rect{X: 0, Y: 4, W: 12}, placed(ln))

	var _ Symbolizer = Box{}
	var _ Symbolizer = Point{}
	var _ Symbolizer = Bar{}
}
