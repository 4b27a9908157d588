package plot

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"plotnav/internal/data"
	"plotnav/internal/errs"
	"plotnav/internal/geom"
	"plotnav/internal/scene"
)

func boxData(t *testing.T) *data.Table {
	t.Helper()
	raw := data.NewTable("a", "b")
	for i := 1; i <= 5; i++ {
		require.NoError(t, raw.Add(float64(i), float64(2*i)))
	}
	box, err := data.BoxData(raw)
	require.NoError(t, err)
	return box
}

var bounds = geom.Rect{W: 240, H: 124}

func TestNewBoxPlot(t *testing.T) {
	assert := assert.New(t)
	p, err := NewBoxPlot(boxData(t), bounds, DefaultConfig())
	require.NoError(t, err)

	min, max := p.XAxis().Range()
	assert.InDelta(0.5, min, 1e-12)
	assert.InDelta(2.5, max, 1e-12)
	min, max = p.YAxis().Range()
	assert.InDelta(0.55, min, 1e-12)
	assert.InDelta(10.45, max, 1e-12)

	assert.Equal(geom.Rect{X: 24, Y: 8, W: 208, H: 100}, p.Area())
	require.Len(p.Marks(), 2)
	assert.Len(p.Children(), 4)
	assert.InDelta(76, p.Marks()[0].Shape.Anchor().X, 1e-9)
	assert.InDelta(180, p.Marks()[1].Shape.Anchor().X, 1e-9)
	// Larger values sit higher up.
	assert.Less(p.Marks()[1].Shape.Anchor().Y, p.Marks()[0].Shape.Anchor().Y)
}

func TestBoxPlotSingleSource(t *testing.T) {
	p, err := NewBoxPlot(boxData(t), bounds, DefaultConfig())
	require.NoError(t, err)
	assert.ErrorIs(t, p.AddSource(boxData(t)), errs.ErrInvalidParameter)

	_, err = NewBoxPlot(nil, bounds, DefaultConfig())
	assert.ErrorIs(t, err, errs.ErrMissingCollaborator)
}

func TestBoxPlotIgnoresInfiniteCells(t *testing.T) {
	raw := data.NewTable("a", "b")
	require.NoError(t, raw.Add(1, 4))
	require.NoError(t, raw.Add(2, math.Inf(1)))
	require.NoError(t, raw.Add(3, 8))
	box, err := data.BoxData(raw)
	require.NoError(t, err)

	p, err := NewBoxPlot(box, bounds, DefaultConfig())
	require.NoError(t, err)
	min, max := p.YAxis().Range()
	assert.InDelta(t, 0.65, min, 1e-12)
	assert.InDelta(t, 8.35, max, 1e-12)
	require.Len(t, p.Marks(), 2)
	for _, mk := range p.Marks() {
		a := mk.Shape.Anchor()
		assert.False(t, math.IsNaN(a.Y) || math.IsInf(a.Y, 0))
	}
}

func TestBoxPlotSkipsNonNumericRows(t *testing.T) {
	src := data.NewTable("pos", "median", "min", "q1", "q3", "max")
	require.NoError(t, src.Add(1, 5, 1, 3, 7, 9))
	require.NoError(t, src.Add(2, math.NaN(), 1, 3, 7, 9))
	require.NoError(t, src.Add(3, 4, 2, 3, 5, 6))

	p, err := NewBoxPlot(src, bounds, DefaultConfig())
	require.NoError(t, err)
	require.Len(t, p.Marks(), 2)
	assert.Equal(t, 0, p.Marks()[0].Row)
	assert.Equal(t, 2, p.Marks()[1].Row)
}

func TestBoxPlotRelayout(t *testing.T) {
	p, err := NewBoxPlot(boxData(t), bounds, DefaultConfig())
	require.NoError(t, err)
	before := p.Marks()[0].Bounds()

	p.SetBounds(geom.Rect{W: 480, H: 248})
	assert.Equal(t, before, p.Marks()[0].Bounds(), "nothing moves until the layout is recomputed")
	require.NoError(t, p.RecomputeLayout())
	assert.Greater(t, p.Marks()[0].Bounds().W, before.W)

	// Axis changes show up after the next layout as well.
	require.NoError(t, p.XAxis().SetRange(0, 10))
	require.NoError(t, p.RecomputeLayout())
	assert.Less(t, p.Marks()[0].Bounds().W, before.W)
}

func TestAxisTicks(t *testing.T) {
	p, err := NewBoxPlot(boxData(t), bounds, DefaultConfig())
	require.NoError(t, err)
	axes := p.AxisElements()

	ticks, err := axes[0].TickMarks()
	require.NoError(t, err)
	require.Len(t, ticks, 2)
	assert.Equal(t, 1.0, ticks[0].Value)
	assert.Equal(t, 2.0, ticks[1].Value)
	assert.InDelta(t, 76, ticks[0].Pos, 1e-9)

	ticks, err = axes[1].TickMarks()
	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(ticks), 4)
}

type recorder struct {
	rects  map[geom.Role]int
	lines  map[geom.Role]int
	labels []string
}

func newRecorder() *recorder {
	return &recorder{rects: map[geom.Role]int{}, lines: map[geom.Role]int{}}
}

func (r *recorder) Rect(_ geom.Rect, role geom.Role)           { r.rects[role]++ }
func (r *recorder) Line(_ geom.Segment, role geom.Role)        { r.lines[role]++ }
func (r *recorder) Label(_ geom.Point, s string, _ geom.Align) { r.labels = append(r.labels, s) }

func TestBoxPlotDraw(t *testing.T) {
	p, err := NewBoxPlot(boxData(t), bounds, DefaultConfig())
	require.NoError(t, err)

	rec := newRecorder()
	p.Draw(rec, geom.Identity())
	assert.Equal(t, 1, rec.rects[geom.RoleFrame])
	assert.Equal(t, 2, rec.rects[geom.RoleBox])
	assert.Equal(t, 2, rec.lines[geom.RoleAxis])
	assert.Equal(t, 4, rec.lines[geom.RoleWhisker])
	assert.Contains(t, rec.labels, "1")
	assert.Contains(t, rec.labels, "2")
}

func TestBoxPlotHitTest(t *testing.T) {
	p, err := NewBoxPlot(boxData(t), bounds, DefaultConfig())
	require.NoError(t, err)
	n := scene.NewNavigable(p)

	at := p.Marks()[0].Shape.Anchor()
	got := n.ElementsAt(at)
	require.Len(t, got, 2)
	assert.Same(t, p, got[0])
	assert.Same(t, p.Marks()[0], got[1])

	require.NoError(t, n.Navigator().SetZoom(2))
	got = n.ElementsAt(at.Mul(2))
	require.Len(t, got, 2)
	assert.Same(t, p.Marks()[0], got[1])
}

func TestPointShapeConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Shape.Kind = "point"
	p, err := NewBoxPlot(boxData(t), bounds, cfg)
	require.NoError(t, err)
	require.Len(t, p.Marks(), 2)
	assert.Equal(t, geom.Rect{X: -2, Y: -2, W: 4, H: 4}, p.Marks()[0].Shape.Bounds())

	cfg.Shape.Kind = "pie"
	_, err = NewBoxPlot(boxData(t), bounds, cfg)
	assert.ErrorIs(t, err, errs.ErrInvalidParameter)
}
