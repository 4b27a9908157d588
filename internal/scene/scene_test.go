package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"plotnav/internal/geom"
)

type leaf struct {
	name   string
	bounds geom.Rect
	drawn  int
}

func (l *leaf) Bounds() geom.Rect          { return l.bounds }
func (l *leaf) Children() []Element        { return nil }
func (l *leaf) Contains(p geom.Point) bool { return l.bounds.Contains(p) }
func (l *leaf) Draw(c geom.Canvas, tx geom.Matrix) {
	l.drawn++
	geom.StrokeRect(c, tx, l.bounds, geom.RoleBox)
}

type recorder struct{ rects []geom.Rect }

func (r *recorder) Rect(x geom.Rect, _ geom.Role) { r.rects = append(r.rects, x) }
func (r *recorder) Line(geom.Segment, geom.Role)  {}

func tree() (*Container, *Container, *leaf, *leaf) {
	root := NewContainer(geom.Rect{W: 200, H: 200})
	group := NewContainer(geom.Rect{X: 10, Y: 10, W: 50, H: 50})
	inside := &leaf{name: "inside", bounds: geom.Rect{X: 20, Y: 20, W: 10, H: 10}}
	// Outside its parent's bounds on purpose.
	outside := &leaf{name: "outside", bounds: geom.Rect{X: 100, Y: 100, W: 20, H: 20}}
	group.Add(inside)
	group.Add(outside)
	root.Add(group)
	return root, group, inside, outside
}

func TestElementsAtOutermostFirst(t *testing.T) {
	root, group, inside, _ := tree()
	n := NewNavigable(root)

	got := n.ElementsAt(geom.Pt(25, 25))
	require.Len(t, got, 3)
	assert.Same(t, root, got[0])
	assert.Same(t, group, got[1])
	assert.Same(t, inside, got[2])
}

func TestElementsAtIgnoresParentClip(t *testing.T) {
	root, group, _, outside := tree()
	n := NewNavigable(root)

	got := n.ElementsAt(geom.Pt(110, 110))
	require.Len(t, got, 2)
	assert.Same(t, root, got[0])
	assert.Same(t, outside, got[1])
	assert.NotContains(t, got, Element(group))
}

func TestElementsAtZoomed(t *testing.T) {
	root, group, inside, _ := tree()
	n := NewNavigable(root)
	require.NoError(t, n.Navigator().SetZoom(2))

	got := n.ElementsAt(geom.Pt(50, 50))
	require.Len(t, got, 3)
	assert.Same(t, inside, got[2])
	assert.Same(t, group, got[1])

	// Pan is undone as well.
	n.Navigator().SetCenter(geom.Pt(90, 90))
	got = n.ElementsAt(geom.Pt(40, 40))
	require.Len(t, got, 2)
	assert.Equal(t, "outside", got[1].(*leaf).name)
}

func TestElementsAtRootFallback(t *testing.T) {
	root, _, _, _ := tree()
	n := NewNavigable(root)
	require.NoError(t, n.Navigator().SetZoom(0.5))

	// (190,190) becomes (380,380) in world space, outside every element.
	got := n.ElementsAt(geom.Pt(190, 190))
	require.Len(t, got, 1)
	assert.Same(t, root, got[0])

	assert.Empty(t, n.ElementsAt(geom.Pt(250, 250)))
}

func TestPositionOf(t *testing.T) {
	root, _, inside, _ := tree()
	n := NewNavigable(root)
	require.NoError(t, n.Navigator().SetZoom(3))
	n.Navigator().SetCenter(geom.Pt(5, 5))
	assert.Equal(t, geom.Pt(60, 60), n.PositionOf(inside))
}

func TestNavigableDraw(t *testing.T) {
	root, _, inside, outside := tree()
	n := NewNavigable(root)
	require.NoError(t, n.Navigator().SetZoom(2))
	n.Navigator().SetCenter(geom.Pt(10, 10))

	var rec recorder
	n.Draw(&rec, geom.Identity())
	assert.Equal(t, 1, inside.drawn)
	assert.Equal(t, 1, outside.drawn)
	require.Len(t, rec.rects, 2)
	assert.Equal(t, geom.Rect{X: 20, Y: 20, W: 20, H: 20}, rec.rects[0])
}

func TestRecomputeLayout(t *testing.T) {
	c := NewContainer(geom.Rect{W: 100, H: 40})
	l := &leaf{}
	c.Add(l)
	c.SetLayout(LayoutFunc(func(c *Container) error {
		for _, d := range c.Drawables() {
			d.(*leaf).bounds = c.Bounds().Inset(5)
		}
		return nil
	}))

	require.NoError(t, c.RecomputeLayout())
	assert.Equal(t, geom.Rect{X: 5, Y: 5, W: 90, H: 30}, l.bounds)

	c.SetBounds(geom.Rect{W: 20, H: 20})
	assert.Equal(t, geom.Rect{X: 5, Y: 5, W: 90, H: 30}, l.bounds, "layout only runs on request")
	require.NoError(t, c.RecomputeLayout())
	assert.Equal(t, geom.Rect{X: 5, Y: 5, W: 10, H: 10}, l.bounds)
}
