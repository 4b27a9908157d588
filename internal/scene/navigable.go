package scene

import (
	"plotnav/internal/geom"
	"plotnav/internal/nav"
)

// Navigable wraps a root drawable with its own Navigator.
type Navigable struct {
	root Drawable
	nav  *nav.Navigator
}

// NewNavigable binds a fresh navigator to root.
func NewNavigable(root Drawable) *Navigable {
	return &Navigable{root: root, nav: nav.New(root)}
}

func (n *Navigable) Root() Drawable            { return n.root }
func (n *Navigable) Navigator() *nav.Navigator { return n.nav }

func (n *Navigable) Bounds() geom.Rect          { return n.root.Bounds() }
func (n *Navigable) Children() []Element        { return []Element{n.root} }
func (n *Navigable) Contains(p geom.Point) bool { return n.root.Contains(p) }

// Draw paints the root with the view transform appended to tx.
func (n *Navigable) Draw(c geom.Canvas, tx geom.Matrix) {
	n.root.Draw(c, tx.Multiply(n.nav.Transform().Matrix()))
}

// ElementsAt returns every element under the screen point, outermost
// first. The point is brought into world space by undoing zoom and pan;
// children are searched even when their parent does not contain the
// point. If the root itself is missed there but the raw screen point lies
// in the root's bounds, the root is still reported first.
func (n *Navigable) ElementsAt(screen geom.Point) []Element {
	world := n.nav.ToWorld(screen, n.nav.Zoom()).Add(n.nav.Center())

	var out []Element
	for _, c := range n.root.Children() {
		out = collect(c, world, out)
	}
	if n.root.Contains(world) || n.root.Bounds().Contains(screen) {
		out = append([]Element{n.root}, out...)
	}
	return out
}

func collect(e Element, p geom.Point, out []Element) []Element {
	if e.Contains(p) {
		out = append(out, e)
	}
	for _, c := range e.Children() {
		out = collect(c, p, out)
	}
	return out
}

// PositionOf returns the view position of e's top-left corner at the
// current zoom.
func (n *Navigable) PositionOf(e Element) geom.Point {
	b := e.Bounds()
	return n.nav.ToView(geom.Pt(b.X, b.Y), n.nav.Zoom())
}
