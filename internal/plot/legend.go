package plot

import (
	"math"
	"unicode/utf8"

	"plotnav/internal/geom"
	"plotnav/internal/scene"
	"plotnav/internal/shape"
)

// LegendConfig controls the legend box. Sizes are in world units.
type LegendConfig struct {
	Show        bool
	Orientation Orientation // Vertical stacks items, Horizontal lines them up
	Gap         geom.Point  // X between items in a row, Y between stacked items
	SymbolSize  geom.Point
	// CharWidth estimates the advance of one label rune.
	CharWidth float64
	// Inset pads the frame and separates it from the plot area edge.
	Inset float64
}

// DefaultLegendConfig returns a hidden vertical legend.
func DefaultLegendConfig() LegendConfig {
	return LegendConfig{
		Orientation: Vertical,
		Gap:         geom.Pt(8, 2),
		SymbolSize:  geom.Pt(12, 8),
		CharWidth:   6,
		Inset:       4,
	}
}

// SymbolFunc draws the sample of a data source into r.
type SymbolFunc func(r geom.Rect) []shape.Geometry

// LegendItem shows one data source as a symbol followed by its label.
type LegendItem struct {
	Label  string
	Symbol SymbolFunc

	bounds    geom.Rect
	symbolBox geom.Rect
	labelAt   geom.Point
}

func (it *LegendItem) Bounds() geom.Rect          { return it.bounds }
func (it *LegendItem) Children() []scene.Element  { return nil }
func (it *LegendItem) Contains(p geom.Point) bool { return it.bounds.Contains(p) }

// SymbolBounds is the area handed to the symbol.
func (it *LegendItem) SymbolBounds() geom.Rect { return it.symbolBox }

func (it *LegendItem) Draw(c geom.Canvas, tx geom.Matrix) {
	if it.Symbol != nil {
		for _, g := range it.Symbol(it.symbolBox) {
			g.Draw(c, tx)
		}
	}
	geom.Label(c, tx, it.labelAt, it.Label, geom.AlignRight)
}

// Legend is a framed container with one item per data source.
type Legend struct {
	*scene.Container
	cfg   LegendConfig
	items []*LegendItem
}

// NewLegend returns an empty legend.
func NewLegend(cfg LegendConfig) *Legend {
	l := &Legend{Container: scene.NewContainer(geom.Rect{}), cfg: cfg}
	l.SetLayout(scene.LayoutFunc(l.layout))
	return l
}

func (l *Legend) Config() LegendConfig { return l.cfg }

// AddItem appends an item for the source called label and returns it.
func (l *Legend) AddItem(label string, sym SymbolFunc) *LegendItem {
	it := &LegendItem{Label: label, Symbol: sym}
	l.items = append(l.items, it)
	return it
}

// RemoveItem drops the item called label. It reports whether one existed.
func (l *Legend) RemoveItem(label string) bool {
	for i, it := range l.items {
		if it.Label == label {
			l.items = append(l.items[:i], l.items[i+1:]...)
			return true
		}
	}
	return false
}

// HasItem reports whether an item called label exists.
func (l *Legend) HasItem(label string) bool {
	for _, it := range l.items {
		if it.Label == label {
			return true
		}
	}
	return false
}

func (l *Legend) Items() []*LegendItem { return l.items }

// itemSize is the symbol, one rune of spacing and the label.
func (l *Legend) itemSize(it *LegendItem) geom.Point {
	n := utf8.RuneCountInString(it.Label)
	return geom.Pt(l.cfg.SymbolSize.X+float64(n+1)*l.cfg.CharWidth, l.cfg.SymbolSize.Y)
}

// PreferredSize returns the frame size that fits every item.
func (l *Legend) PreferredSize() geom.Point {
	var w, h float64
	for i, it := range l.items {
		sz := l.itemSize(it)
		if l.cfg.Orientation == Horizontal {
			w += sz.X
			h = math.Max(h, sz.Y)
			if i > 0 {
				w += l.cfg.Gap.X
			}
			continue
		}
		w = math.Max(w, sz.X)
		h += sz.Y
		if i > 0 {
			h += l.cfg.Gap.Y
		}
	}
	return geom.Pt(w+2*l.cfg.Inset, h+2*l.cfg.Inset)
}

func (l *Legend) layout(c *scene.Container) error {
	b := c.Bounds()
	at := geom.Pt(b.X+l.cfg.Inset, b.Y+l.cfg.Inset)
	c.Clear()
	for _, it := range l.items {
		sz := l.itemSize(it)
		it.bounds = geom.Rect{X: at.X, Y: at.Y, W: sz.X, H: sz.Y}
		it.symbolBox = geom.Rect{X: at.X, Y: at.Y, W: l.cfg.SymbolSize.X, H: l.cfg.SymbolSize.Y}
		it.labelAt = geom.Pt(it.symbolBox.MaxX()+l.cfg.CharWidth, at.Y+sz.Y/2)
		c.Add(it)
		if l.cfg.Orientation == Horizontal {
			at.X += sz.X + l.cfg.Gap.X
		} else {
			at.Y += sz.Y + l.cfg.Gap.Y
		}
	}
	return nil
}

// Draw paints the frame and then every item.
func (l *Legend) Draw(c geom.Canvas, tx geom.Matrix) {
	geom.StrokeRect(c, tx, l.Bounds(), geom.RoleLegend)
	l.Container.Draw(c, tx)
}
