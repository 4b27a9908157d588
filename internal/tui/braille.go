package tui

import (
	"math"

	"plotnav/internal/geom"
)

// brailleBuf rasterizes onto a 2x4 micro-pixel grid per terminal cell.
// It implements geom.Canvas and geom.Labeler in micro-pixel coordinates.
type brailleBuf struct {
	w, h   int       // in cells
	m      [][]uint8 // per-cell 8-bit mask
	labels []label
}

type label struct {
	cx, cy int
	text   string
}

func newBrailleBuf(w, h int) *brailleBuf {
	m := make([][]uint8, h)
	for i := range m {
		m[i] = make([]uint8, w)
	}
	return &brailleBuf{w: w, h: h, m: m}
}

// bounds is the buffer area in micro-pixels.
func (b *brailleBuf) bounds() geom.Rect {
	return geom.Rect{W: float64(b.w * 2), H: float64(b.h * 4)}
}

// setPixel sets a micro-pixel at micro coords (2x4 per cell)
func (b *brailleBuf) setPixel(mx, my int) {
	if mx < 0 || my < 0 {
		return
	}
	cx, rx := mx/2, mx%2
	cy, ry := my/4, my%4
	if cy >= b.h || cx >= b.w {
		return
	}
	b.m[cy][cx] |= dots[rx][ry]
}

// dots[column][row] is the braille bit of a micro-pixel within its cell.
var dots = [2][4]uint8{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

// drawLineMicro draws a line on the microgrid using Bresenham
func (b *brailleBuf) drawLineMicro(x0, y0, x1, y1 int) {
	dx := abs(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -abs(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		b.setPixel(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func (b *brailleBuf) Line(s geom.Segment, _ geom.Role) {
	// Zoomed geometry can lie far outside the buffer; clip before walking it.
	s, ok := clip(s, b.bounds().Inset(-1))
	if !ok {
		return
	}
	b.drawLineMicro(micro(s.A.X), micro(s.A.Y), micro(s.B.X), micro(s.B.Y))
}

func (b *brailleBuf) Rect(r geom.Rect, role geom.Role) {
	x0, y0 := r.X, r.Y
	x1, y1 := r.X+r.W, r.Y+r.H
	b.Line(geom.Seg(x0, y0, x1, y0), role)
	b.Line(geom.Seg(x1, y0, x1, y1), role)
	b.Line(geom.Seg(x1, y1, x0, y1), role)
	b.Line(geom.Seg(x0, y1, x0, y0), role)
}

func (b *brailleBuf) Label(p geom.Point, text string, a geom.Align) {
	n := len([]rune(text))
	cx := int(math.Floor(p.X / 2))
	cy := int(math.Floor(p.Y / 4))
	switch a {
	case geom.AlignBelow:
		cy = int(math.Ceil(p.Y / 4))
		cx -= n / 2
	case geom.AlignLeft:
		cx -= n
	}
	b.labels = append(b.labels, label{cx: cx, cy: cy, text: text})
}

func micro(v float64) int { return int(math.Floor(v)) }

// clip cuts s to r with the Liang-Barsky algorithm.
func clip(s geom.Segment, r geom.Rect) (geom.Segment, bool) {
	d := s.B.Sub(s.A)
	t0, t1 := 0.0, 1.0
	edges := [4][2]float64{
		{-d.X, s.A.X - r.MinX()},
		{d.X, r.MaxX() - s.A.X},
		{-d.Y, s.A.Y - r.MinY()},
		{d.Y, r.MaxY() - s.A.Y},
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return s, false
			}
			continue
		}
		t := q / p
		if p < 0 {
			t0 = math.Max(t0, t)
		} else {
			t1 = math.Min(t1, t)
		}
		if t0 > t1 {
			return s, false
		}
	}
	return geom.Segment{A: s.A.Add(d.Mul(t0)), B: s.A.Add(d.Mul(t1))}, true
}

func (b *brailleBuf) toLines() []string {
	out := make([]string, b.h)
	for y := 0; y < b.h; y++ {
		row := make([]rune, b.w)
		for x := 0; x < b.w; x++ {
			mask := b.m[y][x]
			if mask == 0 {
				row[x] = ' '
			} else {
				row[x] = rune(0x2800 + int(mask))
			}
		}
		for _, l := range b.labels {
			if l.cy != y {
				continue
			}
			for i, r := range []rune(l.text) {
				if x := l.cx + i; x >= 0 && x < b.w {
					row[x] = r
				}
			}
		}
		out[y] = string(row)
	}
	return out
}
