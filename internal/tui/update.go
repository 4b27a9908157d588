package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"plotnav/internal/data"
	"plotnav/internal/export"
	"plotnav/internal/geom"
	"plotnav/internal/plot"
)

// panStep is the keyboard pan distance in micro-pixels.
const panStep = 4

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.showSidebar {
			m.l.SetSize(sidebarWidth-2, m.layout().contentH-2)
		}
		m.relayout()
	case tea.KeyMsg:
		// If list is visible and filtering, send keys to list and ignore global commands
		if m.showSidebar && m.l.FilterState() == list.Filtering {
			var cmd tea.Cmd
			m.l, cmd = m.l.Update(msg)
			return m, cmd
		}
		if m.pasteMode {
			return m.updatePaste(msg)
		}
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "esc":
			m.inspectPopup = ""
			m.tableMode = tableHidden
		case "+", "=":
			m.zoomBy(m.cfg.ZoomStep, m.viewCenter())
		case "-", "_":
			m.zoomBy(1/m.cfg.ZoomStep, m.viewCenter())
		case "r":
			if m.view != nil {
				m.view.Navigator().Reset()
				m.setStatus("view reset", nil)
			}
		case "tab":
			m.showSidebar = !m.showSidebar
			if m.showSidebar {
				m.refreshDir()
				m.l.SetSize(sidebarWidth-2, m.layout().contentH-2)
			}
			m.relayout()
		case "p":
			m.pasteMode = true
			m.ta.SetValue("")
			m.setStatus("paste mode", nil)
			m.ta.Focus()
		case "h":
			m.helpVisible = !m.helpVisible
		case "a":
			m.toggleTable(tableStats)
		case "d":
			m.toggleTable(tableRows)
		case "i":
			if m.hovering {
				m.inspect(geom.Pt(float64(m.hoverCellX*2+1), float64(m.hoverCellY*4+2)))
			} else {
				m.inspect(m.viewCenter())
			}
		case "e":
			m.exportSVG()
		case "l":
			m.toggleLine()
		case "g":
			m.toggleLegend()
		case "enter":
			if m.showSidebar {
				if it, ok := m.l.SelectedItem().(fileItem); ok {
					m.loadPath(it.path)
				}
			}
		case "up":
			m.pan(geom.Pt(0, -panStep))
		case "down":
			m.pan(geom.Pt(0, panStep))
		case "left":
			m.pan(geom.Pt(-panStep, 0))
		case "right":
			m.pan(geom.Pt(panStep, 0))
		}
	case tea.MouseMsg:
		m.updateMouse(msg)
	}
	// Pass messages to list when visible
	if m.showSidebar {
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return m, cmd
	}
	if m.tableMode != tableHidden {
		var cmd tea.Cmd
		m.tbl, cmd = m.tbl.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updatePaste(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.pasteMode = false
		m.ta.Blur()
		m.setStatus("view mode", nil)
		return m, nil
	case "ctrl+s":
		text := strings.TrimSpace(m.ta.Value())
		if text == "" {
			m.setStatus("paste: empty", nil)
			return m, nil
		}
		t, err := data.LoadCSV(strings.NewReader(text))
		if err != nil {
			m.setStatus("csv error", err)
			return m, nil
		}
		m.selPath = ""
		m.setData(t, "<pasted>")
		m.pasteMode = false
		m.ta.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.ta, cmd = m.ta.Update(msg)
	return m, cmd
}

func (m *Model) updateMouse(msg tea.MouseMsg) {
	l := m.layout()
	screen, inside := l.toMicro(msg.X, msg.Y)

	switch {
	case msg.Action == tea.MouseActionRelease:
		m.dragging = false
	case msg.Button == tea.MouseButtonWheelUp && inside:
		m.zoomBy(m.cfg.ZoomStep, screen)
	case msg.Button == tea.MouseButtonWheelDown && inside:
		m.zoomBy(1/m.cfg.ZoomStep, screen)
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft && inside:
		m.dragging = true
		m.dragX, m.dragY = msg.X, msg.Y
		m.inspect(screen)
	case msg.Action == tea.MouseActionMotion && m.dragging:
		d := geom.Pt(float64((msg.X-m.dragX)*2), float64((msg.Y-m.dragY)*4))
		m.dragX, m.dragY = msg.X, msg.Y
		m.pan(d)
	}

	// track hover over the plot area
	if !inside {
		m.hovering = false
		return
	}
	m.hovering = true
	m.hoverCellX = msg.X - l.originX
	m.hoverCellY = msg.Y - l.originY
	m.hoverData, _ = m.screenToData(screen)
	m.hoverOnBox = false
	for _, e := range m.hitTest(screen) {
		if _, ok := e.(*plot.Mark); ok {
			m.hoverOnBox = true
		}
	}
}

// viewCenter is the middle of the map area in view coordinates.
func (m Model) viewCenter() geom.Point {
	b := m.layout().worldBounds()
	return geom.Pt(b.W/2, b.H/2)
}

// zoomBy scales the zoom around screen, clamped to the configured range.
func (m *Model) zoomBy(factor float64, screen geom.Point) {
	if m.view == nil {
		return
	}
	n := m.view.Navigator()
	target := clamp(n.Zoom()*factor, m.cfg.ZoomMin, m.cfg.ZoomMax)
	if err := n.ZoomAt(screen, target/n.Zoom()); err != nil {
		m.setStatus("zoom error", err)
		return
	}
	m.log.WithFields(logrus.Fields{"zoom": n.Zoom(), "x": screen.X, "y": screen.Y}).Debug("zoom")
	m.setStatus(fmt.Sprintf("zoom: %.2fx", n.Zoom()), nil)
}

func (m *Model) pan(delta geom.Point) {
	if m.view == nil {
		return
	}
	n := m.view.Navigator()
	n.Pan(delta)
	c := n.Center()
	m.log.WithFields(logrus.Fields{"cx": c.X, "cy": c.Y}).Debug("pan")
}

// inspect hit-tests screen and shows the result in the popup.
func (m *Model) inspect(screen geom.Point) {
	hits := m.hitTest(screen)
	m.log.WithFields(logrus.Fields{"x": screen.X, "y": screen.Y, "hits": len(hits)}).Debug("hit test")
	if len(hits) == 0 {
		m.inspectPopup = ""
		m.setStatus("nothing here", nil)
		return
	}
	m.inspectPopup = m.describe(hits)
	m.setStatus(fmt.Sprintf("%d elements", len(hits)), nil)
}

// exportSVG writes the plot next to its source, or into the working
// directory for pasted data.
func (m *Model) exportSVG() {
	if m.plot == nil {
		m.setStatus("nothing to export", nil)
		return
	}
	out := filepath.Join(m.cwd, "plot.svg")
	if m.selPath != "" {
		out = strings.TrimSuffix(m.selPath, filepath.Ext(m.selPath)) + ".svg"
	}
	// The terminal plot is sized in braille pixels; export a pixel sized one.
	p, err := plot.NewBoxPlot(m.plot.Source(), geom.Rect{W: float64(m.cfg.Width), H: float64(m.cfg.Height)}, m.cfg.Plot())
	if err != nil {
		m.setStatus("export error", err)
		return
	}
	p.SetTitle(m.name)
	f, err := os.Create(out)
	if err != nil {
		m.setStatus("export error", err)
		return
	}
	err = export.WriteSVG(f, p, m.cfg.Width, m.cfg.Height)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		m.setStatus("export error", err)
		return
	}
	m.log.WithField("file", out).Info("exported svg")
	m.setStatus("exported: "+filepath.Base(out), nil)
}
