package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	list "github.com/charmbracelet/bubbles/list"
	"github.com/sirupsen/logrus"

	"plotnav/internal/data"
	"plotnav/internal/geom"
	"plotnav/internal/plot"
	"plotnav/internal/scene"
)

type fileItem struct {
	title, desc string
	path        string
}

func (f fileItem) Title() string       { return f.title }
func (f fileItem) Description() string { return f.desc }
func (f fileItem) FilterValue() string { return f.title }

func (m *Model) refreshDir() {
	entries, err := os.ReadDir(m.cwd)
	if err != nil {
		m.setStatus("read dir error", err)
		return
	}
	var items []list.Item
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(name))
		if ext == ".csv" || ext == ".tsv" || ext == ".txt" {
			items = append(items, fileItem{title: name, desc: ext, path: filepath.Join(m.cwd, name)})
		}
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].(fileItem).Title() < items[j].(fileItem).Title() })
	m.items = items
	m.l.SetItems(items)
	if len(items) == 0 {
		m.setStatus("no csv files in current directory", nil)
	}
}

// loadPath reads a CSV file and plots it.
func (m *Model) loadPath(p string) {
	m.selPath = p
	t, err := data.ReadCSVFile(p)
	if err != nil {
		m.setStatus("load error", err)
		return
	}
	m.setData(t, filepath.Base(p))
}

// setData replaces the dataset and builds a fresh plot with a reset view.
func (m *Model) setData(t *data.Table, name string) {
	box, err := data.BoxData(t)
	if err != nil {
		m.setStatus("summary error", err)
		return
	}
	p, err := plot.NewBoxPlot(box, m.layout().worldBounds(), m.plotConfig())
	if err != nil {
		m.setStatus("plot error", err)
		return
	}
	p.SetTitle(name)
	if err := p.RecomputeLayout(); err != nil {
		m.setStatus("layout error", err)
		return
	}
	m.raw, m.name = t, name
	m.plot = p
	m.view = scene.NewNavigable(p)
	m.inspectPopup = ""
	m.log.WithFields(logrus.Fields{
		"name":    name,
		"columns": t.ColumnCount(),
		"rows":    t.RowCount(),
		"marks":   len(p.Marks()),
	}).Debug("dataset loaded")
	m.setStatus(fmt.Sprintf("loaded: %s  columns=%d rows=%d", name, t.ColumnCount(), t.RowCount()), nil)
	if m.tableMode != tableHidden {
		m.refreshTable()
	}
}

// plotConfig sizes the legend in braille micro-pixels: a label rune takes
// one cell, two pixels wide.
func (m Model) plotConfig() plot.Config {
	cfg := m.cfg.Plot()
	cfg.Legend.CharWidth = 2
	cfg.Legend.SymbolSize = geom.Pt(8, 4)
	cfg.Legend.Gap = geom.Pt(4, 0)
	cfg.Legend.Inset = 2
	return cfg
}

// rebuild recreates the plot after a config change, keeping the view.
func (m *Model) rebuild() {
	if m.raw == nil {
		return
	}
	var zoom float64
	var center geom.Point
	if m.view != nil {
		zoom, center = m.view.Navigator().Zoom(), m.view.Navigator().Center()
	}
	m.setData(m.raw, m.name)
	if m.view != nil && zoom > 0 {
		_ = m.view.Navigator().SetZoom(zoom)
		m.view.Navigator().SetCenter(center)
	}
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func (m *Model) toggleLine() {
	m.cfg.Line = !m.cfg.Line
	m.rebuild()
	m.log.WithField("line", m.cfg.Line).Debug("connecting line toggled")
	m.setStatus("line "+onOff(m.cfg.Line), nil)
}

func (m *Model) toggleLegend() {
	m.cfg.Legend = !m.cfg.Legend
	m.rebuild()
	m.log.WithField("legend", m.cfg.Legend).Debug("legend toggled")
	m.setStatus("legend "+onOff(m.cfg.Legend), nil)
}

// relayout fits the plot to the current map area.
func (m *Model) relayout() {
	if m.plot == nil {
		return
	}
	m.plot.SetBounds(m.layout().worldBounds())
	if err := m.plot.RecomputeLayout(); err != nil {
		m.setStatus("layout error", err)
	}
}
