package tui

import (
	"os"

	list "github.com/charmbracelet/bubbles/list"
	table "github.com/charmbracelet/bubbles/table"
	textarea "github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"plotnav/internal/config"
	"plotnav/internal/data"
	"plotnav/internal/geom"
	"plotnav/internal/plot"
	"plotnav/internal/scene"
)

const sidebarWidth = 28

type tableMode int

const (
	tableHidden tableMode = iota
	tableStats
	tableRows
)

type Model struct {
	cfg config.Config
	log logrus.FieldLogger

	width  int
	height int

	showSidebar bool
	helpVisible bool

	status string
	failed bool

	// File explorer
	cwd     string
	l       list.Model
	items   []list.Item
	selPath string

	// Data: raw is the loaded table, the plot shows its per-column summary.
	raw  *data.Table
	name string
	plot *plot.BoxPlot
	view *scene.Navigable

	// paste mode
	pasteMode bool
	ta        textarea.Model

	// hit-test popup
	inspectPopup string

	// hover state
	hovering   bool
	hoverCellX int
	hoverCellY int
	hoverOnBox bool
	hoverData  geom.Point

	// drag state, in terminal cells
	dragging bool
	dragX    int
	dragY    int

	// statistics and rows table
	tableMode tableMode
	tbl       table.Model
}

func New(cfg config.Config, log logrus.FieldLogger) Model {
	m := Model{
		cfg:         cfg,
		log:         log,
		showSidebar: false,
		helpVisible: true,
		status:      "plotnav ready",
	}
	m.cwd, _ = os.Getwd()
	// list setup
	d := list.NewDefaultDelegate()
	d.ShowDescription = false
	m.l = list.New(nil, d, 0, 0)
	m.l.Title = "Files"
	m.l.SetShowHelp(false)
	m.l.SetShowStatusBar(false)
	m.l.SetFilteringEnabled(true)
	// textarea setup
	m.ta = textarea.New()
	m.ta.Placeholder = "Paste CSV here, one column per series. Ctrl+S to plot; Esc to cancel."
	m.ta.CharLimit = 0
	m.ta.SetWidth(50)
	m.ta.SetHeight(6)
	// table columns are set per dataset
	m.tbl = table.New(table.WithFocused(true))
	m.tbl.SetHeight(12)
	m.refreshDir()
	return m
}

// NewWithPath preloads a file's data at launch.
func NewWithPath(cfg config.Config, log logrus.FieldLogger, path string) Model {
	m := New(cfg, log)
	m.loadPath(path)
	return m
}

func (m Model) Init() tea.Cmd { return nil }

// areaLayout is the terminal geometry shared by View and mouse handling.
type areaLayout struct {
	contentW, contentH int
	originX, originY   int
	mapW, mapH         int
}

func (m Model) layout() areaLayout {
	headerHeight := 1
	footerHeight := 2
	l := areaLayout{
		contentW: max(10, m.width),
		contentH: max(4, m.height-headerHeight-footerHeight),
		originY:  headerHeight,
	}
	side := 0
	if m.showSidebar {
		side = sidebarWidth
		l.originX = sidebarWidth + 1
	}
	l.mapW = max(10, l.contentW-side-1)
	l.mapH = l.contentH
	return l
}

// worldBounds is the plot area in braille micro-pixels.
func (l areaLayout) worldBounds() geom.Rect {
	return geom.Rect{W: float64(l.mapW * 2), H: float64(l.mapH * 4)}
}

// toMicro converts a terminal cell to the micro-pixel at its center,
// relative to the map origin. ok is false outside the map.
func (l areaLayout) toMicro(cx, cy int) (geom.Point, bool) {
	x, y := cx-l.originX, cy-l.originY
	if x < 0 || y < 0 || x >= l.mapW || y >= l.mapH {
		return geom.Point{}, false
	}
	return geom.Pt(float64(x*2+1), float64(y*4+2)), true
}

// setStatus reports msg in the footer; errors are also logged.
func (m *Model) setStatus(msg string, err error) {
	if err != nil {
		m.status = msg + ": " + err.Error()
		m.failed = true
		m.log.WithError(err).Warn(msg)
		return
	}
	m.status = msg
	m.failed = false
}
