package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	l := m.layout()

	// Header
	header := titleStyle.Render(" plotnav ─ terminal box plot viewer ")
	if m.name != "" {
		header += dimStyle.Render(" " + m.name)
	}
	header = lipgloss.NewStyle().Width(l.contentW).Padding(0).Render(header)

	// Sidebar
	var sidebar string
	if m.showSidebar {
		m.l.SetSize(sidebarWidth-2, l.contentH-2)
		sidebar = lipgloss.NewStyle().Width(sidebarWidth).Render(m.l.View())
	}

	// Plot viewport
	var plotView string
	if m.tableMode != tableHidden {
		// Render the table centered in the plot area
		colW := 0
		for _, c := range m.tbl.Columns() {
			colW += c.Width + 3
		}
		maxW := min(l.mapW, max(32, colW))
		m.tbl.SetWidth(maxW - 4)
		m.tbl.SetHeight(min(l.mapH-2, 20))
		tableBox := boxStyle.Width(maxW).Render(m.tbl.View())
		plotView = lipgloss.Place(l.mapW, l.mapH, lipgloss.Center, lipgloss.Center, tableBox)
	} else {
		var canvas string
		if m.pasteMode {
			// size textarea to plot area
			m.ta.SetWidth(l.mapW)
			m.ta.SetHeight(min(l.mapH, 12))
			canvas = m.ta.View()
		} else {
			canvas = m.renderPlot(l.mapW, l.mapH)
		}
		plotView = lipgloss.NewStyle().Width(l.mapW).Height(l.mapH).Render(canvas)
	}

	// Hit-test popup (center-left overlay, not in plot column)
	popup := ""
	if m.inspectPopup != "" && m.tableMode == tableHidden {
		maxPopupW := max(20, min(64, l.contentW/2))
		box := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1).MaxWidth(maxPopupW).Render(m.inspectPopup)
		popup = lipgloss.Place(l.contentW, lipgloss.Height(box), lipgloss.Left, lipgloss.Top, box)
	}

	// Body row
	body := plotView
	if m.showSidebar {
		body = lipgloss.JoinHorizontal(lipgloss.Top, sidebar, " ", plotView)
	}

	// Footer / help
	help := m.renderHelp()
	st := dimStyle
	if m.failed {
		st = errStyle
	}
	status := st.Render(" " + m.status + " ")
	// data coords at bottom-right
	coords := ""
	if m.hovering && m.view != nil {
		coords = dimStyle.Render(fmt.Sprintf("  x=%.4g y=%.4g  zoom=%.2fx  ", m.hoverData.X, m.hoverData.Y, m.view.Navigator().Zoom()))
	}
	left := lipgloss.JoinHorizontal(lipgloss.Bottom, status, help)
	spacerW := max(0, l.contentW-lipgloss.Width(left)-lipgloss.Width(coords))
	right := lipgloss.Place(spacerW+lipgloss.Width(coords), 1, lipgloss.Right, lipgloss.Center, coords)
	footer := lipgloss.NewStyle().Width(l.contentW).Render(lipgloss.JoinHorizontal(lipgloss.Bottom, left, right))

	// Compose UI with popup overlay between header and body
	ui := lipgloss.JoinVertical(lipgloss.Left, header, popup, body, footer)
	return appStyle.Width(l.contentW).Height(m.height).Render(ui)
}

func (m Model) renderHelp() string {
	if !m.helpVisible {
		return ""
	}
	keys := []string{
		"↑↓←→/drag pan",
		"+/-/wheel zoom",
		"click inspect",
		"r reset",
		"Tab files",
		"p paste",
		"a stats",
		"d rows",
		"e svg",
		"l line",
		"g legend",
		"h help",
		"q quit",
	}
	return dimStyle.Render("  " + strings.Join(keys, "  "))
}
