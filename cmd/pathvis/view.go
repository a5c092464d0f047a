package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/aneeshsunganahalli/PathVisualiser/compare"
	"github.com/aneeshsunganahalli/PathVisualiser/grid"
	"github.com/aneeshsunganahalli/PathVisualiser/search"
)

// algoColors assigns one terminal color per algorithm, indexed by the
// search.Algorithm enum.
var algoColors = [search.NumAlgorithms]lipgloss.Color{
	search.DFS:           lipgloss.Color("63"),  // violet
	search.BFS:           lipgloss.Color("39"),  // blue
	search.AStar:         lipgloss.Color("42"),  // green
	search.WeightedAStar: lipgloss.Color("214"), // orange
	search.IDAStar:       lipgloss.Color("205"), // pink
}

var (
	wallStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	startStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Bold(true)
	goalStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	pathStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true)
	cursorStyle  = lipgloss.NewStyle().Reverse(true)
	statusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("81"))
	legendSwatch = lipgloss.NewStyle().Bold(true)
)

// View implements tea.Model.
func (m *model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("pathvis"))
	b.WriteString(fmt.Sprintf("  algo: %s  edit: %s  speed: %d\n\n",
		m.selected, m.mode, m.speed))

	for r := 0; r < m.g.Rows(); r++ {
		for c := 0; c < m.g.Cols(); c++ {
			p := grid.Position{Row: r, Col: c}
			if p == m.cursor {
				b.WriteString(cursorStyle.Render(cursorGlyph(m.g.At(p))))

				continue
			}
			b.WriteString(m.renderCell(p))
		}
		b.WriteByte('\n')
	}

	b.WriteByte('\n')
	b.WriteString(m.legend())
	b.WriteByte('\n')
	b.WriteString(statusStyle.Render(m.status))
	b.WriteByte('\n')
	b.WriteString(m.help.View(m.keys))

	return b.String()
}

// renderCell draws one cell: two runes wide so the maze is roughly
// square in a terminal.
func (m *model) renderCell(p grid.Position) string {
	st := compare.CellState{Type: m.g.At(p), Owners: m.owners[p], OnPath: m.overlay[p]}

	switch st.Type {
	case grid.Start:
		return startStyle.Render("S ")
	case grid.Goal:
		return goalStyle.Render("G ")
	case grid.Wall:
		return wallStyle.Render("██")
	}
	if st.OnPath {
		return pathStyle.Render("◆ ")
	}
	if stops := st.Owners.Stops(); len(stops) > 0 {
		return blendGlyph(stops)
	}

	return "  "
}

// blendGlyph renders a visited cell. A single owner gets its solid
// color; shared ownership alternates the stop colors across the two
// runes, which reads as a striped blend at maze scale.
func blendGlyph(stops []search.Algorithm) string {
	if len(stops) == 1 {
		return lipgloss.NewStyle().Foreground(algoColors[stops[0]]).Render("░░")
	}
	var b strings.Builder
	for i := 0; i < 2; i++ {
		c := algoColors[stops[i%len(stops)]]
		b.WriteString(lipgloss.NewStyle().Foreground(c).Render("▒"))
	}

	return b.String()
}

// cursorGlyph renders the cursor cell in reverse video without the
// cell's own colors, so the highlight stays readable on every cell.
func cursorGlyph(ct grid.CellType) string {
	switch ct {
	case grid.Start:
		return "S "
	case grid.Goal:
		return "G "
	case grid.Wall:
		return "##"
	default:
		return "[]"
	}
}

func (m *model) legend() string {
	var parts []string
	for _, a := range m.lineup {
		sw := legendSwatch.Foreground(algoColors[a]).Render("░░")
		parts = append(parts, sw+" "+a.String())
	}
	parts = append(parts, pathStyle.Render("◆")+" path")

	return strings.Join(parts, "   ")
}
