package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Align selects how a table column pads its cells.
type Align int

const (
	AlignLeft Align = iota
	AlignRight
)

// RenderTable renders an aligned table with a header separator line.
// Column widths are the widest visible cell in each column, so styled
// cells line up. aligns may be shorter than headers; missing entries are
// left-aligned.
func RenderTable(headers []string, rows [][]string, aligns ...Align) string {
	if len(headers) == 0 {
		return ""
	}
	cols := len(headers)

	widths := make([]int, cols)
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i := 0; i < cols && i < len(row); i++ {
			widths[i] = max(widths[i], lipgloss.Width(row[i]))
		}
	}

	align := func(i int) Align {
		if i < len(aligns) {
			return aligns[i]
		}
		return AlignLeft
	}
	pad := func(i int, cell string) string {
		if align(i) == AlignRight {
			return padLeft(cell, widths[i])
		}
		if i == cols-1 {
			return cell
		}
		return padRight(cell, widths[i])
	}

	const colGap = "  "
	var b strings.Builder

	headerCells := make([]string, cols)
	for i, h := range headers {
		headerCells[i] = pad(i, StyleHeader.Render(h))
	}
	b.WriteString(strings.Join(headerCells, colGap) + "\n")

	seps := make([]string, cols)
	for i, w := range widths {
		seps[i] = StyleDim.Render(strings.Repeat("─", w))
	}
	b.WriteString(strings.Join(seps, colGap) + "\n")

	for _, row := range rows {
		cells := make([]string, cols)
		for i := 0; i < cols; i++ {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			cells[i] = pad(i, cell)
		}
		b.WriteString(strings.Join(cells, colGap) + "\n")
	}

	return b.String()
}
