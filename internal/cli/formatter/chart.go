package formatter

import (
	"fmt"
	"math"
	"strings"

	"github.com/alexanderramin/vitalis/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

const (
	chartPoint   = "●"
	chartLink    = "·"
	chartRefLine = "┄"
	chartStep    = 4 // columns per sample
)

// ChartPoint is one sample of the BMI trend chart.
type ChartPoint struct {
	Label    string
	Value    float64
	Category domain.Category
}

// RenderTrendChart draws values as a terminal line chart, one sample per
// column group in input order. Category breakpoints inside the plotted range
// are drawn as dim reference lines.
func RenderTrendChart(points []ChartPoint, height int) string {
	if len(points) == 0 {
		return Dim("No data yet.")
	}
	if height < 3 {
		height = 3
	}

	lo, hi := points[0].Value, points[0].Value
	for _, p := range points[1:] {
		lo = math.Min(lo, p.Value)
		hi = math.Max(hi, p.Value)
	}
	// Keep a minimum span so a flat series still gets a readable axis.
	if hi-lo < 2 {
		mid := (hi + lo) / 2
		lo, hi = mid-1, mid+1
	}

	rowOf := func(v float64) int {
		return int(math.Round((hi - v) / (hi - lo) * float64(height-1)))
	}

	cols := (len(points)-1)*chartStep + 1
	grid := make([][]string, height)
	for r := range grid {
		grid[r] = make([]string, cols)
		for c := range grid[r] {
			grid[r][c] = " "
		}
	}

	for _, bp := range GaugeBreakpoints {
		if bp <= lo || bp >= hi {
			continue
		}
		r := rowOf(bp)
		for c := range grid[r] {
			grid[r][c] = Dim(chartRefLine)
		}
	}

	for i, p := range points {
		col := i * chartStep
		if i > 0 {
			prev := points[i-1]
			a, b := float64(rowOf(prev.Value)), float64(rowOf(p.Value))
			for k := 1; k < chartStep; k++ {
				r := int(math.Round(a + (b-a)*float64(k)/chartStep))
				grid[r][col-chartStep+k] = Dim(chartLink)
			}
		}
		grid[rowOf(p.Value)][col] = CategoryStyle(p.Category).Bold(true).Render(chartPoint)
	}

	const axisWidth = 6
	var b strings.Builder
	for r, row := range grid {
		axis := strings.Repeat(" ", axisWidth) + " │"
		if r == 0 || r == height-1 || r == (height-1)/2 {
			v := hi - float64(r)*(hi-lo)/float64(height-1)
			axis = fmt.Sprintf("%*.1f ┤", axisWidth, v)
		}
		b.WriteString(Dim(axis) + strings.Join(row, "") + "\n")
	}
	b.WriteString(Dim(strings.Repeat(" ", axisWidth) + " └" + strings.Repeat("─", cols)))
	b.WriteString("\n")

	// X labels: first and last sample.
	first := points[0].Label
	xlabels := strings.Repeat(" ", axisWidth+2) + first
	if len(points) > 1 {
		last := points[len(points)-1].Label
		gap := cols - lipgloss.Width(first) - len(last)
		if gap < 1 {
			gap = 1
		}
		xlabels += strings.Repeat(" ", gap) + last
	}
	b.WriteString(Dim(xlabels))
	return b.String()
}
