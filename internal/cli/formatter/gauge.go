package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/vitalis/internal/domain"
	"github.com/alexanderramin/vitalis/internal/engine"
)

const (
	gaugeBlock = "█"
	gaugeMark  = "▼"

	// GaugeMax is the upper end of the BMI gauge scale.
	GaugeMax = 45.0
)

// GaugeBreakpoints are the BMI values labelled under the gauge.
var GaugeBreakpoints = []float64{18.5, 25, 30, 40}

// GaugePosition maps bmi onto a column of a gauge width cells wide.
// Values outside [0, GaugeMax] are clamped to the first or last cell.
func GaugePosition(bmi float64, width int) int {
	if width < 1 {
		return 0
	}
	if bmi <= 0 {
		return 0
	}
	if bmi >= GaugeMax {
		return width - 1
	}
	return min(int(bmi/GaugeMax*float64(width)), width-1)
}

// RenderGauge draws a three-line BMI scale: a marker at the user's value,
// the color-banded bar and the breakpoint labels.
func RenderGauge(bmi float64, width int) string {
	if width < 10 {
		width = 10
	}
	cat := engine.Classify(bmi)

	// Marker row, with the value label on whichever side has room.
	pos := GaugePosition(bmi, width)
	label := " " + FormatBMI(bmi)
	marker := strings.Repeat(" ", pos) + CategoryStyle(cat).Bold(true).Render(gaugeMark+label)
	if pos+1+len(label) > width {
		start := max(pos-len(label), 0)
		marker = strings.Repeat(" ", start) + CategoryStyle(cat).Bold(true).Render(FormatBMI(bmi)+" "+gaugeMark)
	}

	// Bar row, rendered as runs of same-category cells.
	var bar strings.Builder
	runCat := domain.Category(-1)
	runLen := 0
	flush := func() {
		if runLen > 0 {
			bar.WriteString(CategoryStyle(runCat).Render(strings.Repeat(gaugeBlock, runLen)))
		}
	}
	for i := 0; i < width; i++ {
		c := engine.Classify((float64(i) + 0.5) * GaugeMax / float64(width))
		if c != runCat {
			flush()
			runCat, runLen = c, 0
		}
		runLen++
	}
	flush()

	return marker + "\n" + bar.String() + "\n" + Dim(gaugeTicks(width))
}

// gaugeTicks lays out "0", each breakpoint and the scale maximum under the
// bar, skipping labels that would overlap their left neighbour.
func gaugeTicks(width int) string {
	line := []rune(strings.Repeat(" ", width+4))
	next := 0
	place := func(col int, text string) {
		if col < next {
			return
		}
		for i, r := range text {
			if col+i < len(line) {
				line[col+i] = r
			}
		}
		next = col + len(text) + 1
	}

	place(0, "0")
	for _, bp := range GaugeBreakpoints {
		place(GaugePosition(bp, width), fmt.Sprintf("%g", bp))
	}
	place(width-2, fmt.Sprintf("%g", GaugeMax))
	return strings.TrimRight(string(line), " ")
}
