package formatter

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/vitalis/internal/domain"
)

// ChartHeight is the default number of rows in the BMI trend chart.
const ChartHeight = 10

// FormatHistoryTable renders the session history in submission order.
func FormatHistoryTable(entries []*domain.HistoryEntry, now time.Time) string {
	if len(entries) == 0 {
		return "  " + Dim("No analysis history yet.") + "\n"
	}

	headers := []string{"#", "When", "Name", "Age", "Gender", "Height", "Weight", "BMI", "BMR", "Category"}
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{
			Dim(strconv.Itoa(e.Seq)),
			HumanTimestampFrom(e.Timestamp, now),
			e.Name,
			strconv.Itoa(e.Age),
			string(e.Gender),
			fmt.Sprintf("%.2f m", e.HeightM),
			fmt.Sprintf("%.1f kg", e.WeightKg),
			CategoryStyle(e.Category).Render(FormatBMI(e.BMI)),
			fmt.Sprintf("%.2f", e.BMR),
			CategoryStyle(e.Category).Render(e.Category.String()),
		})
	}
	return RenderTable(headers, rows,
		AlignRight, AlignLeft, AlignLeft, AlignRight, AlignLeft,
		AlignRight, AlignRight, AlignRight, AlignRight, AlignLeft)
}

// TrendChartPoints converts history entries into chart samples labelled
// by submission number.
func TrendChartPoints(entries []*domain.HistoryEntry) []ChartPoint {
	points := make([]ChartPoint, len(entries))
	for i, e := range entries {
		points[i] = ChartPoint{Label: "#" + strconv.Itoa(e.Seq), Value: e.BMI, Category: e.Category}
	}
	return points
}

// FormatHistory renders the history table followed by the BMI trend chart.
func FormatHistory(entries []*domain.HistoryEntry, now time.Time) string {
	var b strings.Builder
	b.WriteString(Header("Analysis History") + "\n")
	b.WriteString(FormatHistoryTable(entries, now))
	if len(entries) == 0 {
		return b.String()
	}
	b.WriteString("\n" + Header("BMI Trend") + "\n")
	b.WriteString(RenderTrendChart(TrendChartPoints(entries), ChartHeight))
	b.WriteString("\n")
	return b.String()
}
