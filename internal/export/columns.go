// Package export encodes session history as CSV or XLSX.
package export

import (
	"strconv"

	"github.com/alexanderramin/vitalis/internal/domain"
)

const (
	CSVFileName  = "analysis_history.csv"
	XLSXFileName = "analysis_history.xlsx"
	SheetName    = "History"

	// TimestampLayout renders entry timestamps in exports.
	TimestampLayout = "2006-01-02 15:04:05"
)

// Columns is the fixed header row shared by every format.
var Columns = []string{
	"timestamp", "name", "age", "gender", "height", "weight",
	"bmi", "bmr", "category", "FAF", "TUE", "CH2O", "SMOKE",
}

// Record returns e as text cells in Columns order.
func Record(e *domain.HistoryEntry) []string {
	return []string{
		e.Timestamp.Format(TimestampLayout),
		e.Name,
		strconv.Itoa(e.Age),
		string(e.Gender),
		formatFloat(e.HeightM),
		formatFloat(e.WeightKg),
		strconv.FormatFloat(e.BMI, 'f', 2, 64),
		strconv.FormatFloat(e.BMR, 'f', 2, 64),
		e.Category.String(),
		strconv.Itoa(int(e.Activity)),
		formatFloat(e.ScreenTimeHours),
		formatFloat(e.WaterLiters),
		string(e.Smoking),
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
