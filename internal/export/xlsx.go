package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/alexanderramin/vitalis/internal/domain"
)

// WriteXLSX writes a workbook with a single History sheet. Numeric columns
// are stored as numbers so spreadsheets can chart them directly.
func WriteXLSX(w io.Writer, entries []*domain.HistoryEntry) error {
	f := excelize.NewFile()
	defer f.Close()

	// Rename the default sheet instead of adding a second one.
	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return fmt.Errorf("naming sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#DDEBF7"}, Pattern: 1},
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return fmt.Errorf("creating header style: %w", err)
	}

	for i, name := range Columns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(SheetName, cell, name); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}
	last, _ := excelize.CoordinatesToCellName(len(Columns), 1)
	if err := f.SetCellStyle(SheetName, "A1", last, headerStyle); err != nil {
		return fmt.Errorf("styling header: %w", err)
	}

	for r, e := range entries {
		row := []any{
			e.Timestamp.Format(TimestampLayout),
			e.Name,
			e.Age,
			string(e.Gender),
			e.HeightM,
			e.WeightKg,
			e.BMI,
			e.BMR,
			e.Category.String(),
			int(e.Activity),
			e.ScreenTimeHours,
			e.WaterLiters,
			string(e.Smoking),
		}
		cell, _ := excelize.CoordinatesToCellName(1, r+2)
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return fmt.Errorf("writing row %d: %w", e.Seq, err)
		}
	}

	if err := f.SetColWidth(SheetName, "A", "A", 20); err != nil {
		return fmt.Errorf("sizing columns: %w", err)
	}
	if err := f.SetColWidth(SheetName, "I", "I", 22); err != nil {
		return fmt.Errorf("sizing columns: %w", err)
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}
