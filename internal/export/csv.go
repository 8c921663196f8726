package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/alexanderramin/vitalis/internal/domain"
)

// WriteCSV writes the header and one row per entry. An empty history still
// produces the header line.
func WriteCSV(w io.Writer, entries []*domain.HistoryEntry) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Columns); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}
	for _, e := range entries {
		if err := cw.Write(Record(e)); err != nil {
			return fmt.Errorf("writing csv row %d: %w", e.Seq, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flushing csv: %w", err)
	}
	return nil
}
