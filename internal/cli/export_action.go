package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/alexanderramin/vitalis/internal/cli/formatter"
	"github.com/alexanderramin/vitalis/internal/export"
	tea "github.com/charmbracelet/bubbletea"
)

// exportFormat selects the file type written by an export action.
type exportFormat int

const (
	exportCSV exportFormat = iota
	exportXLSX
)

func (f exportFormat) fileName() string {
	if f == exportXLSX {
		return export.XLSXFileName
	}
	return export.CSVFileName
}

// exportHistory writes the session history to dir and returns the file
// path and entry count. An empty history writes nothing.
func exportHistory(ctx context.Context, app *App, format exportFormat, dir string) (string, int, error) {
	n, err := app.History.Count(ctx)
	if err != nil {
		return "", 0, err
	}
	if n == 0 {
		return "", 0, nil
	}

	path := filepath.Join(dir, format.fileName())
	written, err := exportToFile(ctx, app, format, path)
	if err != nil {
		return "", 0, err
	}
	return path, written, nil
}

// exportToFile writes the session history to path. A failed export leaves
// no partial file behind.
func exportToFile(ctx context.Context, app *App, format exportFormat, path string) (int, error) {
	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("creating export file: %w", err)
	}
	written, err := writeExport(ctx, app, format, f)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return 0, errors.Join(err, os.Remove(path))
	}
	return written, nil
}

// writeExport streams the session history to w in the given format.
func writeExport(ctx context.Context, app *App, format exportFormat, w io.Writer) (int, error) {
	if format == exportXLSX {
		return app.History.ExportXLSX(ctx, w)
	}
	return app.History.ExportCSV(ctx, w)
}

// exportHistoryCmd runs an export from the TUI and reports the outcome as
// transient output.
func exportHistoryCmd(state *SharedState, format exportFormat) tea.Cmd {
	app := state.App
	return func() tea.Msg {
		path, n, err := exportHistory(context.Background(), app, format, app.exportDir())
		if err != nil {
			return cmdOutputMsg{output: errorOutput(err)}
		}
		if n == 0 {
			return cmdOutputMsg{output: "\n  " + formatter.StyleBlue.Render("No analysis history to export yet.") + "\n"}
		}
		return cmdOutputMsg{output: fmt.Sprintf("\n  %s Exported %s to %s\n",
			formatter.StyleGreen.Render("✔"),
			formatter.Bold(pluralEntries(n)),
			formatter.Bold(path))}
	}
}

func pluralEntries(n int) string {
	if n == 1 {
		return "1 entry"
	}
	return fmt.Sprintf("%d entries", n)
}
