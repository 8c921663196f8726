package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/alexanderramin/vitalis/internal/config"
	"github.com/alexanderramin/vitalis/internal/metrics"
	"github.com/alexanderramin/vitalis/internal/service"
)

// App holds references to all services and settings used by CLI commands.
type App struct {
	Analysis service.AnalysisService
	History  service.HistoryService

	Config  *config.Config
	Metrics *metrics.Metrics // nil when metrics are disabled
	Logger  *zap.Logger

	// IsInteractive reports whether stdin is a terminal. Nil means no.
	IsInteractive func() bool
}

func (a *App) exportDir() string {
	if a.Config == nil || a.Config.Export.Dir == "" {
		return "."
	}
	return a.Config.Export.Dir
}

func (a *App) logger() *zap.Logger {
	if a.Logger == nil {
		return zap.NewNop()
	}
	return a.Logger
}

// NewRootCmd creates the top-level "vitalis" command and registers all
// subcommands against the provided App. Run without a subcommand on a
// terminal it opens the interactive shell.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "vitalis",
		Short:         "BMI and BMR analyser with lifestyle recommendations",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive == nil || !app.IsInteractive() {
				return cmd.Help()
			}
			return runShell(app)
		},
	}

	root.AddCommand(
		newAnalyzeCmd(app),
		newServeCmd(app),
		newVersionCmd(),
	)

	return root
}

// runShell starts the full-screen interactive shell and blocks until it exits.
func runShell(app *App) error {
	app.logger().Debug("starting interactive shell")
	p := tea.NewProgram(newAppModel(app), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}
