package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"go.uber.org/zap"

	"github.com/alexanderramin/vitalis/internal/cli"
	"github.com/alexanderramin/vitalis/internal/config"
	"github.com/alexanderramin/vitalis/internal/db"
	"github.com/alexanderramin/vitalis/internal/logging"
	"github.com/alexanderramin/vitalis/internal/metrics"
	"github.com/alexanderramin/vitalis/internal/repository"
	"github.com/alexanderramin/vitalis/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	interactive := isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())

	// The shell owns the terminal, so it only logs when a log file is set.
	var logOut io.Writer = os.Stderr
	if interactive && len(os.Args) == 1 {
		logOut = nil
	}
	logger, closeLog, err := logging.FromConfig(cfg.Log, logOut)
	if err != nil {
		return err
	}
	defer closeLog()

	// In-memory store: the history lives exactly as long as this process.
	database, err := db.OpenSessionStore()
	if err != nil {
		return fmt.Errorf("opening session store: %w", err)
	}
	defer database.Close()

	historyRepo := repository.NewSQLiteHistoryRepo(database)

	observers := []service.UseCaseObserver{service.NewLogUseCaseObserver(logger)}
	var m *metrics.Metrics
	if cfg.Metrics.Enabled {
		m = metrics.New()
		observers = append(observers, service.NewMetricsUseCaseObserver(m))
	}

	app := &cli.App{
		Analysis: service.NewAnalysisService(historyRepo, nil, observers...),
		History:  service.NewHistoryService(historyRepo, observers...),
		Config:   cfg,
		Metrics:  m,
		Logger:   logger,
	}
	app.IsInteractive = func() bool { return interactive }

	logger.Debug("vitalis starting",
		zap.String("export_dir", cfg.Export.Dir),
		zap.Bool("metrics", cfg.Metrics.Enabled),
	)

	return cli.NewRootCmd(app).Execute()
}
