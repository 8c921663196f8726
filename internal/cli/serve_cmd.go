package cli

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/alexanderramin/vitalis/internal/httpapi"
)

func newServeCmd(app *App) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the analysis API over HTTP",
		Long: `Serve the analysis API over HTTP until interrupted.

The history lives in memory for the lifetime of the server process.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("addr") && app.Config != nil {
				addr = app.Config.HTTP.Addr
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return httpapi.ListenAndServe(ctx, addr, newAPIRouter(app), app.logger())
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "127.0.0.1:8080", "Listen address (overrides http.addr)")

	return cmd
}

// newAPIRouter builds the HTTP router over the app's services.
func newAPIRouter(app *App) *gin.Engine {
	if app.Config == nil || app.Config.Log.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	var metricsHandler http.Handler
	if app.Metrics != nil {
		metricsHandler = app.Metrics.Handler()
	}
	return httpapi.NewHandler(app.Analysis, app.History, metricsHandler, app.logger()).NewRouter()
}
