package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vango-dev/vango-ui/app/stories"
	"github.com/vango-dev/vango-ui/internal/handlers"
	"github.com/vango-dev/vango-ui/internal/metrics"
	"github.com/vango-dev/vango-ui/internal/server"
)

func newServeCmd(flags *rootFlags) *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the component stories over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(cmd, flags)
			if err != nil {
				return err
			}
			if port != "" {
				app.cfg.Port = port
				if err := app.cfg.Validate(); err != nil {
					return err
				}
			}
			return runServe(cmd.Context(), app)
		},
	}

	cmd.Flags().StringVarP(&port, "port", "p", "", "Port to listen on (env PORT)")

	return cmd
}

func runServe(ctx context.Context, app *appContext) error {
	h := handlers.New(app.cfg, stories.Default(), app.log)
	srv := server.New(app.cfg, server.Router(h, server.Deps{
		Logger:   app.log,
		Resolver: app.resolver,
		Metrics:  metrics.New(),
	}))

	// Graceful shutdown
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errs := make(chan error, 1)
	go func() {
		app.log.WithFields(map[string]any{
			"port":        app.cfg.Port,
			"environment": app.cfg.Environment,
			"stories":     len(stories.Default().All()),
		}).Info("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errs <- err
		}
		close(errs)
	}()

	select {
	case err := <-errs:
		return err
	case <-ctx.Done():
	}
	app.log.Info("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	app.log.Info("shutdown complete")
	return nil
}
