package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/SultanDF/exam-dss/pkg/api"
)

// HTTP server timeouts
const (
	serverIdleTimeout     = time.Minute
	serverReadTimeout     = 10 * time.Second
	serverWriteTimeout    = 30 * time.Second
	serverShutdownTimeout = 10 * time.Second
)

// ServeCmd creates the serve command
func ServeCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		Long: `Serve the scheduling API over HTTP until interrupted. The solution
history endpoints need a configured database; everything else works
without one.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			addr, _ := cmd.Flags().GetString("addr")
			if addr == "" {
				addr = app.Cfg.Server.Addr
			}

			handler := api.NewHandler(app.Cfg, app.Store(), app.Logger)
			handler.RegisterRoutes()

			server := &http.Server{
				Addr:         addr,
				Handler:      handler.Mux,
				IdleTimeout:  serverIdleTimeout,
				ReadTimeout:  serverReadTimeout,
				WriteTimeout: serverWriteTimeout,
			}

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

			serveErr := make(chan error, 1)
			go func() {
				app.Logger.Info("Starting HTTP API", zap.String("addr", addr))
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					serveErr <- err
				}
			}()

			select {
			case err := <-serveErr:
				return fmt.Errorf("server failed: %w", err)
			case <-quit:
			}

			app.Logger.Info("Shutting down HTTP API")
			ctx, cancel := context.WithTimeout(app.Ctx, serverShutdownTimeout)
			defer cancel()
			if err := server.Shutdown(ctx); err != nil {
				return fmt.Errorf("server shutdown failed: %w", err)
			}
			app.Logger.Info("HTTP API stopped")

			return nil
		},
	}

	cmd.Flags().String("addr", "", "Listen address (default from config)")

	return cmd
}
