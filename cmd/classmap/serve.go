// Serve command for the classmap CLI.
package main

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

	"github.com/mesh-intelligence/classmap/internal/server"
)

// shutdownTimeout bounds how long in-flight requests may run after a
// termination signal.
const shutdownTimeout = 10 * time.Second

var (
	flagListen     string
	flagCORSOrigin string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the classmap HTTP server",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := zap.NewProduction()
		if err != nil {
			fmt.Fprintln(os.Stderr, "serve:", err)
			os.Exit(exitSysError)
		}
		defer logger.Sync()

		backend, err := attachBackend()
		if err != nil {
			fmt.Fprintln(os.Stderr, "serve:", err)
			os.Exit(exitSysError)
		}
		defer backend.Detach()

		listen := flagListen
		if listen == "" {
			listen = configListen
		}
		if listen == "" {
			listen = defaultListen
		}

		corsOrigin := flagCORSOrigin
		if corsOrigin == "" {
			corsOrigin = configCORSOrigin
		}

		srv := &http.Server{
			Addr:    listen,
			Handler: server.New(backend, logger, corsOrigin).Handler(),
		}

		errCh := make(chan error, 1)
		go func() {
			logger.Info("server listening", zap.String("addr", listen))
			errCh <- srv.ListenAndServe()
		}()

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

		select {
		case err := <-errCh:
			if err != nil && !errors.Is(err, http.ErrServerClosed) {
				fmt.Fprintln(os.Stderr, "serve:", err)
				os.Exit(exitSysError)
			}
		case sig := <-sigCh:
			logger.Info("shutting down", zap.String("signal", sig.String()))
			ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := srv.Shutdown(ctx); err != nil {
				fmt.Fprintln(os.Stderr, "serve:", err)
				os.Exit(exitSysError)
			}
		}

		return nil
	},
}

func init() {
	serveCmd.Flags().StringVar(&flagListen, "listen", "", "HTTP listen address (default: config listen or :8080)")
	serveCmd.Flags().StringVar(&flagCORSOrigin, "cors-origin", "", "Access-Control-Allow-Origin value (default: config cors_origin or *)")
}
