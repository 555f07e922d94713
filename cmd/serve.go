package cmd

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"go-emotive/app"
	"go-emotive/routes"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := loadConfig()
		if err != nil {
			return err
		}
		if cfg.Environment == "production" {
			gin.SetMode(gin.ReleaseMode)
		}

		a, err := app.New(cmd.Context(), cfg, log)
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.StartCron(); err != nil {
			return err
		}

		srv := routes.NewServer(cfg, routes.SetupRouter(a.RouterDeps()))

		errCh := make(chan error, 1)
		go func() {
			log.Infof("starting HTTP server on %s", srv.Addr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
			close(errCh)
		}()

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		select {
		case sig := <-sigCh:
			log.Infof("received signal: %s, shutting down", sig)
			ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
			defer cancel()
			if err := srv.Shutdown(ctx); err != nil {
				log.WithError(err).Error("HTTP server shutdown error")
			}
			log.Info("shutdown complete")
			return nil
		case err, ok := <-errCh:
			if ok {
				return err
			}
			return nil
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
