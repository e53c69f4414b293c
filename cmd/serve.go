package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"auction-sync/cmd/bootstrap"
	"auction-sync/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API and the resync loop",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app := fx.New(
			bootstrap.Module,
			fx.Provide(func() *gin.Engine {
				return gin.New()
			}),
			fx.Invoke(startServer),
		)

		if err := app.Start(cmd.Context()); err != nil {
			return err
		}

		sig := <-app.Wait()

		stopCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := app.Stop(stopCtx); err != nil {
			slog.Error("failed to stop application", "error", err)
		}

		if sig.ExitCode != 0 {
			return errors.New("application stopped with a fatal error")
		}
		slog.Info("application stopped")
		return nil
	},
}

// @title           auction-sync
// @version         1.0
// @description     Read model and guarded actions for an on-chain auction contract.

// @BasePath  /
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func startServer(lc fx.Lifecycle, engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			gin.EnableJsonDecoderDisallowUnknownFields()
			logger.Info("starting server", "address", srv.Addr, "mode", gin.Mode())
			go func() {
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Error("server failed", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("stopping server")
			return srv.Shutdown(ctx)
		},
	})
}
