package components

import (
	"context"
	"log/slog"

	"auction-sync/internal/pkg/clock"
	"auction-sync/internal/pkg/config"
	"auction-sync/internal/pkg/jwt"
	"auction-sync/internal/usecase"
	"auction-sync/internal/usecase/commands"
	"auction-sync/internal/usecase/coordinator"
	"auction-sync/internal/usecase/queries"
	"auction-sync/internal/usecase/shared"
	"auction-sync/internal/usecase/snapshot"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseSyncModule,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseSyncModule = fx.Module("usecase/sync",
	fx.Provide(
		func(gateway shared.LedgerGateway, clk clock.Clock, logger *slog.Logger, cfg config.Config) *snapshot.Builder {
			return snapshot.NewBuilder(gateway, clk, logger, cfg.Sync.ReadConcurrency, cfg.Sync.MaxHistory)
		},
		func(cfg config.Config) coordinator.Options {
			return coordinator.OptionsFromConfig(cfg.Sync, cfg.Ledger)
		},
		fx.Annotate(
			coordinator.New,
			fx.As(fx.Self()),
			fx.As(new(queries.ViewSource)),
			fx.As(new(commands.Performer)),
		),
	),
	fx.Invoke(RunCoordinator),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewActionCommands,
		func(cfg config.Config, gateway shared.LedgerGateway, jwtService *jwt.Service) usecase.AuthUseCase {
			return usecase.NewAuthUseCase(cfg.Auth.APIKeyHash, gateway.Caller().String(), jwtService)
		},
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewViewQueries,
		queries.NewJournalQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

// RunCoordinator keeps the snapshot fresh for the lifetime of the app. A fatal loop error
// (the ledger went away) shuts the app down.
func RunCoordinator(lc fx.Lifecycle, sd fx.Shutdowner, c *coordinator.Coordinator, logger *slog.Logger) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				defer close(done)
				if err := c.Run(ctx); err != nil {
					logger.Error("resync loop stopped", slog.String("error", err.Error()))
					_ = sd.Shutdown(fx.ExitCode(1))
				}
			}()
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
			case <-stopCtx.Done():
			}
			return nil
		},
	})
}
