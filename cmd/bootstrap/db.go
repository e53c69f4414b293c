package bootstrap

import (
	"context"
	"log/slog"

	"auction-sync/internal/infra/db"
	"auction-sync/internal/infra/repository"
	"auction-sync/internal/pkg/config"
	"auction-sync/internal/usecase/shared"

	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewJournal,
	),
)

// NewJournal returns the postgres-backed journal, or a no-op one when DB_ENABLED is false.
func NewJournal(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (shared.ActionJournal, error) {
	if !cfg.DB.Enabled {
		logger.Info("action journal disabled")
		return shared.NopJournal{}, nil
	}

	ctx := context.Background()
	pool, cleanup, err := db.Connect(ctx, cfg.DB)
	if err != nil {
		return nil, err
	}
	if err := db.Migrate(ctx, pool); err != nil {
		cleanup()
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			cleanup()
			return nil
		},
	})
	return repository.NewJournalRepository(pool), nil
}
