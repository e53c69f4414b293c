package bootstrap

import (
	"context"
	"log/slog"

	"auction-sync/internal/infra/ledger"
	"auction-sync/internal/pkg/config"
	"auction-sync/internal/usecase/shared"

	"go.uber.org/fx"
)

var LedgerModule = fx.Module("ledger",
	fx.Provide(
		fx.Annotate(
			NewLedgerGateway,
			fx.As(new(shared.LedgerGateway)),
		),
	),
)

func NewLedgerGateway(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*ledger.Gateway, error) {
	gateway, cleanup, err := ledger.Dial(context.Background(), cfg.Ledger, logger)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			cleanup()
			return nil
		},
	})
	return gateway, nil
}
