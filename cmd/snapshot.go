package main

import (
	"context"
	"encoding/json"
	"time"

	"auction-sync/cmd/bootstrap"
	"auction-sync/internal/domain/auction"
	resdto "auction-sync/internal/handler/dto/response"
	"auction-sync/internal/infra/ledger"
	"auction-sync/internal/pkg/clock"
	"auction-sync/internal/pkg/config"
	"auction-sync/internal/usecase/coordinator"
	"auction-sync/internal/usecase/queries"
	"auction-sync/internal/usecase/snapshot"

	"github.com/spf13/cobra"
)

var snapshotTimeout time.Duration

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Read the ledger once and print the derived view as JSON",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.LoadReadConfig()
		if err != nil {
			return err
		}
		logger := bootstrap.NewLogger(cfg.Log)

		ctx, cancel := context.WithTimeout(cmd.Context(), snapshotTimeout)
		defer cancel()

		gateway, closeGateway, err := ledger.Dial(ctx, cfg.Ledger, logger)
		if err != nil {
			return err
		}
		defer closeGateway()

		clk := clock.NewRealClock()
		snap, err := snapshot.NewBuilder(gateway, clk, logger, cfg.Sync.ReadConcurrency, cfg.Sync.MaxHistory).Build(ctx, 1)
		if err != nil {
			return err
		}

		view, err := queries.NewViewQueries(staticSource{snap: snap, clk: clk}, clk).Current(ctx)
		if err != nil {
			return err
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(resdto.FromSyncView(view))
	},
}

func init() {
	snapshotCmd.Flags().DurationVar(&snapshotTimeout, "timeout", 30*time.Second, "overall deadline for dialing and reading")
}

// staticSource serves a single snapshot that is never refreshed.
type staticSource struct {
	snap *auction.Snapshot
	clk  clock.Clock
}

func (s staticSource) CurrentView() coordinator.View {
	return coordinator.View{Snapshot: s.snap, Derived: auction.Derive(s.snap, s.clk.Now())}
}

func (staticSource) State() coordinator.State {
	return coordinator.StateIdle
}
