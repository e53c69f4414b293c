package commands

//go:generate mockgen -source=actions.go -destination=../../../tests/mock/commands/actions.go -package=commandsmock

import (
	"context"

	"auction-sync/internal/domain/auction"
	"auction-sync/internal/domain/guard"
	"auction-sync/internal/usecase/coordinator"
)

type Performer interface {
	Perform(ctx context.Context, action guard.Action) coordinator.Outcome
	Resync(ctx context.Context) (*auction.Snapshot, error)
}

// ActionCommands turn caller input into guarded ledger actions. Validation of the input
// itself is the guard's job, so raw values pass through.
type ActionCommands interface {
	PlaceBid(ctx context.Context, amount string) coordinator.Outcome
	EndAuction(ctx context.Context) coordinator.Outcome
	Withdraw(ctx context.Context, auctionID *uint64) coordinator.Outcome
	CreateAuction(ctx context.Context, product string, durationMinutes int64) coordinator.Outcome
	ChangeAdmin(ctx context.Context, newAdmin string) coordinator.Outcome
	// Resync forces a rebuild and returns the tick of the published snapshot.
	Resync(ctx context.Context) (uint64, error)
}

type actionCommandsImpl struct {
	performer Performer
}

func NewActionCommands(performer Performer) ActionCommands {
	return &actionCommandsImpl{performer: performer}
}

func (uc *actionCommandsImpl) PlaceBid(ctx context.Context, amount string) coordinator.Outcome {
	return uc.performer.Perform(ctx, guard.PlaceBid{Amount: amount})
}

func (uc *actionCommandsImpl) EndAuction(ctx context.Context) coordinator.Outcome {
	return uc.performer.Perform(ctx, guard.EndAuction{})
}

func (uc *actionCommandsImpl) Withdraw(ctx context.Context, auctionID *uint64) coordinator.Outcome {
	return uc.performer.Perform(ctx, guard.Withdraw{AuctionID: auctionID})
}

func (uc *actionCommandsImpl) CreateAuction(ctx context.Context, product string, durationMinutes int64) coordinator.Outcome {
	return uc.performer.Perform(ctx, guard.CreateAuction{Product: product, DurationMinutes: durationMinutes})
}

func (uc *actionCommandsImpl) ChangeAdmin(ctx context.Context, newAdmin string) coordinator.Outcome {
	return uc.performer.Perform(ctx, guard.ChangeAdmin{NewAdmin: newAdmin})
}

func (uc *actionCommandsImpl) Resync(ctx context.Context) (uint64, error) {
	s, err := uc.performer.Resync(ctx)
	if err != nil {
		return 0, err
	}
	return s.AsOf, nil
}
