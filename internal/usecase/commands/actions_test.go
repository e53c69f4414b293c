//go:build unit

package commands_test

import (
	"context"
	"testing"

	"auction-sync/internal/domain/auction"
	"auction-sync/internal/domain/guard"
	"auction-sync/internal/pkg/errs"
	"auction-sync/internal/usecase/commands"
	"auction-sync/internal/usecase/coordinator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockPerformer struct {
	mock.Mock
}

func (m *MockPerformer) Perform(ctx context.Context, action guard.Action) coordinator.Outcome {
	return m.Called(ctx, action).Get(0).(coordinator.Outcome)
}

func (m *MockPerformer) Resync(ctx context.Context) (*auction.Snapshot, error) {
	args := m.Called(ctx)
	s, _ := args.Get(0).(*auction.Snapshot)
	return s, args.Error(1)
}

func TestActionCommands(t *testing.T) {
	ctx := context.Background()
	id := uint64(3)
	confirmed := coordinator.Outcome{Kind: coordinator.OutcomeConfirmed}

	tests := []struct {
		name   string
		call   func(commands.ActionCommands) coordinator.Outcome
		action guard.Action
	}{
		{
			name:   "place bid",
			call:   func(c commands.ActionCommands) coordinator.Outcome { return c.PlaceBid(ctx, "1.5") },
			action: guard.PlaceBid{Amount: "1.5"},
		},
		{
			name:   "end auction",
			call:   func(c commands.ActionCommands) coordinator.Outcome { return c.EndAuction(ctx) },
			action: guard.EndAuction{},
		},
		{
			name:   "withdraw",
			call:   func(c commands.ActionCommands) coordinator.Outcome { return c.Withdraw(ctx, &id) },
			action: guard.Withdraw{AuctionID: &id},
		},
		{
			name:   "create auction",
			call:   func(c commands.ActionCommands) coordinator.Outcome { return c.CreateAuction(ctx, "Vase", 30) },
			action: guard.CreateAuction{Product: "Vase", DurationMinutes: 30},
		},
		{
			name:   "change admin",
			call:   func(c commands.ActionCommands) coordinator.Outcome { return c.ChangeAdmin(ctx, "0xabc") },
			action: guard.ChangeAdmin{NewAdmin: "0xabc"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := new(MockPerformer)
			p.On("Perform", mock.Anything, tt.action).Return(confirmed).Once()

			out := tt.call(commands.NewActionCommands(p))

			assert.Equal(t, confirmed, out)
			p.AssertExpectations(t)
		})
	}

	t.Run("resync returns the published tick", func(t *testing.T) {
		p := new(MockPerformer)
		p.On("Resync", mock.Anything).Return(&auction.Snapshot{AsOf: 9}, nil)

		asOf, err := commands.NewActionCommands(p).Resync(ctx)
		require.NoError(t, err)
		assert.Equal(t, uint64(9), asOf)
	})

	t.Run("resync failure", func(t *testing.T) {
		p := new(MockPerformer)
		p.On("Resync", mock.Anything).Return(nil, errs.ErrPartialRead)

		_, err := commands.NewActionCommands(p).Resync(ctx)
		assert.ErrorIs(t, err, errs.ErrPartialRead)
	})
}
