//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"auction-sync/internal/domain/auction"
	"auction-sync/internal/pkg/clock"
	"auction-sync/internal/pkg/errs"
	"auction-sync/internal/usecase/coordinator"
	"auction-sync/internal/usecase/queries"
	"auction-sync/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticSource struct {
	snap *auction.Snapshot
	now  time.Time
}

func (s staticSource) CurrentView() coordinator.View {
	return coordinator.View{Snapshot: s.snap, Derived: auction.Derive(s.snap, s.now)}
}

func (s staticSource) State() coordinator.State {
	return coordinator.StateIdle
}

func newQueries(b *builder.SnapshotBuilder) queries.ViewQueries {
	var snap *auction.Snapshot
	if b != nil {
		snap = b.Build()
	}
	now := builder.DefaultNow()
	return queries.NewViewQueries(staticSource{snap: snap, now: now}, clock.NewMockClock(now))
}

func TestViewQueries_Current(t *testing.T) {
	ctx := context.Background()

	t.Run("not synced", func(t *testing.T) {
		_, err := newQueries(nil).Current(ctx)
		assert.ErrorIs(t, err, queries.ErrNotSynced)
	})

	t.Run("history is newest first with refund flags", func(t *testing.T) {
		b := builder.NewSnapshotBuilder().
			WithFinished("Chair", builder.BobAddress, "3", "1").
			WithFinished("Table", builder.AliceAddress, "2", "2").
			WithCallerBid("0.5")

		v, err := newQueries(b).Current(ctx)
		require.NoError(t, err)

		assert.Equal(t, auction.PhaseOpen, v.Phase)
		assert.True(t, v.AlreadyBid)
		assert.Equal(t, "idle", v.State)
		require.NotNil(t, v.CallerBid)
		assert.Equal(t, "0.5", v.CallerBid.String())

		require.Len(t, v.History, 2)
		assert.Equal(t, "Table", v.History[0].Product)
		assert.False(t, v.History[0].RefundEligible)
		assert.Equal(t, "Chair", v.History[1].Product)
		assert.True(t, v.History[1].RefundEligible)

		require.NotNil(t, v.Current)
		assert.Equal(t, uint64(2), v.Current.ID)
		assert.Equal(t, 10*time.Minute, v.Current.Remaining)
	})

	t.Run("remaining time does not go negative", func(t *testing.T) {
		b := builder.NewSnapshotBuilder().WithCurrentEndingIn(-time.Minute)

		v, err := newQueries(b).Current(ctx)
		require.NoError(t, err)
		assert.Equal(t, auction.PhaseAwaitingFinalization, v.Phase)
		assert.Zero(t, v.Current.Remaining)
	})

	t.Run("no active auction", func(t *testing.T) {
		v, err := newQueries(builder.NewSnapshotBuilder().WithoutCurrent()).Current(ctx)
		require.NoError(t, err)
		assert.Nil(t, v.Current)
		assert.Empty(t, v.History)
		assert.NotNil(t, v.History)
	})
}

func TestViewQueries_Auction(t *testing.T) {
	ctx := context.Background()
	b := builder.NewSnapshotBuilder().
		WithFinished("Chair", builder.BobAddress, "3", "1")

	t.Run("found", func(t *testing.T) {
		r, err := newQueries(b).Auction(ctx, 0)
		require.NoError(t, err)
		assert.Equal(t, "Chair", r.Product)
		assert.True(t, builder.Identity(builder.BobAddress).Equal(auction.Identity(r.Winner)))
		assert.True(t, r.RefundEligible)
	})

	t.Run("out of range", func(t *testing.T) {
		_, err := newQueries(b).Auction(ctx, 1)
		assert.True(t, errs.Is(err, queries.ErrAuctionNotFound))
	})

	t.Run("not synced", func(t *testing.T) {
		_, err := newQueries(nil).Auction(ctx, 0)
		assert.ErrorIs(t, err, queries.ErrNotSynced)
	})
}
