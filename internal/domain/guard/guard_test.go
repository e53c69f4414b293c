//go:build unit

package guard_test

import (
	"testing"
	"time"

	"auction-sync/internal/domain/auction"
	"auction-sync/internal/domain/guard"
	"auction-sync/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	action guard.Action
	mutate func(*builder.SnapshotBuilder)
	reason guard.Reason
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewSnapshotBuilder()
			if tc.mutate != nil {
				b.With(tc.mutate)
			}
			s, v := b.BuildView()

			d := guard.Evaluate(tc.action, s, v)

			assert.Equal(t, tc.reason, d.Reason)
			assert.Equal(t, tc.reason == "", d.Approved())
		})
	}
}

func uid(v uint64) *uint64 { return &v }

func TestEvaluate_Session(t *testing.T) {
	t.Run("no snapshot yet", func(t *testing.T) {
		d := guard.Evaluate(guard.PlaceBid{Amount: "1"}, nil, auction.Derive(nil, time.Now()))
		assert.Equal(t, guard.ReasonNotSynced, d.Reason)
	})

	runCases(t, []testCase{
		{
			name:   "read-only session cannot act",
			action: guard.PlaceBid{Amount: "1"},
			mutate: func(b *builder.SnapshotBuilder) { b.WithCaller("") },
			reason: guard.ReasonNoIdentity,
		},
		{
			name:   "unknown action",
			action: unknownAction{},
			reason: guard.ReasonInvalidInput,
		},
	})
}

type unknownAction struct{}

func (unknownAction) Kind() guard.Kind { return "unknown" }

func TestEvaluate_PlaceBid(t *testing.T) {
	runCases(t, []testCase{
		{name: "open auction", action: guard.PlaceBid{Amount: "1.0"}},
		{name: "zero amount", action: guard.PlaceBid{Amount: "0"}, reason: guard.ReasonInvalidAmount},
		{name: "negative amount", action: guard.PlaceBid{Amount: "-1"}, reason: guard.ReasonInvalidAmount},
		{name: "not a number", action: guard.PlaceBid{Amount: "one"}, reason: guard.ReasonInvalidAmount},
		{name: "empty amount", action: guard.PlaceBid{Amount: ""}, reason: guard.ReasonInvalidAmount},
		{
			name:   "invalid amount is reported before a closed phase",
			action: guard.PlaceBid{Amount: "0"},
			mutate: func(b *builder.SnapshotBuilder) { b.WithoutCurrent() },
			reason: guard.ReasonInvalidAmount,
		},
		{
			name:   "past end time",
			action: guard.PlaceBid{Amount: "1.0"},
			mutate: func(b *builder.SnapshotBuilder) { b.WithCurrentEndingIn(-time.Second) },
			reason: guard.ReasonPhaseClosed,
		},
		{
			name:   "no active auction",
			action: guard.PlaceBid{Amount: "1.0"},
			mutate: func(b *builder.SnapshotBuilder) { b.WithoutCurrent() },
			reason: guard.ReasonPhaseClosed,
		},
		{
			name:   "already bid",
			action: guard.PlaceBid{Amount: "2"},
			mutate: func(b *builder.SnapshotBuilder) { b.WithCallerBid("1") },
			reason: guard.ReasonDuplicateBid,
		},
		{
			name:   "zero recorded bid is not a duplicate",
			action: guard.PlaceBid{Amount: "2"},
			mutate: func(b *builder.SnapshotBuilder) { b.WithCallerBid("0") },
		},
	})

	t.Run("duplicate is caught even with a stale view", func(t *testing.T) {
		s := builder.NewSnapshotBuilder().WithCallerBid("1").Build()
		v := auction.View{Phase: auction.PhaseOpen}

		d := guard.Evaluate(guard.PlaceBid{Amount: "2"}, s, v)

		assert.Equal(t, guard.ReasonDuplicateBid, d.Reason)
	})

	t.Run("approved bid carries the parsed amount", func(t *testing.T) {
		s, v := builder.NewSnapshotBuilder().BuildView()

		d := guard.Evaluate(guard.PlaceBid{Amount: " 0.25 "}, s, v)

		require.True(t, d.Approved())
		assert.Equal(t, guard.KindPlaceBid, d.Submission.Kind)
		assert.Equal(t, "250000000000000000", d.Submission.Amount.Wei().String())
	})
}

func TestEvaluate_EndAuction(t *testing.T) {
	runCases(t, []testCase{
		{
			name:   "admin after end time",
			action: guard.EndAuction{},
			mutate: func(b *builder.SnapshotBuilder) { b.AsAdmin().WithCurrentEndingIn(-time.Second) },
		},
		{
			name:   "non-admin",
			action: guard.EndAuction{},
			mutate: func(b *builder.SnapshotBuilder) { b.WithCurrentEndingIn(-time.Second) },
			reason: guard.ReasonNotAdmin,
		},
		{
			name:   "admin while bidding is open",
			action: guard.EndAuction{},
			mutate: func(b *builder.SnapshotBuilder) { b.AsAdmin() },
			reason: guard.ReasonPhaseNotReady,
		},
		{
			name:   "admin with no active auction",
			action: guard.EndAuction{},
			mutate: func(b *builder.SnapshotBuilder) { b.AsAdmin().WithoutCurrent() },
			reason: guard.ReasonPhaseNotReady,
		},
	})
}

func TestEvaluate_Withdraw(t *testing.T) {
	lost := func(b *builder.SnapshotBuilder) {
		b.WithFinished("Chair", builder.BobAddress, "3", "1")
	}
	runCases(t, []testCase{
		{name: "lost auction", action: guard.Withdraw{AuctionID: uid(0)}, mutate: lost},
		{name: "nothing selected", action: guard.Withdraw{}, mutate: lost, reason: guard.ReasonNoSelection},
		{name: "out of range", action: guard.Withdraw{AuctionID: uid(9)}, mutate: lost, reason: guard.ReasonNotEligible},
		{
			name:   "winner cannot withdraw",
			action: guard.Withdraw{AuctionID: uid(0)},
			mutate: func(b *builder.SnapshotBuilder) { b.WithFinished("Chair", builder.AliceAddress, "3", "3") },
			reason: guard.ReasonNotEligible,
		},
		{
			name:   "no bid placed",
			action: guard.Withdraw{AuctionID: uid(0)},
			mutate: func(b *builder.SnapshotBuilder) { b.WithFinished("Chair", builder.BobAddress, "3", "0") },
			reason: guard.ReasonNotEligible,
		},
	})
}

func TestEvaluate_CreateAuction(t *testing.T) {
	idle := func(b *builder.SnapshotBuilder) { b.AsAdmin().WithoutCurrent() }
	runCases(t, []testCase{
		{name: "admin with no active auction", action: guard.CreateAuction{Product: "Vase", DurationMinutes: 30}, mutate: idle},
		{
			name:   "non-admin",
			action: guard.CreateAuction{Product: "Vase", DurationMinutes: 30},
			mutate: func(b *builder.SnapshotBuilder) { b.WithoutCurrent() },
			reason: guard.ReasonNotAdmin,
		},
		{
			name:   "auction still open",
			action: guard.CreateAuction{Product: "Vase", DurationMinutes: 30},
			mutate: func(b *builder.SnapshotBuilder) { b.AsAdmin() },
			reason: guard.ReasonAuctionInProgress,
		},
		{
			name:   "auction awaiting finalization",
			action: guard.CreateAuction{Product: "Vase", DurationMinutes: 30},
			mutate: func(b *builder.SnapshotBuilder) { b.AsAdmin().WithCurrentEndingIn(-time.Minute) },
			reason: guard.ReasonAuctionInProgress,
		},
		{name: "blank name", action: guard.CreateAuction{Product: "   ", DurationMinutes: 30}, mutate: idle, reason: guard.ReasonInvalidInput},
		{name: "zero duration", action: guard.CreateAuction{Product: "Vase"}, mutate: idle, reason: guard.ReasonInvalidInput},
		{name: "negative duration", action: guard.CreateAuction{Product: "Vase", DurationMinutes: -5}, mutate: idle, reason: guard.ReasonInvalidInput},
	})

	t.Run("approved submission trims the name", func(t *testing.T) {
		s, v := builder.NewSnapshotBuilder().AsAdmin().WithoutCurrent().BuildView()

		d := guard.Evaluate(guard.CreateAuction{Product: " Vase ", DurationMinutes: 30}, s, v)

		require.True(t, d.Approved())
		assert.Equal(t, "Vase", d.Submission.Product)
		assert.Equal(t, uint64(30), d.Submission.DurationMinutes)
	})
}

func TestEvaluate_ChangeAdmin(t *testing.T) {
	runCases(t, []testCase{
		{
			name:   "admin with valid address",
			action: guard.ChangeAdmin{NewAdmin: builder.BobAddress},
			mutate: func(b *builder.SnapshotBuilder) { b.AsAdmin() },
		},
		{
			name:   "non-admin",
			action: guard.ChangeAdmin{NewAdmin: builder.BobAddress},
			reason: guard.ReasonNotAdmin,
		},
		{
			name:   "malformed address",
			action: guard.ChangeAdmin{NewAdmin: "0xabc"},
			mutate: func(b *builder.SnapshotBuilder) { b.AsAdmin() },
			reason: guard.ReasonInvalidIdentity,
		},
	})
}

func TestEvaluate_AdminOnlyActionsNeverApprovedForNonAdmin(t *testing.T) {
	actions := []guard.Action{
		guard.EndAuction{},
		guard.CreateAuction{Product: "Vase", DurationMinutes: 30},
		guard.ChangeAdmin{NewAdmin: builder.BobAddress},
	}
	phases := []func(*builder.SnapshotBuilder){
		func(b *builder.SnapshotBuilder) {},
		func(b *builder.SnapshotBuilder) { b.WithCurrentEndingIn(-time.Second) },
		func(b *builder.SnapshotBuilder) { b.WithoutCurrent() },
	}
	for _, a := range actions {
		for _, p := range phases {
			s, v := builder.NewSnapshotBuilder().With(p).WithCallerIsAdmin(false).BuildView()
			d := guard.Evaluate(a, s, v)
			assert.False(t, d.Approved(), "%s approved for non-admin in %s", a.Kind(), v.Phase)
		}
	}
}

func TestEvaluate_Scenarios(t *testing.T) {
	t.Run("create auction when nothing is running", func(t *testing.T) {
		b := builder.NewSnapshotBuilder().WithoutCurrent()
		s, v := b.BuildView()
		require.Equal(t, auction.PhaseNoActiveAuction, v.Phase)
		assert.Equal(t, guard.ReasonNotAdmin, guard.Evaluate(guard.CreateAuction{Product: "Vase", DurationMinutes: 30}, s, v).Reason)

		s, v = b.AsAdmin().BuildView()
		assert.True(t, guard.Evaluate(guard.CreateAuction{Product: "Vase", DurationMinutes: 30}, s, v).Approved())
	})

	t.Run("expired auction closes bidding and allows finalization", func(t *testing.T) {
		b := builder.NewSnapshotBuilder().WithCurrentEndingIn(-time.Second)
		s, v := b.BuildView()
		require.Equal(t, auction.PhaseAwaitingFinalization, v.Phase)
		assert.Equal(t, guard.ReasonPhaseClosed, guard.Evaluate(guard.PlaceBid{Amount: "1.0"}, s, v).Reason)

		s, v = b.AsAdmin().BuildView()
		assert.True(t, guard.Evaluate(guard.EndAuction{}, s, v).Approved())
	})

	t.Run("only the loser of auction 3 may withdraw", func(t *testing.T) {
		history := func(caller string, callerBid string) *builder.SnapshotBuilder {
			b := builder.NewSnapshotBuilder().WithCaller(caller)
			for i := 0; i < 3; i++ {
				b.WithFinished("Filler", builder.CarolAddress, "1", "0")
			}
			return b.WithFinished("Painting", builder.AliceAddress, "3", callerBid)
		}

		s, v := history(builder.BobAddress, "2.5").BuildView()
		require.True(t, v.RefundEligible[3])
		assert.True(t, guard.Evaluate(guard.Withdraw{AuctionID: uid(3)}, s, v).Approved())

		s, v = history(builder.AliceAddress, "3").BuildView()
		assert.False(t, v.RefundEligible[3])
		assert.Equal(t, guard.ReasonNotEligible, guard.Evaluate(guard.Withdraw{AuctionID: uid(3)}, s, v).Reason)
	})
}

func TestReasonMessage(t *testing.T) {
	assert.Equal(t, "select an auction first", guard.ReasonNoSelection.Message())
	assert.Equal(t, "something_else", guard.Reason("something_else").Message())
}
