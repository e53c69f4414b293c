//go:build unit || e2e

package builder

import (
	"time"

	"auction-sync/internal/domain/auction"
)

const (
	AdminAddress  = "0x00000000000000000000000000000000000000Ad"
	AliceAddress  = "0x000000000000000000000000000000000000A11c"
	BobAddress    = "0x0000000000000000000000000000000000000B0b"
	CarolAddress  = "0x00000000000000000000000000000000000Ca201"
	DefaultNowISO = "2026-03-01T12:00:00Z"
)

func Identity(addr string) auction.Identity {
	id, err := auction.NewIdentity(addr)
	if err != nil {
		panic(err)
	}
	return id
}

func DefaultNow() time.Time {
	t, _ := time.Parse(time.RFC3339, DefaultNowISO)
	return t
}

// SnapshotBuilder builds a snapshot with an open current auction and no history, seen by Alice.
type SnapshotBuilder struct {
	Now           time.Time
	AsOf          uint64
	Caller        auction.Identity
	Admin         auction.Identity
	History       []auction.Record
	HistoryBids   []auction.Bid
	Current       *auction.Record
	CallerBid     *auction.Bid
	callerIsAdmin *bool
}

func NewSnapshotBuilder() *SnapshotBuilder {
	now := DefaultNow()
	return &SnapshotBuilder{
		Now:    now,
		AsOf:   1,
		Caller: Identity(AliceAddress),
		Admin:  Identity(AdminAddress),
		Current: &auction.Record{
			ID:            0,
			Product:       "Vintage Lamp",
			WinningAmount: auction.ZeroAmount(),
			EndsAt:        now.Add(10 * time.Minute),
			Active:        true,
		},
	}
}

func (b *SnapshotBuilder) With(mutate func(*SnapshotBuilder)) *SnapshotBuilder {
	mutate(b)
	return b
}

func (b *SnapshotBuilder) WithCaller(addr string) *SnapshotBuilder {
	if addr == "" {
		b.Caller = ""
		return b
	}
	b.Caller = Identity(addr)
	return b
}

func (b *SnapshotBuilder) AsAdmin() *SnapshotBuilder {
	b.Caller = b.Admin
	return b
}

// WithFinished appends a finished auction won by winner. The caller's bid in it is callerBid ("0" for none).
func (b *SnapshotBuilder) WithFinished(product, winner, winningBid, callerBid string) *SnapshotBuilder {
	id := uint64(len(b.History))
	var w auction.Identity
	if winner != "" {
		w = Identity(winner)
	}
	b.History = append(b.History, auction.Record{
		ID:            id,
		Product:       product,
		Winner:        w,
		WinningAmount: auction.MustParseAmount(winningBid),
		EndsAt:        b.Now.Add(-time.Duration(100-id) * time.Minute),
	})
	b.HistoryBids = append(b.HistoryBids, auction.Bid{
		AuctionID: id,
		Bidder:    b.Caller,
		Amount:    auction.MustParseAmount(callerBid),
	})
	if b.Current != nil {
		b.Current.ID = uint64(len(b.History))
	}
	return b
}

func (b *SnapshotBuilder) WithCurrentEndingIn(d time.Duration) *SnapshotBuilder {
	if b.Current == nil {
		b.Current = &auction.Record{Product: "Vintage Lamp", WinningAmount: auction.ZeroAmount(), Active: true}
	}
	b.Current.ID = uint64(len(b.History))
	b.Current.EndsAt = b.Now.Add(d)
	return b
}

func (b *SnapshotBuilder) WithoutCurrent() *SnapshotBuilder {
	b.Current = nil
	b.CallerBid = nil
	return b
}

func (b *SnapshotBuilder) WithCallerBid(amount string) *SnapshotBuilder {
	b.CallerBid = &auction.Bid{
		AuctionID: uint64(len(b.History)),
		Bidder:    b.Caller,
		Amount:    auction.MustParseAmount(amount),
	}
	return b
}

func (b *SnapshotBuilder) WithCallerIsAdmin(v bool) *SnapshotBuilder {
	b.callerIsAdmin = &v
	return b
}

func (b *SnapshotBuilder) Build() *auction.Snapshot {
	history := append([]auction.Record(nil), b.History...)
	bids := append([]auction.Bid(nil), b.HistoryBids...)
	if b.Caller.IsZero() {
		bids = nil
	}
	isAdmin := b.Caller.Equal(b.Admin)
	if b.callerIsAdmin != nil {
		isAdmin = *b.callerIsAdmin
	}
	s := &auction.Snapshot{
		AsOf:          b.AsOf,
		TakenAt:       b.Now,
		Caller:        b.Caller,
		Admin:         b.Admin,
		CallerIsAdmin: isAdmin,
		History:       history,
		HistoryBids:   bids,
	}
	if b.Current != nil {
		cur := *b.Current
		s.Current = &cur
	}
	if b.CallerBid != nil && !b.Caller.IsZero() {
		bid := *b.CallerBid
		s.CallerBid = &bid
	}
	return s
}

// BuildView builds the snapshot and derives its view at the builder's clock.
func (b *SnapshotBuilder) BuildView() (*auction.Snapshot, auction.View) {
	s := b.Build()
	return s, auction.Derive(s, b.Now)
}
