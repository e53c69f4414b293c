package queries

//go:generate mockgen -source=view.go -destination=../../../tests/mock/queries/view.go -package=queriesmock

import (
	"context"

	"auction-sync/internal/domain/auction"
	"auction-sync/internal/pkg/clock"
	"auction-sync/internal/pkg/errs"
	"auction-sync/internal/usecase/coordinator"
)

var (
	ErrNotSynced       = errs.New("ledger state not loaded yet")
	ErrAuctionNotFound = errs.New("auction not found")
)

type ViewSource interface {
	CurrentView() coordinator.View
	State() coordinator.State
}

type ViewQueries interface {
	Current(ctx context.Context) (*SyncView, error)
	// Auction looks up a finished auction by id in the published snapshot.
	Auction(ctx context.Context, id uint64) (*AuctionRecordView, error)
}

type viewQueriesImpl struct {
	source ViewSource
	clock  clock.Clock
}

func NewViewQueries(source ViewSource, clk clock.Clock) ViewQueries {
	return &viewQueriesImpl{source: source, clock: clk}
}

func (q *viewQueriesImpl) Current(ctx context.Context) (*SyncView, error) {
	v := q.source.CurrentView()
	s := v.Snapshot
	if s == nil {
		return nil, ErrNotSynced
	}

	out := &SyncView{
		AsOf:          s.AsOf,
		TakenAt:       s.TakenAt,
		State:         string(q.source.State()),
		Caller:        s.Caller.String(),
		Admin:         s.Admin.String(),
		CallerIsAdmin: s.CallerIsAdmin,
		Phase:         v.Derived.Phase,
		AlreadyBid:    v.Derived.AlreadyBid,
		History:       make([]AuctionRecordView, 0, len(s.History)),
	}
	if s.CallerBid != nil {
		amount := s.CallerBid.Amount
		out.CallerBid = &amount
	}
	if c := s.Current; c != nil {
		cur := &CurrentAuctionView{
			ID:            c.ID,
			Product:       c.Product,
			HighestBidder: c.Winner.String(),
			HighestBid:    c.WinningAmount,
			EndsAt:        c.EndsAt,
			Remaining:     clock.Remaining(q.clock, c.EndsAt),
		}
		out.Current = cur
	}
	for _, r := range s.HistoryNewestFirst() {
		out.History = append(out.History, recordView(s, v.Derived, r))
	}
	return out, nil
}

func (q *viewQueriesImpl) Auction(ctx context.Context, id uint64) (*AuctionRecordView, error) {
	v := q.source.CurrentView()
	if v.Snapshot == nil {
		return nil, ErrNotSynced
	}
	r, ok := v.Snapshot.Record(id)
	if !ok {
		return nil, errs.Wrapf(ErrAuctionNotFound, "auction %d", id)
	}
	rv := recordView(v.Snapshot, v.Derived, r)
	return &rv, nil
}

func recordView(s *auction.Snapshot, d auction.View, r auction.Record) AuctionRecordView {
	rv := AuctionRecordView{
		ID:             r.ID,
		Product:        r.Product,
		Winner:         r.Winner.String(),
		WinningAmount:  r.WinningAmount,
		EndsAt:         r.EndsAt,
		RefundEligible: d.RefundEligible[r.ID],
	}
	if b, ok := s.BidIn(r.ID); ok {
		amount := b.Amount
		rv.CallerBid = &amount
	}
	return rv
}
