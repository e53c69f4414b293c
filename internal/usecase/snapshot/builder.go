package snapshot

import (
	"context"
	"log/slog"

	"auction-sync/internal/domain/auction"
	"auction-sync/internal/pkg/clock"
	"auction-sync/internal/pkg/errs"
	"auction-sync/internal/usecase/shared"

	"golang.org/x/sync/errgroup"
)

// DefaultMaxHistory bounds the history a single build will read when no limit is given.
const DefaultMaxHistory = 10_000

// Builder turns one batch of ledger reads into a Snapshot.
type Builder struct {
	gateway     shared.LedgerGateway
	clock       clock.Clock
	logger      *slog.Logger
	concurrency int
	maxHistory  uint64
}

func NewBuilder(gateway shared.LedgerGateway, clk clock.Clock, logger *slog.Logger, concurrency int, maxHistory uint64) *Builder {
	if concurrency < 1 {
		concurrency = 1
	}
	if maxHistory == 0 {
		maxHistory = DefaultMaxHistory
	}
	return &Builder{gateway: gateway, clock: clk, logger: logger, concurrency: concurrency, maxHistory: maxHistory}
}

// Build reads the whole auction state and stamps it with tick. Any failed read fails the build:
// errors are marked errs.ErrPartialRead unless the gateway reported errs.ErrGatewayUnavailable.
// A half-read snapshot is never returned.
func (b *Builder) Build(ctx context.Context, tick uint64) (*auction.Snapshot, error) {
	if b.gateway == nil {
		return nil, errs.ErrGatewayUnavailable
	}
	caller := b.gateway.Caller()

	count, err := b.gateway.HistoricalAuctionCount(ctx)
	if err != nil {
		return nil, classify(err, "read historical auction count")
	}
	if count > b.maxHistory {
		return nil, errs.Mark(
			errs.Wrapf(errs.ErrHistoryOutOfRange, "ledger reported %d auctions, limit %d", count, b.maxHistory),
			errs.ErrPartialRead)
	}

	history := make([]auction.Record, count)
	var bids []auction.Bid
	if !caller.IsZero() {
		bids = make([]auction.Bid, count)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(b.concurrency)
	for i := uint64(0); i < count; i++ {
		g.Go(func() error {
			rec, err := b.gateway.AuctionRecord(gctx, i)
			if err != nil {
				return errs.Wrapf(err, "read auction %d", i)
			}
			history[i] = rec
			if bids == nil {
				return nil
			}
			amount, err := b.gateway.BidOf(gctx, i, caller)
			if err != nil {
				return errs.Wrapf(err, "read bid in auction %d", i)
			}
			bids[i] = auction.Bid{AuctionID: i, Bidder: caller, Amount: amount}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, classify(err, "read auction history")
	}

	summary, err := b.gateway.CurrentAuctionSummary(ctx)
	if err != nil {
		return nil, classify(err, "read current auction")
	}

	var current *auction.Record
	var callerBid *auction.Bid
	if summary.Active {
		current = &auction.Record{
			ID:            count,
			Product:       summary.Product,
			Winner:        summary.HighestBidder,
			WinningAmount: summary.HighestBid,
			EndsAt:        summary.EndsAt,
			Active:        true,
		}
		if !caller.IsZero() {
			amount, err := b.gateway.BidOf(ctx, count, caller)
			if err != nil {
				return nil, classify(err, "read caller bid")
			}
			callerBid = &auction.Bid{AuctionID: count, Bidder: caller, Amount: amount}
		}
	}

	admin, err := b.gateway.AdminIdentity(ctx)
	if err != nil {
		return nil, classify(err, "read admin identity")
	}

	s := &auction.Snapshot{
		AsOf:          tick,
		TakenAt:       b.clock.Now(),
		Caller:        caller,
		Admin:         admin,
		CallerIsAdmin: caller.Equal(admin),
		History:       history,
		HistoryBids:   bids,
		Current:       current,
		CallerBid:     callerBid,
	}
	if err := s.Validate(); err != nil {
		return nil, errs.Mark(err, errs.ErrPartialRead)
	}

	b.logger.Debug("snapshot built",
		slog.Uint64("as_of", tick),
		slog.Uint64("history", count),
		slog.Bool("active", current != nil))
	return s, nil
}

func classify(err error, msg string) error {
	wrapped := errs.Wrap(err, msg)
	if errs.Is(err, errs.ErrGatewayUnavailable) {
		return wrapped
	}
	return errs.Mark(wrapped, errs.ErrPartialRead)
}
