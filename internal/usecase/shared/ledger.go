package shared

import (
	"context"
	"time"

	"auction-sync/internal/domain/auction"
)

// LedgerGateway is the only path to the ledger. Reads fail with errs.ErrGatewayUnavailable when
// the ledger cannot be reached at all. Submissions block until the ledger confirms or refuses and
// fail with errs.ErrLedgerRejected, errs.ErrLedgerIndeterminate or errs.ErrNoSigner.
type LedgerGateway interface {
	// Caller is the identity submissions are signed with; empty for a read-only session.
	Caller() auction.Identity

	AdminIdentity(ctx context.Context) (auction.Identity, error)
	HistoricalAuctionCount(ctx context.Context) (uint64, error)
	AuctionRecord(ctx context.Context, id uint64) (auction.Record, error)
	BidOf(ctx context.Context, id uint64, who auction.Identity) (auction.Amount, error)
	CurrentAuctionSummary(ctx context.Context) (AuctionSummary, error)

	SubmitBid(ctx context.Context, amount auction.Amount) (Receipt, error)
	SubmitEndAuction(ctx context.Context) (Receipt, error)
	SubmitWithdraw(ctx context.Context, auctionID uint64) (Receipt, error)
	SubmitCreateAuction(ctx context.Context, product string, durationMinutes uint64) (Receipt, error)
	SubmitChangeAdmin(ctx context.Context, newAdmin auction.Identity) (Receipt, error)
}

type AuctionSummary struct {
	Product       string
	HighestBid    auction.Amount
	HighestBidder auction.Identity
	EndsAt        time.Time
	Active        bool
}

// Receipt identifies a confirmed submission. TxHash may also be set alongside an error when the
// submission was broadcast but its outcome could not be observed.
type Receipt struct {
	TxHash string
}
