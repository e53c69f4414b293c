package queries

import (
	"time"

	"auction-sync/internal/domain/auction"
)

type AuctionRecordView struct {
	ID             uint64
	Product        string
	Winner         string
	WinningAmount  auction.Amount
	EndsAt         time.Time
	CallerBid      *auction.Amount
	RefundEligible bool
}

type CurrentAuctionView struct {
	ID            uint64
	Product       string
	HighestBidder string
	HighestBid    auction.Amount
	EndsAt        time.Time
	// Remaining is zero once the end time has passed.
	Remaining time.Duration
}

type SyncView struct {
	AsOf          uint64
	TakenAt       time.Time
	State         string
	Caller        string
	Admin         string
	CallerIsAdmin bool
	Phase         auction.Phase
	AlreadyBid    bool
	CallerBid     *auction.Amount
	Current       *CurrentAuctionView
	// History is newest first.
	History []AuctionRecordView
}
