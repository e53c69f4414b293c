package guard

import "auction-sync/internal/domain/auction"

type Kind string

const (
	KindPlaceBid      Kind = "place_bid"
	KindEndAuction    Kind = "end_auction"
	KindWithdraw      Kind = "withdraw"
	KindCreateAuction Kind = "create_auction"
	KindChangeAdmin   Kind = "change_admin"
)

func (k Kind) String() string {
	return string(k)
}

// Action is a state-changing request as entered by the caller, before validation.
type Action interface {
	Kind() Kind
}

type PlaceBid struct {
	Amount string
}

type EndAuction struct{}

// Withdraw reclaims a losing bid. A nil AuctionID means nothing was selected.
type Withdraw struct {
	AuctionID *uint64
}

type CreateAuction struct {
	Product         string
	DurationMinutes int64
}

type ChangeAdmin struct {
	NewAdmin string
}

func (PlaceBid) Kind() Kind      { return KindPlaceBid }
func (EndAuction) Kind() Kind    { return KindEndAuction }
func (Withdraw) Kind() Kind      { return KindWithdraw }
func (CreateAuction) Kind() Kind { return KindCreateAuction }
func (ChangeAdmin) Kind() Kind   { return KindChangeAdmin }

// Submission is an approved action in the normalised form the ledger gateway accepts.
// Only the fields of its Kind are set.
type Submission struct {
	Kind            Kind
	Amount          auction.Amount
	AuctionID       uint64
	Product         string
	DurationMinutes uint64
	NewAdmin        auction.Identity
}
