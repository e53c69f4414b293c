package response

import (
	"auction-sync/internal/domain/auction"
	"auction-sync/internal/usecase/queries"
)

type AuctionRecordResponse struct {
	ID             uint64          `json:"id"`
	Product        string          `json:"product"`
	Winner         string          `json:"winner"`
	WinningAmount  auction.Amount  `json:"winning_amount"`
	EndsAt         int64           `json:"ends_at"`
	CallerBid      *auction.Amount `json:"caller_bid,omitempty"`
	RefundEligible bool            `json:"refund_eligible"`
}

type CurrentAuctionResponse struct {
	ID               uint64         `json:"id"`
	Product          string         `json:"product"`
	HighestBidder    string         `json:"highest_bidder"`
	HighestBid       auction.Amount `json:"highest_bid"`
	EndsAt           int64          `json:"ends_at"`
	RemainingSeconds int64          `json:"remaining_seconds"`
}

type SyncViewResponse struct {
	AsOf          uint64                  `json:"as_of"`
	TakenAt       int64                   `json:"taken_at"`
	State         string                  `json:"state"`
	Caller        string                  `json:"caller"`
	Admin         string                  `json:"admin"`
	CallerIsAdmin bool                    `json:"caller_is_admin"`
	Phase         string                  `json:"phase"`
	AlreadyBid    bool                    `json:"already_bid"`
	CallerBid     *auction.Amount         `json:"caller_bid,omitempty"`
	Current       *CurrentAuctionResponse `json:"current,omitempty"`
	History       []AuctionRecordResponse `json:"history"`
}

func FromSyncView(v *queries.SyncView) *SyncViewResponse {
	res := &SyncViewResponse{
		AsOf:          v.AsOf,
		TakenAt:       v.TakenAt.Unix(),
		State:         v.State,
		Caller:        v.Caller,
		Admin:         v.Admin,
		CallerIsAdmin: v.CallerIsAdmin,
		Phase:         v.Phase.String(),
		AlreadyBid:    v.AlreadyBid,
		CallerBid:     v.CallerBid,
		History:       make([]AuctionRecordResponse, len(v.History)),
	}
	if c := v.Current; c != nil {
		res.Current = &CurrentAuctionResponse{
			ID:               c.ID,
			Product:          c.Product,
			HighestBidder:    c.HighestBidder,
			HighestBid:       c.HighestBid,
			EndsAt:           c.EndsAt.Unix(),
			RemainingSeconds: int64(c.Remaining.Seconds()),
		}
	}
	for i := range v.History {
		res.History[i] = *FromAuctionRecord(&v.History[i])
	}
	return res
}

func FromAuctionRecord(r *queries.AuctionRecordView) *AuctionRecordResponse {
	return &AuctionRecordResponse{
		ID:             r.ID,
		Product:        r.Product,
		Winner:         r.Winner,
		WinningAmount:  r.WinningAmount,
		EndsAt:         r.EndsAt.Unix(),
		CallerBid:      r.CallerBid,
		RefundEligible: r.RefundEligible,
	}
}
