package auction

import "time"

type Phase string

const (
	PhaseOpen                 Phase = "open"
	PhaseAwaitingFinalization Phase = "awaiting_finalization"
	PhaseNoActiveAuction      Phase = "no_active_auction"
)

func (p Phase) String() string {
	return string(p)
}

// View holds the facts derived from a snapshot for its caller. It is never stored.
type View struct {
	Phase          Phase
	RefundEligible map[uint64]bool
	AlreadyBid     bool
}

func PhaseAt(s *Snapshot, now time.Time) Phase {
	if s == nil || s.Current == nil || !s.Current.Active {
		return PhaseNoActiveAuction
	}
	if now.Before(s.Current.EndsAt) {
		return PhaseOpen
	}
	return PhaseAwaitingFinalization
}

// Derive computes the view of s at now. It reads nothing but its arguments.
func Derive(s *Snapshot, now time.Time) View {
	v := View{
		Phase:          PhaseAt(s, now),
		RefundEligible: map[uint64]bool{},
	}
	if s == nil {
		return v
	}

	for i, r := range s.History {
		v.RefundEligible[r.ID] = false
		if i >= len(s.HistoryBids) {
			continue
		}
		v.RefundEligible[r.ID] = refundable(s.HistoryBids[i], r)
	}

	if s.Current != nil && s.CallerBid != nil {
		v.AlreadyBid = s.CallerBid.AuctionID == s.Current.ID && s.CallerBid.Amount.IsPositive()
	}
	return v
}

func refundable(b Bid, r Record) bool {
	return b.AuctionID == r.ID && b.Amount.IsPositive() && !b.Bidder.Equal(r.Winner)
}
