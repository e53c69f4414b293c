package auction

import (
	"time"

	"auction-sync/internal/pkg/errs"
)

var ErrInconsistentSnapshot = errs.New("inconsistent snapshot")

// Record is one auction as reported by the ledger. Winner and WinningAmount are the
// highest bidder and bid; they are final only once the auction is no longer active.
type Record struct {
	ID            uint64
	Product       string
	Winner        Identity
	WinningAmount Amount
	EndsAt        time.Time
	Active        bool
}

func (r Record) HasEnded(now time.Time) bool {
	return !now.Before(r.EndsAt)
}

// Bid is the amount a bidder holds in one auction. The ledger keeps at most one per pair.
type Bid struct {
	AuctionID uint64
	Bidder    Identity
	Amount    Amount
}

// Snapshot is a point-in-time-approximate read of the ledger. It is published whole and
// never mutated afterwards.
type Snapshot struct {
	AsOf          uint64
	TakenAt       time.Time
	Caller        Identity
	Admin         Identity
	CallerIsAdmin bool
	// History is in creation order; History[i].ID == i.
	History []Record
	// HistoryBids is index-aligned with History and empty when the caller is absent.
	HistoryBids []Bid
	Current     *Record
	CallerBid   *Bid
}

func (s *Snapshot) Validate() error {
	for i, r := range s.History {
		if r.ID != uint64(i) {
			return errs.Wrapf(ErrInconsistentSnapshot, "history[%d] has id %d", i, r.ID)
		}
		if r.Active {
			return errs.Wrapf(ErrInconsistentSnapshot, "finished auction %d reported active", r.ID)
		}
	}
	if len(s.HistoryBids) != 0 && len(s.HistoryBids) != len(s.History) {
		return errs.Wrapf(ErrInconsistentSnapshot, "%d bids for %d auctions", len(s.HistoryBids), len(s.History))
	}
	if s.Current != nil && s.Current.ID != uint64(len(s.History)) {
		return errs.Wrapf(ErrInconsistentSnapshot, "current auction id %d with %d finished", s.Current.ID, len(s.History))
	}
	if s.CallerBid != nil && (s.Current == nil || s.CallerBid.AuctionID != s.Current.ID) {
		return errs.Wrap(ErrInconsistentSnapshot, "caller bid does not belong to the current auction")
	}
	return nil
}

// HistoryNewestFirst returns a copy of the history, most recent auction first.
func (s *Snapshot) HistoryNewestFirst() []Record {
	out := make([]Record, len(s.History))
	for i, r := range s.History {
		out[len(s.History)-1-i] = r
	}
	return out
}

func (s *Snapshot) Record(id uint64) (Record, bool) {
	if id >= uint64(len(s.History)) {
		return Record{}, false
	}
	return s.History[id], true
}

func (s *Snapshot) BidIn(id uint64) (Bid, bool) {
	if id >= uint64(len(s.HistoryBids)) {
		return Bid{}, false
	}
	return s.HistoryBids[id], true
}
