package guard

import (
	"strings"

	"auction-sync/internal/domain/auction"
)

// Decision is the outcome of a local check. A zero Reason means approved.
type Decision struct {
	Reason     Reason
	Submission Submission
}

func (d Decision) Approved() bool {
	return d.Reason == ""
}

func reject(r Reason) Decision {
	return Decision{Reason: r}
}

func approve(s Submission) Decision {
	return Decision{Submission: s}
}

// Evaluate checks a against the snapshot and the view derived from it. Checks run in a fixed
// order and the first failure is reported. Approval is advisory: the ledger may still refuse.
func Evaluate(a Action, s *auction.Snapshot, v auction.View) Decision {
	if s == nil {
		return reject(ReasonNotSynced)
	}
	if s.Caller.IsZero() {
		return reject(ReasonNoIdentity)
	}

	switch act := a.(type) {
	case PlaceBid:
		return placeBid(act, s, v)
	case EndAuction:
		return endAuction(s, v)
	case Withdraw:
		return withdraw(act, v)
	case CreateAuction:
		return createAuction(act, s, v)
	case ChangeAdmin:
		return changeAdmin(act, s)
	default:
		return reject(ReasonInvalidInput)
	}
}

func placeBid(a PlaceBid, s *auction.Snapshot, v auction.View) Decision {
	amount, err := auction.ParseAmount(a.Amount)
	if err != nil || !amount.IsPositive() {
		return reject(ReasonInvalidAmount)
	}
	if v.Phase != auction.PhaseOpen {
		return reject(ReasonPhaseClosed)
	}
	if v.AlreadyBid {
		return reject(ReasonDuplicateBid)
	}
	// the view may come from a caller that skipped Derive; check the record itself too
	if s.CallerBid != nil && s.Current != nil &&
		s.CallerBid.AuctionID == s.Current.ID && s.CallerBid.Amount.IsPositive() {
		return reject(ReasonDuplicateBid)
	}
	return approve(Submission{Kind: KindPlaceBid, Amount: amount})
}

func endAuction(s *auction.Snapshot, v auction.View) Decision {
	if !s.CallerIsAdmin {
		return reject(ReasonNotAdmin)
	}
	if v.Phase != auction.PhaseAwaitingFinalization {
		return reject(ReasonPhaseNotReady)
	}
	return approve(Submission{Kind: KindEndAuction})
}

func withdraw(a Withdraw, v auction.View) Decision {
	if a.AuctionID == nil {
		return reject(ReasonNoSelection)
	}
	if !v.RefundEligible[*a.AuctionID] {
		return reject(ReasonNotEligible)
	}
	return approve(Submission{Kind: KindWithdraw, AuctionID: *a.AuctionID})
}

func createAuction(a CreateAuction, s *auction.Snapshot, v auction.View) Decision {
	if !s.CallerIsAdmin {
		return reject(ReasonNotAdmin)
	}
	if v.Phase == auction.PhaseOpen || v.Phase == auction.PhaseAwaitingFinalization {
		return reject(ReasonAuctionInProgress)
	}
	product := strings.TrimSpace(a.Product)
	if product == "" || a.DurationMinutes <= 0 {
		return reject(ReasonInvalidInput)
	}
	return approve(Submission{
		Kind:            KindCreateAuction,
		Product:         product,
		DurationMinutes: uint64(a.DurationMinutes),
	})
}

func changeAdmin(a ChangeAdmin, s *auction.Snapshot) Decision {
	if !s.CallerIsAdmin {
		return reject(ReasonNotAdmin)
	}
	id, err := auction.NewIdentity(a.NewAdmin)
	if err != nil {
		return reject(ReasonInvalidIdentity)
	}
	return approve(Submission{Kind: KindChangeAdmin, NewAdmin: id})
}
