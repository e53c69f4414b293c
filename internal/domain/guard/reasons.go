package guard

type Reason string

const (
	ReasonInvalidAmount     Reason = "invalid_amount"
	ReasonPhaseClosed       Reason = "phase_closed"
	ReasonDuplicateBid      Reason = "duplicate_bid"
	ReasonNotAdmin          Reason = "not_admin"
	ReasonPhaseNotReady     Reason = "phase_not_ready"
	ReasonNoSelection       Reason = "no_selection"
	ReasonNotEligible       Reason = "not_eligible"
	ReasonAuctionInProgress Reason = "auction_in_progress"
	ReasonInvalidInput      Reason = "invalid_input"
	ReasonInvalidIdentity   Reason = "invalid_identity"
	ReasonNoIdentity        Reason = "no_identity"
	ReasonNotSynced         Reason = "not_synced"
)

var reasonMessages = map[Reason]string{
	ReasonInvalidAmount:     "enter a valid amount",
	ReasonPhaseClosed:       "the auction is not open for bids",
	ReasonDuplicateBid:      "you have already placed a bid in this auction",
	ReasonNotAdmin:          "only the administrator can perform this action",
	ReasonPhaseNotReady:     "the auction cannot be finalized yet",
	ReasonNoSelection:       "select an auction first",
	ReasonNotEligible:       "no refund is available for this auction",
	ReasonAuctionInProgress: "the current auction must be finalized first",
	ReasonInvalidInput:      "enter a valid name and duration",
	ReasonInvalidIdentity:   "enter a valid address",
	ReasonNoIdentity:        "no signing identity is configured for this session",
	ReasonNotSynced:         "ledger state has not been loaded yet",
}

func (r Reason) String() string {
	return string(r)
}

func (r Reason) Message() string {
	if m, ok := reasonMessages[r]; ok {
		return m
	}
	return string(r)
}
