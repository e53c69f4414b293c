package response

import (
	"auction-sync/internal/usecase/coordinator"
)

type OutcomeResponse struct {
	Action  string `json:"action"`
	Outcome string `json:"outcome"`
	// ReasonCode is set for guard rejections only.
	ReasonCode  string `json:"reason_code,omitempty"`
	Reason      string `json:"reason,omitempty"`
	TxHash      string `json:"tx_hash,omitempty"`
	AsOf        uint64 `json:"as_of"`
	ResyncError string `json:"resync_error,omitempty"`
}

func FromOutcome(o coordinator.Outcome) *OutcomeResponse {
	res := &OutcomeResponse{
		Action:     string(o.Action),
		Outcome:    string(o.Kind),
		ReasonCode: string(o.GuardReason),
		Reason:     o.Reason,
		TxHash:     o.TxHash,
		AsOf:       o.AsOf,
	}
	if o.ResyncErr != nil {
		res.ResyncError = o.ResyncErr.Error()
	}
	return res
}

type ResyncResponse struct {
	AsOf uint64 `json:"as_of"`
}
