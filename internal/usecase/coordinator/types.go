package coordinator

import (
	"time"

	"auction-sync/internal/domain/auction"
	"auction-sync/internal/domain/guard"
	"auction-sync/internal/pkg/config"
)

type State string

const (
	StateIdle                 State = "idle"
	StateValidating           State = "validating"
	StateSubmitting           State = "submitting"
	StateAwaitingConfirmation State = "awaiting_confirmation"
	StateResyncing            State = "resyncing"
	StateFailed               State = "failed"
)

type OutcomeKind string

const (
	// OutcomeConfirmed means the guard approved and the ledger confirmed.
	OutcomeConfirmed OutcomeKind = "confirmed"
	// OutcomeGuardRejected means the action never left the process.
	OutcomeGuardRejected OutcomeKind = "guard_rejected"
	// OutcomeLedgerRejected means the ledger refused a locally approved action.
	OutcomeLedgerRejected OutcomeKind = "ledger_rejected"
	// OutcomeLedgerFailure means the submission outcome is unknown. It is never retried;
	// the next snapshot tells whether it landed.
	OutcomeLedgerFailure OutcomeKind = "ledger_failure"
)

type Outcome struct {
	Action      guard.Kind
	Kind        OutcomeKind
	GuardReason guard.Reason
	// Reason is the guard message or the ledger's stated reason.
	Reason string
	TxHash string
	// AsOf is the tick of the snapshot published after the action; 0 if the resync failed.
	AsOf      uint64
	ResyncErr error
}

func (o Outcome) Succeeded() bool {
	return o.Kind == OutcomeConfirmed
}

// View is what consumers read: the latest published snapshot and the facts derived from it now.
// Snapshot is nil until the first successful resync.
type View struct {
	Snapshot *auction.Snapshot
	Derived  auction.View
}

type Options struct {
	Interval       time.Duration
	MaxBackoff     time.Duration
	ResyncTimeout  time.Duration
	ConfirmTimeout time.Duration
}

func OptionsFromConfig(sync config.SyncConfig, ledger config.LedgerConfig) Options {
	return Options{
		Interval:       sync.Interval,
		MaxBackoff:     sync.MaxBackoff,
		ResyncTimeout:  sync.ResyncTimeout,
		ConfirmTimeout: ledger.ConfirmTimeout,
	}
}
