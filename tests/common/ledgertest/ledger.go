//go:build unit || e2e

package ledgertest

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"auction-sync/internal/domain/auction"
	"auction-sync/internal/pkg/clock"
	"auction-sync/internal/pkg/errs"
	"auction-sync/internal/usecase/shared"
)

const (
	ReadCount   = "HistoricalAuctionCount"
	ReadRecord  = "AuctionRecord"
	ReadBid     = "BidOf"
	ReadSummary = "CurrentAuctionSummary"
	ReadAdmin   = "AdminIdentity"
)

type bidKey struct {
	auctionID uint64
	bidder    string
}

// Ledger is an in-memory auction contract that enforces the same rules as the deployed one.
type Ledger struct {
	mu      sync.Mutex
	clock   clock.Clock
	caller  auction.Identity
	admin   auction.Identity
	history []auction.Record
	current *auction.Record
	bids    map[bidKey]auction.Amount
	txSeq   int

	readFaults  map[string]error
	submitFault error
	gate        chan struct{}

	// BeforeSubmit runs before a submission is applied, outside the lock.
	BeforeSubmit func()

	reads       atomic.Int64
	submissions atomic.Int64
}

func New(clk clock.Clock, admin, caller auction.Identity) *Ledger {
	return &Ledger{
		clock:      clk,
		admin:      admin,
		caller:     caller,
		bids:       map[bidKey]auction.Amount{},
		readFaults: map[string]error{},
	}
}

func key(id uint64, who auction.Identity) bidKey {
	return bidKey{auctionID: id, bidder: who.Address().Hex()}
}

// Reset drops all auctions, bids and faults, keeping counters.
func (l *Ledger) Reset(admin, caller auction.Identity) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.admin = admin
	l.caller = caller
	l.history = nil
	l.current = nil
	l.bids = map[bidKey]auction.Amount{}
	l.readFaults = map[string]error{}
	l.submitFault = nil
	l.BeforeSubmit = nil
}

// SetCaller switches the signing identity. Use it to act as another party.
func (l *Ledger) SetCaller(id auction.Identity) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.caller = id
}

// Seed starts an auction directly, bypassing admin checks.
func (l *Ledger) Seed(product string, endsAt time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.current = &auction.Record{
		ID:            uint64(len(l.history)),
		Product:       product,
		WinningAmount: auction.ZeroAmount(),
		EndsAt:        endsAt,
		Active:        true,
	}
}

// SeedBid records a bid directly, bypassing phase checks.
func (l *Ledger) SeedBid(who auction.Identity, amount auction.Amount) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.applyBid(who, amount)
}

// Finish closes the current auction directly.
func (l *Ledger) Finish() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.finish()
}

func (l *Ledger) FailRead(method string, err error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err == nil {
		delete(l.readFaults, method)
		return
	}
	l.readFaults[method] = err
}

func (l *Ledger) FailSubmit(err error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.submitFault = err
}

// HoldReads blocks every HistoricalAuctionCount call until the returned func is called.
func (l *Ledger) HoldReads() (release func()) {
	gate := make(chan struct{})
	l.mu.Lock()
	l.gate = gate
	l.mu.Unlock()
	var once sync.Once
	return func() {
		once.Do(func() {
			l.mu.Lock()
			l.gate = nil
			l.mu.Unlock()
			close(gate)
		})
	}
}

// Reads counts HistoricalAuctionCount calls, one per snapshot build.
func (l *Ledger) Reads() int64 {
	return l.reads.Load()
}

func (l *Ledger) Submissions() int64 {
	return l.submissions.Load()
}

func (l *Ledger) Admin() auction.Identity {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.admin
}

func (l *Ledger) Current() *auction.Record {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.current == nil {
		return nil
	}
	c := *l.current
	return &c
}

func (l *Ledger) History() []auction.Record {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]auction.Record(nil), l.history...)
}

func (l *Ledger) fault(method string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.readFaults[method]
}

func (l *Ledger) Caller() auction.Identity {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.caller
}

func (l *Ledger) AdminIdentity(ctx context.Context) (auction.Identity, error) {
	if err := l.fault(ReadAdmin); err != nil {
		return "", err
	}
	return l.Admin(), nil
}

func (l *Ledger) HistoricalAuctionCount(ctx context.Context) (uint64, error) {
	l.reads.Add(1)
	l.mu.Lock()
	gate := l.gate
	l.mu.Unlock()
	if gate != nil {
		select {
		case <-gate:
		case <-ctx.Done():
			return 0, ctx.Err()
		}
	}
	if err := l.fault(ReadCount); err != nil {
		return 0, err
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return uint64(len(l.history)), nil
}

func (l *Ledger) AuctionRecord(ctx context.Context, id uint64) (auction.Record, error) {
	if err := l.fault(ReadRecord); err != nil {
		return auction.Record{}, err
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if id >= uint64(len(l.history)) {
		return auction.Record{}, errs.Mark(errs.Newf("auction %d does not exist", id), errs.ErrLedgerRejected)
	}
	return l.history[id], nil
}

func (l *Ledger) BidOf(ctx context.Context, id uint64, who auction.Identity) (auction.Amount, error) {
	if err := l.fault(ReadBid); err != nil {
		return auction.Amount{}, err
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if a, ok := l.bids[key(id, who)]; ok {
		return a, nil
	}
	return auction.ZeroAmount(), nil
}

func (l *Ledger) CurrentAuctionSummary(ctx context.Context) (shared.AuctionSummary, error) {
	if err := l.fault(ReadSummary); err != nil {
		return shared.AuctionSummary{}, err
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.current == nil {
		return shared.AuctionSummary{HighestBid: auction.ZeroAmount()}, nil
	}
	return shared.AuctionSummary{
		Product:       l.current.Product,
		HighestBid:    l.current.WinningAmount,
		HighestBidder: l.current.Winner,
		EndsAt:        l.current.EndsAt,
		Active:        l.current.Active,
	}, nil
}

func (l *Ledger) SubmitBid(ctx context.Context, amount auction.Amount) (shared.Receipt, error) {
	return l.submit(func() error {
		c := l.current
		if c == nil || !c.Active || !l.clock.Now().Before(c.EndsAt) {
			return rejected("auction already closed")
		}
		if a, ok := l.bids[key(c.ID, l.caller)]; ok && a.IsPositive() {
			return rejected("already bid")
		}
		if !amount.Decimal().GreaterThan(c.WinningAmount.Decimal()) {
			return rejected("bid not high enough")
		}
		l.applyBid(l.caller, amount)
		return nil
	})
}

func (l *Ledger) SubmitEndAuction(ctx context.Context) (shared.Receipt, error) {
	return l.submit(func() error {
		if !l.caller.Equal(l.admin) {
			return rejected("only admin")
		}
		if l.current == nil || !l.current.Active {
			return rejected("no active auction")
		}
		if l.clock.Now().Before(l.current.EndsAt) {
			return rejected("auction not yet ended")
		}
		l.finish()
		return nil
	})
}

func (l *Ledger) SubmitWithdraw(ctx context.Context, auctionID uint64) (shared.Receipt, error) {
	return l.submit(func() error {
		if auctionID >= uint64(len(l.history)) {
			return rejected("invalid auction")
		}
		k := key(auctionID, l.caller)
		a, ok := l.bids[k]
		if !ok || !a.IsPositive() {
			return rejected("nothing to withdraw")
		}
		if l.history[auctionID].Winner.Equal(l.caller) {
			return rejected("winner cannot withdraw")
		}
		l.bids[k] = auction.ZeroAmount()
		return nil
	})
}

func (l *Ledger) SubmitCreateAuction(ctx context.Context, product string, durationMinutes uint64) (shared.Receipt, error) {
	return l.submit(func() error {
		if !l.caller.Equal(l.admin) {
			return rejected("only admin")
		}
		if l.current != nil && l.current.Active {
			return rejected("auction in progress")
		}
		l.current = &auction.Record{
			ID:            uint64(len(l.history)),
			Product:       product,
			WinningAmount: auction.ZeroAmount(),
			EndsAt:        l.clock.Now().Add(time.Duration(durationMinutes) * time.Minute),
			Active:        true,
		}
		return nil
	})
}

func (l *Ledger) SubmitChangeAdmin(ctx context.Context, newAdmin auction.Identity) (shared.Receipt, error) {
	return l.submit(func() error {
		if !l.caller.Equal(l.admin) {
			return rejected("only admin")
		}
		l.admin = newAdmin
		return nil
	})
}

func (l *Ledger) submit(apply func() error) (shared.Receipt, error) {
	l.submissions.Add(1)
	if l.BeforeSubmit != nil {
		l.BeforeSubmit()
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.caller.IsZero() {
		return shared.Receipt{}, errs.ErrNoSigner
	}
	if l.submitFault != nil {
		return shared.Receipt{}, l.submitFault
	}
	if err := apply(); err != nil {
		return shared.Receipt{}, err
	}
	l.txSeq++
	return shared.Receipt{TxHash: fmt.Sprintf("0x%064x", l.txSeq)}, nil
}

func (l *Ledger) applyBid(who auction.Identity, amount auction.Amount) {
	if l.current == nil {
		return
	}
	l.bids[key(l.current.ID, who)] = amount
	if amount.Decimal().GreaterThan(l.current.WinningAmount.Decimal()) {
		l.current.WinningAmount = amount
		l.current.Winner = who
	}
}

func (l *Ledger) finish() {
	if l.current == nil {
		return
	}
	done := *l.current
	done.Active = false
	l.history = append(l.history, done)
	l.current = nil
}

func rejected(reason string) error {
	return errs.Mark(errs.New(reason), errs.ErrLedgerRejected)
}

var _ shared.LedgerGateway = (*Ledger)(nil)
