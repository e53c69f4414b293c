package coordinator

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"auction-sync/internal/domain/auction"
	"auction-sync/internal/domain/guard"
	"auction-sync/internal/pkg/clock"
	"auction-sync/internal/pkg/errs"
	"auction-sync/internal/pkg/metrics"
	"auction-sync/internal/usecase/shared"
	"auction-sync/internal/usecase/snapshot"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"go.uber.org/atomic"
	"golang.org/x/sync/singleflight"
)

const resyncKey = "resync"

// Coordinator owns the published snapshot. It runs background resyncs, performs guarded actions
// one at a time and resyncs after every action.
type Coordinator struct {
	gateway shared.LedgerGateway
	builder *snapshot.Builder
	journal shared.ActionJournal
	metrics *metrics.Recorder
	clock   clock.Clock
	logger  *slog.Logger
	opts    Options

	current atomic.Pointer[auction.Snapshot]
	tick    atomic.Uint64
	state   atomic.String
	flight  singleflight.Group
	// serializes Perform
	actionMu sync.Mutex
}

func New(
	gateway shared.LedgerGateway,
	builder *snapshot.Builder,
	journal shared.ActionJournal,
	recorder *metrics.Recorder,
	clk clock.Clock,
	logger *slog.Logger,
	opts Options,
) *Coordinator {
	if journal == nil {
		journal = shared.NopJournal{}
	}
	c := &Coordinator{
		gateway: gateway,
		builder: builder,
		journal: journal,
		metrics: recorder,
		clock:   clk,
		logger:  logger,
		opts:    opts,
	}
	c.state.Store(string(StateIdle))
	return c
}

func (c *Coordinator) State() State {
	return State(c.state.Load())
}

func (c *Coordinator) setState(s State) {
	c.state.Store(string(s))
}

// CurrentView never blocks on the ledger.
func (c *Coordinator) CurrentView() View {
	s := c.current.Load()
	return View{Snapshot: s, Derived: auction.Derive(s, c.clock.Now())}
}

// Resync rebuilds the snapshot. A call made while a rebuild is in flight joins it instead of
// starting another. On failure the previously published snapshot stays in place.
func (c *Coordinator) Resync(ctx context.Context) (*auction.Snapshot, error) {
	ch := c.flight.DoChan(resyncKey, func() (any, error) {
		return c.resyncOnce()
	})
	select {
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*auction.Snapshot), nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// resyncFresh returns a snapshot whose reads all started after tick mark.
func (c *Coordinator) resyncFresh(ctx context.Context, mark uint64) (*auction.Snapshot, error) {
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		s, err := c.Resync(ctx)
		if err != nil {
			return nil, err
		}
		if s.AsOf > mark {
			return s, nil
		}
	}
}

func (c *Coordinator) resyncOnce() (*auction.Snapshot, error) {
	// joiners share this build, so no single caller's context may cancel it
	ctx := context.Background()
	if c.opts.ResyncTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.opts.ResyncTimeout)
		defer cancel()
	}

	tick := c.tick.Inc()
	start := time.Now()
	s, err := c.builder.Build(ctx, tick)
	took := time.Since(start)
	if err != nil {
		c.metrics.ObserveResync(resultOf(err), took)
		return nil, err
	}
	if !c.publish(s) {
		c.metrics.ObserveResync("stale", took)
		return c.current.Load(), nil
	}
	c.metrics.ObserveResync("ok", took)
	return s, nil
}

// publish installs s unless a snapshot with an equal or later tick is already published.
func (c *Coordinator) publish(s *auction.Snapshot) bool {
	for {
		old := c.current.Load()
		if old != nil && old.AsOf >= s.AsOf {
			c.logger.Debug("discarding stale snapshot",
				slog.Uint64("as_of", s.AsOf),
				slog.Uint64("published", old.AsOf))
			return false
		}
		if c.current.CompareAndSwap(old, s) {
			c.metrics.SnapshotPublished(s.AsOf, len(s.History), s.TakenAt)
			return true
		}
	}
}

func resultOf(err error) string {
	switch {
	case errs.Is(err, errs.ErrGatewayUnavailable):
		return "unavailable"
	case errs.Is(err, errs.ErrPartialRead):
		return "partial_read"
	default:
		return "error"
	}
}

// Perform runs one action through the guard, submits it if approved and resyncs whatever the
// outcome. It does not return an error: every failure is an Outcome.
func (c *Coordinator) Perform(ctx context.Context, action guard.Action) Outcome {
	c.actionMu.Lock()
	defer c.actionMu.Unlock()

	c.setState(StateValidating)
	snap := c.current.Load()
	view := auction.Derive(snap, c.clock.Now())
	decision := guard.Evaluate(action, snap, view)

	var out Outcome
	if decision.Approved() {
		out = c.submit(ctx, decision.Submission)
	} else {
		out = Outcome{
			Kind:        OutcomeGuardRejected,
			GuardReason: decision.Reason,
			Reason:      decision.Reason.Message(),
		}
	}
	out.Action = action.Kind()
	if !out.Succeeded() {
		c.setState(StateFailed)
	}

	c.setState(StateResyncing)
	mark := c.tick.Load()
	fresh, err := c.resyncFresh(ctx, mark)
	if err != nil {
		out.ResyncErr = err
		c.logger.Warn("post-action resync failed",
			slog.String("action", string(out.Action)),
			slog.String("error", err.Error()))
	} else {
		out.AsOf = fresh.AsOf
	}
	c.setState(StateIdle)

	c.metrics.ObserveAction(string(out.Action), string(out.Kind))
	c.record(ctx, snap, out)
	c.logger.Info("action performed",
		slog.String("action", string(out.Action)),
		slog.String("outcome", string(out.Kind)),
		slog.String("reason", out.Reason),
		slog.String("tx", out.TxHash))
	return out
}

func (c *Coordinator) submit(ctx context.Context, sub guard.Submission) Outcome {
	c.setState(StateSubmitting)
	// a forwarded submission is not cancellable; only the confirmation wait is bounded
	sctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.opts.ConfirmTimeout)
	defer cancel()

	c.setState(StateAwaitingConfirmation)
	var (
		receipt shared.Receipt
		err     error
	)
	switch sub.Kind {
	case guard.KindPlaceBid:
		receipt, err = c.gateway.SubmitBid(sctx, sub.Amount)
	case guard.KindEndAuction:
		receipt, err = c.gateway.SubmitEndAuction(sctx)
	case guard.KindWithdraw:
		receipt, err = c.gateway.SubmitWithdraw(sctx, sub.AuctionID)
	case guard.KindCreateAuction:
		receipt, err = c.gateway.SubmitCreateAuction(sctx, sub.Product, sub.DurationMinutes)
	case guard.KindChangeAdmin:
		receipt, err = c.gateway.SubmitChangeAdmin(sctx, sub.NewAdmin)
	default:
		err = errs.Newf("unsupported submission %q", sub.Kind)
	}

	out := Outcome{TxHash: receipt.TxHash}
	switch {
	case err == nil:
		out.Kind = OutcomeConfirmed
	case errs.Is(err, errs.ErrLedgerRejected):
		out.Kind = OutcomeLedgerRejected
		out.Reason = errs.Cause(err)
	default:
		out.Kind = OutcomeLedgerFailure
		out.Reason = err.Error()
	}
	return out
}

func (c *Coordinator) record(ctx context.Context, before *auction.Snapshot, out Outcome) {
	entry := shared.JournalEntry{
		ID:        uuid.New(),
		Kind:      string(out.Action),
		Caller:    c.gateway.Caller().String(),
		Outcome:   string(out.Kind),
		Reason:    out.Reason,
		TxHash:    out.TxHash,
		AsOfAfter: out.AsOf,
		CreatedAt: c.clock.Now(),
	}
	if before != nil {
		entry.AsOfBefore = before.AsOf
	}
	if err := c.journal.Record(context.WithoutCancel(ctx), entry); err != nil {
		c.logger.Error("failed to journal action",
			slog.String("action", entry.Kind),
			slog.String("error", err.Error()))
	}
}

// Run resyncs immediately and then on a fixed interval until ctx is done. A gateway that reports
// errs.ErrGatewayUnavailable (never dialed or nil) ends the loop with an error. Read failures,
// including a connection lost after dial, keep the previous snapshot and back off exponentially
// up to MaxBackoff; the next success restores the normal interval.
func (c *Coordinator) Run(ctx context.Context) error {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = c.opts.Interval
	bo.MaxInterval = c.opts.MaxBackoff
	bo.MaxElapsedTime = 0
	bo.Reset()

	next, err := c.cycle(ctx, bo)
	if err != nil {
		return err
	}

	timer := time.NewTimer(next)
	defer timer.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-timer.C:
			next, err = c.cycle(ctx, bo)
			if err != nil {
				return err
			}
			timer.Reset(next)
		}
	}
}

func (c *Coordinator) cycle(ctx context.Context, bo *backoff.ExponentialBackOff) (time.Duration, error) {
	_, err := c.Resync(ctx)
	if err == nil {
		bo.Reset()
		return c.opts.Interval, nil
	}
	if ctx.Err() != nil {
		return c.opts.Interval, nil
	}
	if errs.Is(err, errs.ErrGatewayUnavailable) {
		c.logger.Error("ledger gateway unavailable, stopping resync loop", slog.String("error", err.Error()))
		return 0, err
	}

	delay := bo.NextBackOff()
	if delay < c.opts.Interval {
		delay = c.opts.Interval
	}
	if c.opts.MaxBackoff > 0 && delay > c.opts.MaxBackoff {
		delay = c.opts.MaxBackoff
	}
	c.logger.Warn("resync failed, keeping previous snapshot",
		slog.String("error", err.Error()),
		slog.Duration("retry_in", delay))
	return delay, nil
}
