// Package engine ties the instrument registry, order book, and statistics
// accumulator together and drives a background worker that matches,
// expires, and reports alongside concurrent order submission.
package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/shopspring/decimal"
	tomb "gopkg.in/tomb.v2"

	"fenrir/internal/book"
	"fenrir/internal/instrument"
	"fenrir/internal/order"
	"fenrir/internal/stats"
	"fenrir/internal/status"
	"fenrir/internal/trade"
)

// Engine owns the book, the instrument registry, and the statistics
// accumulator, and runs the worker that advances time for all three. It
// follows a STOPPED -> RUNNING -> STOPPED state machine with idempotent
// transitions.
type Engine struct {
	registry *instrument.Registry
	book     *book.Book
	stats    *stats.Stats
	emitter  *status.Emitter
	config   Config

	running atomic.Bool
	t       *tomb.Tomb

	// mu guards the worker's own bookkeeping timestamps; it is never held
	// across a book operation.
	mu                sync.Mutex
	lastExpiryCheckTS time.Time
	lastStatusTS      time.Time
}

// New returns a STOPPED engine wired to registry, configured by cfg, and
// emitting observability lines through emitter.
func New(registry *instrument.Registry, cfg Config, emitter *status.Emitter) *Engine {
	now := time.Now()
	return &Engine{
		registry: registry,
		book:     book.New(),
		stats:    stats.New(now),
		emitter:  emitter,
		config:   cfg,
	}
}

// Running reports whether the engine's worker is active.
func (e *Engine) Running() bool {
	return e.running.Load()
}

// Start transitions STOPPED -> RUNNING: it resets statistics, marks the
// engine running, and spawns the worker. Calling Start while already
// running is a no-op.
func (e *Engine) Start() {
	if !e.running.CompareAndSwap(false, true) {
		return
	}

	now := time.Now()
	e.stats = stats.New(now)

	e.mu.Lock()
	e.lastExpiryCheckTS = now
	e.lastStatusTS = now
	e.mu.Unlock()

	e.t = new(tomb.Tomb)
	e.t.Go(e.runWorker)
	e.emitter.EngineStarted()
}

// Stop transitions RUNNING -> STOPPED, joining the worker before
// returning. Calling Stop while already stopped is a no-op.
func (e *Engine) Stop() {
	if !e.running.CompareAndSwap(true, false) {
		return
	}
	e.t.Kill(nil)
	_ = e.t.Wait()
	e.emitter.EngineStopped()
}

// Submit looks up the order's instrument by its routing triple, validates
// price and quantity, inserts it, and runs an immediate matching sweep, so
// a crossing order is matched before Submit returns. It returns false
// with no side effects if the instrument is unknown or either validator
// fails.
func (e *Engine) Submit(o *order.Order) bool {
	inst, ok := e.registry.Find(o.Key)
	if !ok {
		return false
	}

	// Market (NONE) orders carry no limit price to validate against the
	// tick grid; the price validator applies only to resting limit orders.
	if o.LimitType == order.Limit {
		if err := order.ValidatePrice(o.Price, inst.PriceDecimal, e.config.PriceEpsilon); err != nil {
			e.emitter.ValidationRejected(o.OrderID, err)
			return false
		}
	}
	if err := order.ValidateQuantity(o.OriginalQty, inst.LotSize); err != nil {
		e.emitter.ValidationRejected(o.OrderID, err)
		return false
	}

	if o.RemainingQty == 0 {
		o.RemainingQty = o.OriginalQty
	}
	if o.PriorityTS.IsZero() {
		o.PriorityTS = time.Now()
	}

	var trades []trade.Trade
	if o.LimitType == order.None {
		// Market (non-resting) order: sweep liquidity immediately and
		// discard whatever remains unfilled.
		trades = e.book.SweepMarket(o, time.Now())
	} else {
		e.book.Insert(o)
		trades = e.book.Match(time.Now())
	}

	e.recordTrades(trades)
	if len(trades) > 0 {
		e.emitter.SweepTrades(len(trades))
	}
	return true
}

// Cancel removes a resting order by id, if present.
func (e *Engine) Cancel(orderID int64) bool {
	return e.book.Cancel(orderID)
}

// recordTrades feeds each trade's notional to the statistics accumulator
// at the call site — the book itself holds no back-pointer to the engine.
func (e *Engine) recordTrades(trades []trade.Trade) {
	for _, tr := range trades {
		notional := tr.Price.Mul(decimal.NewFromInt(tr.Quantity))
		f, _ := notional.Float64()
		e.stats.RecordTrade(f)
	}
}

// Stats returns a read-only snapshot of the statistics accumulator.
func (e *Engine) Stats() stats.Snapshot {
	return e.stats.Snapshot()
}

// Snapshot returns the book's read-only depth/order view.
func (e *Engine) Snapshot() book.Snapshot {
	return e.book.Snapshot()
}

// ListGTD returns every resting GTD order across both sides of the book.
func (e *Engine) ListGTD() []order.Order {
	snap := e.book.Snapshot()
	var out []order.Order
	for _, levels := range [][]book.Level{snap.Bids, snap.Asks} {
		for _, lvl := range levels {
			for _, o := range lvl.Orders {
				if o.TimeInForce == order.GTD {
					out = append(out, o)
				}
			}
		}
	}
	return out
}
