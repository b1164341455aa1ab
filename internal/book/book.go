// Package book implements the price-time-priority order book and its
// matching sweep.
package book

import (
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tidwall/btree"

	"fenrir/internal/order"
	"fenrir/internal/trade"
)

// priceLevel is a FIFO queue of resting orders at one price. Orders is
// append-only at the tail; matching and cleanup remove from the front and
// from the middle, in submission order, never reordering survivors.
type priceLevel struct {
	price  decimal.Decimal
	orders []*order.Order
}

type priceLevels = btree.BTreeG[*priceLevel]

// Book holds the venue's two priced sides. It may carry resting orders for
// more than one instrument: only orders sharing an (instrument, market,
// currency) triple are compatible for matching, so a single Book instance
// serves the whole engine rather than one per instrument. Two resting
// orders at an identical price but different instruments never cross.
type Book struct {
	mu sync.Mutex

	bids *priceLevels // sorted by price descending
	asks *priceLevels // sorted by price ascending

	tradeLog    []trade.Trade
	nextTradeID int64
}

// New returns an empty book.
func New() *Book {
	bids := btree.NewBTreeG(func(a, b *priceLevel) bool {
		return a.price.GreaterThan(b.price)
	})
	asks := btree.NewBTreeG(func(a, b *priceLevel) bool {
		return a.price.LessThan(b.price)
	})
	return &Book{bids: bids, asks: asks}
}

func (b *Book) sideLevels(side order.Side) *priceLevels {
	if side == order.Bid {
		return b.bids
	}
	return b.asks
}

// Insert places o at the tail of its side's queue for o.Price. No matching
// occurs here.
func (b *Book) Insert(o *order.Order) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.insertLocked(o)
}

func (b *Book) insertLocked(o *order.Order) {
	levels := b.sideLevels(o.Side)
	probe := &priceLevel{price: o.Price}
	level, ok := levels.GetMut(probe)
	if !ok {
		level = probe
		levels.Set(level)
	}
	level.orders = append(level.orders, o)
}

// Cancel removes a resting order by id from whichever side holds it. It
// returns false if no such order is resting.
func (b *Book) Cancel(orderID int64) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.cancelInSide(b.bids, orderID) || b.cancelInSide(b.asks, orderID)
}

func (b *Book) cancelInSide(levels *priceLevels, orderID int64) bool {
	var found *priceLevel
	idx := -1
	levels.Scan(func(level *priceLevel) bool {
		for i, o := range level.orders {
			if o.OrderID == orderID {
				found, idx = level, i
				return false
			}
		}
		return true
	})
	if found == nil {
		return false
	}
	found.orders = append(found.orders[:idx], found.orders[idx+1:]...)
	if len(found.orders) == 0 {
		levels.Delete(found)
	}
	return true
}

// LastTrade returns the most recently produced trade, if any.
func (b *Book) LastTrade() (trade.Trade, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.tradeLog) == 0 {
		return trade.Trade{}, false
	}
	return b.tradeLog[len(b.tradeLog)-1], true
}

// TradeLog returns a copy of every trade produced by this book, in the
// order they were produced.
func (b *Book) TradeLog() []trade.Trade {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]trade.Trade, len(b.tradeLog))
	copy(out, b.tradeLog)
	return out
}

// cleanupLevel drops filled orders from level and removes level from
// levels if it is left empty.
func cleanupLevel(levels *priceLevels, level *priceLevel) {
	filtered := level.orders[:0]
	for _, o := range level.orders {
		if o.RemainingQty > 0 {
			filtered = append(filtered, o)
		}
	}
	level.orders = filtered
	if len(level.orders) == 0 {
		levels.Delete(level)
	}
}

// expirePredicate reports whether o should be removed by an expiry sweep.
type expirePredicate func(o *order.Order) bool

func (b *Book) expireSide(levels *priceLevels, should expirePredicate) int {
	var toDelete []*priceLevel
	removed := 0
	levels.Scan(func(level *priceLevel) bool {
		filtered := level.orders[:0]
		for _, o := range level.orders {
			if should(o) {
				removed++
				continue
			}
			filtered = append(filtered, o)
		}
		level.orders = filtered
		if len(level.orders) == 0 {
			toDelete = append(toDelete, level)
		}
		return true
	})
	for _, level := range toDelete {
		levels.Delete(level)
	}
	return removed
}

// ExpireGTD removes every resting GTD order whose expiration has passed as
// of now. DAY orders are untouched.
func (b *Book) ExpireGTD(now time.Time) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	should := func(o *order.Order) bool { return o.Expired(now) }
	return b.expireSide(b.bids, should) + b.expireSide(b.asks, should)
}

// ExpireDay removes every resting DAY order unconditionally. The engine
// calls this at the daily reset, since DAY orders are valid only for the
// current trading day regardless of any expiration timestamp.
func (b *Book) ExpireDay(now time.Time) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	should := func(o *order.Order) bool { return o.TimeInForce == order.DAY }
	return b.expireSide(b.bids, should) + b.expireSide(b.asks, should)
}
