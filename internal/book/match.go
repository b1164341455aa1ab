package book

import (
	"time"

	"github.com/shopspring/decimal"

	"fenrir/internal/order"
	"fenrir/internal/trade"
)

// Match performs a matching sweep under the book's exclusive lock and
// returns every trade it produced, in production order. The caller is
// responsible for feeding each trade to the statistics accumulator — the
// book itself holds no reference to anything outside it.
func (b *Book) Match(now time.Time) []trade.Trade {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.matchLocked(now)
}

func (b *Book) matchLocked(now time.Time) []trade.Trade {
	var produced []trade.Trade

	for {
		bestBid, bidOk := b.bids.Min()
		bestAsk, askOk := b.asks.Min()
		if !bidOk || !askOk {
			break
		}
		if bestBid.price.LessThan(bestAsk.price) {
			break
		}

		bidIdx, askIdx, found := findCompatiblePair(bestBid, bestAsk)
		if !found {
			// A full pass over the top-of-book queues found no compatible
			// pair: the sweep cannot advance further this call.
			break
		}

		bidOrder := bestBid.orders[bidIdx]
		askOrder := bestAsk.orders[askIdx]

		// The resting ask's price wins on a cross.
		tr := b.executeTrade(bidOrder, askOrder, askOrder.Price, now)
		produced = append(produced, tr)

		cleanupLevel(b.bids, bestBid)
		cleanupLevel(b.asks, bestAsk)
	}

	return produced
}

// executeTrade emits one trade between bidOrder and askOrder at the given
// execution price, decrementing both remaining quantities.
func (b *Book) executeTrade(bidOrder, askOrder *order.Order, price decimal.Decimal, now time.Time) trade.Trade {
	qty := min(bidOrder.RemainingQty, askOrder.RemainingQty)

	b.nextTradeID++
	tr := trade.Trade{
		TradeID:     b.nextTradeID,
		BuyOrderID:  bidOrder.OrderID,
		SellOrderID: askOrder.OrderID,
		MarketCode:  askOrder.MarketCode,
		Currency:    askOrder.Currency,
		Price:       price,
		Quantity:    qty,
		Timestamp:   now,
	}

	bidOrder.RemainingQty -= qty
	askOrder.RemainingQty -= qty

	b.tradeLog = append(b.tradeLog, tr)
	return tr
}

// findCompatiblePair scans the bid queue front to back; for each bid it
// scans the ask queue front to back until a same-triple ask is found. It
// never reorders either queue.
func findCompatiblePair(bidLevel, askLevel *priceLevel) (bidIdx, askIdx int, ok bool) {
	for i, bidOrder := range bidLevel.orders {
		for j, askOrder := range askLevel.orders {
			if bidOrder.Key == askOrder.Key {
				return i, j, true
			}
		}
	}
	return 0, 0, false
}

// SweepMarket matches a non-resting (limit_type = NONE) order against the
// opposite side until it is filled or the book runs out of compatible
// liquidity, then discards whatever quantity remains unfilled rather than
// resting it.
func (b *Book) SweepMarket(taker *order.Order, now time.Time) []trade.Trade {
	b.mu.Lock()
	defer b.mu.Unlock()

	levels := b.sideLevels(opposite(taker.Side))

	var produced []trade.Trade
	for taker.RemainingQty > 0 {
		level, ok := levels.Min()
		if !ok {
			break
		}

		matched := false
		for _, resting := range level.orders {
			if resting.Key != taker.Key || resting.RemainingQty == 0 {
				continue
			}

			// A market order takes at the resting (maker) order's price.
			var tr trade.Trade
			if taker.Side == order.Bid {
				tr = b.executeTrade(taker, resting, resting.Price, now)
			} else {
				tr = b.executeTrade(resting, taker, resting.Price, now)
			}
			produced = append(produced, tr)
			matched = true

			if taker.RemainingQty == 0 {
				break
			}
		}

		cleanupLevel(levels, level)
		if !matched {
			break
		}
	}

	return produced
}

func opposite(side order.Side) order.Side {
	if side == order.Bid {
		return order.Ask
	}
	return order.Bid
}
