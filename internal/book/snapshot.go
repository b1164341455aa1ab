package book

import (
	"github.com/shopspring/decimal"

	"fenrir/internal/order"
)

// Level is one price level of a depth snapshot: the price, the total
// remaining quantity resting at that price, and the resident orders in
// queue order.
type Level struct {
	Price         decimal.Decimal
	LevelQuantity int64
	Orders        []order.Order
}

// Snapshot is a read-only view of both sides, suitable for depth-chart and
// table rendering.
type Snapshot struct {
	Bids []Level
	Asks []Level
}

// Snapshot returns a point-in-time, read-only view of the book.
func (b *Book) Snapshot() Snapshot {
	b.mu.Lock()
	defer b.mu.Unlock()
	return Snapshot{
		Bids: snapshotSide(b.bids),
		Asks: snapshotSide(b.asks),
	}
}

func snapshotSide(levels *priceLevels) []Level {
	var out []Level
	levels.Scan(func(level *priceLevel) bool {
		var total int64
		orders := make([]order.Order, len(level.orders))
		for i, o := range level.orders {
			total += o.RemainingQty
			orders[i] = *o
		}
		out = append(out, Level{
			Price:         level.price,
			LevelQuantity: total,
			Orders:        orders,
		})
		return true
	})
	return out
}
