// Package trade defines the immutable execution records a matching sweep
// produces.
package trade

import (
	"time"

	"github.com/shopspring/decimal"

	"fenrir/internal/order"
)

// Trade is produced by the book's matching sweep. It is never modified
// once appended to the book's trade log.
type Trade struct {
	TradeID     int64
	BuyOrderID  int64
	SellOrderID int64

	MarketCode string
	Currency   string

	Price     decimal.Decimal
	Quantity  int64
	Timestamp time.Time
}

// ExecutionReport is the per-party view of a Trade, kept as a plain
// in-process value a future transport layer could serialize, not a wire
// format itself.
type ExecutionReport struct {
	OrderID             int64
	CounterpartyOrderID int64
	Side                order.Side
	Quantity            int64
	Price               decimal.Decimal
	Timestamp           time.Time
}

// Reports splits a Trade into the buy-side and sell-side execution reports.
func (t Trade) Reports() (buyer, seller ExecutionReport) {
	buyer = ExecutionReport{
		OrderID:             t.BuyOrderID,
		CounterpartyOrderID: t.SellOrderID,
		Side:                order.Bid,
		Quantity:            t.Quantity,
		Price:               t.Price,
		Timestamp:           t.Timestamp,
	}
	seller = ExecutionReport{
		OrderID:             t.SellOrderID,
		CounterpartyOrderID: t.BuyOrderID,
		Side:                order.Ask,
		Quantity:            t.Quantity,
		Price:               t.Price,
		Timestamp:           t.Timestamp,
	}
	return buyer, seller
}
