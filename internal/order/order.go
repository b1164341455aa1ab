// Package order defines the Order entity and its validators.
package order

import (
	"time"

	"github.com/shopspring/decimal"

	"fenrir/internal/routing"
)

// Side is the direction of a resting or incoming order.
type Side int

const (
	Bid Side = iota
	Ask
)

func (s Side) String() string {
	if s == Bid {
		return "BID"
	}
	return "ASK"
}

// LimitType distinguishes resting limit orders from market orders (None),
// which match immediately against resting liquidity and discard any
// unfilled remainder instead of resting it.
type LimitType int

const (
	Limit LimitType = iota
	None
)

// TimeInForce controls an order's expiry policy.
type TimeInForce int

const (
	DAY TimeInForce = iota
	GTD
)

// Order is a single buy or sell instruction routed to an instrument's book.
type Order struct {
	OrderID int64
	FirmID  string

	routing.Key

	Side      Side
	Price     decimal.Decimal
	LimitType LimitType

	// OriginalQty never changes after submission. RemainingQty decreases
	// monotonically as the order is matched; zero means fully executed.
	OriginalQty  int64
	RemainingQty int64

	// PriorityTS is the submission timestamp; it is the order's time
	// priority and never changes once set.
	PriorityTS time.Time

	TimeInForce  TimeInForce
	ExpirationTS time.Time
}

// Filled reports whether the order has no quantity left to match.
func (o *Order) Filled() bool {
	return o.RemainingQty <= 0
}

// Expired reports whether a GTD order's expiration has passed as of now.
// DAY orders are never reported expired here; their expiry is tied to the
// daily reset instead.
func (o *Order) Expired(now time.Time) bool {
	return o.TimeInForce == GTD && !o.ExpirationTS.IsZero() && !o.ExpirationTS.After(now)
}
