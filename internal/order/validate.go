package order

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Validation failures reported by Validate*. The engine turns these into a
// boolean at the submission boundary while still logging the underlying
// reason.
var (
	ErrInvalidPrice    = errors.New("invalid price")
	ErrInvalidQuantity = errors.New("invalid quantity")
)

// ValidatePrice checks price > 0 and that price sits on the instrument's
// tick grid: price * 10^priceDecimal must be within epsilon of an integer.
// epsilon is the tolerance carried for float-sourced prices; it is unused
// when price already resolves to an exact decimal multiple of the tick
// (the common, non-float-converted path).
func ValidatePrice(price decimal.Decimal, priceDecimal int32, epsilon float64) error {
	if price.Sign() <= 0 {
		return fmt.Errorf("%w: price %s must be positive", ErrInvalidPrice, price)
	}

	tick := decimal.New(1, -priceDecimal)
	scaled := price.Div(tick)
	nearest := scaled.Round(0)
	diff := scaled.Sub(nearest).Abs()

	if diff.GreaterThan(decimal.NewFromFloat(epsilon)) {
		return fmt.Errorf("%w: price %s is not on the tick grid (decimal=%d)", ErrInvalidPrice, price, priceDecimal)
	}
	return nil
}

// ValidateQuantity checks quantity > 0 and that it is an integer multiple
// of the instrument's lot size.
func ValidateQuantity(quantity int64, lotSize int64) error {
	if quantity <= 0 {
		return fmt.Errorf("%w: quantity %d must be positive", ErrInvalidQuantity, quantity)
	}
	if lotSize <= 0 {
		return fmt.Errorf("%w: instrument lot size %d is invalid", ErrInvalidQuantity, lotSize)
	}
	if quantity%lotSize != 0 {
		return fmt.Errorf("%w: quantity %d is not a multiple of lot size %d", ErrInvalidQuantity, quantity, lotSize)
	}
	return nil
}
