// Package instrument holds the venue's tradable instrument records and the
// registry that stores them.
package instrument

import (
	"github.com/shopspring/decimal"

	"fenrir/internal/routing"
)

// State is the lifecycle state of an instrument. Registration is the only
// transition the core implements; further state changes are out of scope.
type State int

const (
	Active State = iota
	Inactive
	Suspended
	Delisted
)

func (s State) String() string {
	switch s {
	case Active:
		return "ACTIVE"
	case Inactive:
		return "INACTIVE"
	case Suspended:
		return "SUSPENDED"
	case Delisted:
		return "DELISTED"
	default:
		return "UNKNOWN"
	}
}

// maxNameCodePoints bounds Instrument.Name to a display-friendly length:
// 50 code points.
const maxNameCodePoints = 50

// Instrument is a record identified by the composite key
// (instrument_id, market_code, currency). Immutable once registered.
type Instrument struct {
	routing.Key

	Name           string
	IssueNumber    int64
	State          State
	ReferencePrice decimal.Decimal
	TradingGroupID string

	// LotSize is the minimum tradable quantity unit; orders must submit a
	// quantity that is an integer multiple of it.
	LotSize int64
	// PriceDecimal defines the tick grid: tick = 10^-PriceDecimal.
	PriceDecimal int32

	AuxIDs map[string]string
}

// TruncatedName returns Name clipped to maxNameCodePoints code points.
// Register stores every record with its Name clipped this way.
func (i Instrument) TruncatedName() string {
	r := []rune(i.Name)
	if len(r) <= maxNameCodePoints {
		return i.Name
	}
	return string(r[:maxNameCodePoints])
}

// Tick returns the instrument's smallest price increment, 10^-PriceDecimal.
func (i Instrument) Tick() decimal.Decimal {
	return decimal.New(1, -i.PriceDecimal)
}
