// Package routing holds the composite identity shared by instruments and
// orders: instrument id, market code and currency. Splitting it out keeps
// the instrument and order packages free of an import cycle.
package routing

import "fmt"

// Key is the composite (instrument_id, market_code, currency) triple that
// identifies a tradable instrument and routes an order to its book.
type Key struct {
	InstrumentID int64
	MarketCode   string
	Currency     string
}

func (k Key) String() string {
	return fmt.Sprintf("%d/%s/%s", k.InstrumentID, k.MarketCode, k.Currency)
}
