// Command engine wires an instrument registry to a matching engine and
// exercises the submission entry point as a standalone in-process demo.
package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/shopspring/decimal"

	"fenrir/internal/engine"
	"fenrir/internal/instrument"
	"fenrir/internal/order"
	"fenrir/internal/routing"
	"fenrir/internal/status"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	key := routing.Key{InstrumentID: 1, MarketCode: "XPAR", Currency: "EUR"}

	registry := instrument.NewRegistry()
	registry.Register(instrument.Instrument{
		Key:            key,
		Name:           "Demo Equity",
		State:          instrument.Active,
		ReferencePrice: decimal.NewFromFloat(150),
		LotSize:        100,
		PriceDecimal:   2,
	})

	eng := engine.New(registry, engine.DefaultConfig(), status.Default())
	eng.Start()
	defer eng.Stop()

	eng.Submit(&order.Order{
		OrderID:     1001,
		FirmID:      order.NewFirmID(),
		Key:         key,
		Side:        order.Bid,
		Price:       decimal.NewFromFloat(155.00),
		LimitType:   order.Limit,
		OriginalQty: 300,
		TimeInForce: order.DAY,
	})
	eng.Submit(&order.Order{
		OrderID:     2001,
		FirmID:      order.NewFirmID(),
		Key:         key,
		Side:        order.Ask,
		Price:       decimal.NewFromFloat(148.00),
		LimitType:   order.Limit,
		OriginalQty: 200,
		TimeInForce: order.DAY,
	})

	<-ctx.Done()
}
