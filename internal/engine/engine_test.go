package engine

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"fenrir/internal/instrument"
	"fenrir/internal/order"
	"fenrir/internal/routing"
	"fenrir/internal/status"
)

var testKey = routing.Key{InstrumentID: 1, MarketCode: "XPAR", Currency: "EUR"}

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	registry := instrument.NewRegistry()
	registry.Register(instrument.Instrument{
		Key:          testKey,
		Name:         "Demo Equity",
		State:        instrument.Active,
		LotSize:      100,
		PriceDecimal: 2,
	})
	return New(registry, DefaultConfig(), status.New(testWriter{t}))
}

// testWriter routes the zerolog console writer into the test log so
// failures show context without polluting stdout in passing runs.
type testWriter struct{ t *testing.T }

func (w testWriter) Write(p []byte) (int, error) {
	w.t.Log(string(p))
	return len(p), nil
}

func TestSubmit_UnknownInstrument(t *testing.T) {
	e := newTestEngine(t)
	ok := e.Submit(&order.Order{
		OrderID: 1, Key: routing.Key{InstrumentID: 99, MarketCode: "XPAR", Currency: "EUR"},
		Side: order.Bid, Price: decimal.NewFromFloat(150), OriginalQty: 100,
	})
	assert.False(t, ok)
}

// Scenario 4 (spec §8): tick/lot rejections leave the book unchanged.
func TestSubmit_ValidationRejections(t *testing.T) {
	e := newTestEngine(t)

	badTick := e.Submit(&order.Order{OrderID: 1, Key: testKey, Side: order.Bid, Price: decimal.NewFromFloat(150.005), OriginalQty: 100})
	assert.False(t, badTick)

	badLot := e.Submit(&order.Order{OrderID: 2, Key: testKey, Side: order.Bid, Price: decimal.NewFromFloat(150.00), OriginalQty: 150})
	assert.False(t, badLot)

	snap := e.Snapshot()
	assert.Empty(t, snap.Bids)
	assert.Empty(t, snap.Asks)
}

// Scenario 1 (spec §8) run through the engine, also checking stats.
func TestSubmit_BasicCross(t *testing.T) {
	e := newTestEngine(t)

	assert.True(t, e.Submit(&order.Order{
		OrderID: 1001, Key: testKey, Side: order.Bid,
		Price: decimal.NewFromFloat(155.00), OriginalQty: 300, TimeInForce: order.DAY,
	}))
	assert.True(t, e.Submit(&order.Order{
		OrderID: 2001, Key: testKey, Side: order.Ask,
		Price: decimal.NewFromFloat(148.00), OriginalQty: 200, TimeInForce: order.DAY,
	}))

	snap := e.Snapshot()
	assert.Empty(t, snap.Asks)
	assert.Equal(t, int64(100), snap.Bids[0].Orders[0].RemainingQty)

	stats := e.Stats()
	assert.Equal(t, int64(1), stats.TotalTradeCount)
	assert.Equal(t, int64(1), stats.SuccessfulMatches)
	assert.InDelta(t, 148.00*200, stats.TotalNotional, 1e-6)
}

func TestCancel(t *testing.T) {
	e := newTestEngine(t)
	e.Submit(&order.Order{OrderID: 1, Key: testKey, Side: order.Bid, Price: decimal.NewFromFloat(150.00), OriginalQty: 100})

	assert.True(t, e.Cancel(1))
	assert.False(t, e.Cancel(1))
	assert.Empty(t, e.Snapshot().Bids)
}

func TestListGTD(t *testing.T) {
	e := newTestEngine(t)
	e.Submit(&order.Order{
		OrderID: 1, Key: testKey, Side: order.Bid, Price: decimal.NewFromFloat(150.00),
		OriginalQty: 100, TimeInForce: order.GTD, ExpirationTS: time.Now().Add(time.Hour),
	})
	e.Submit(&order.Order{
		OrderID: 2, Key: testKey, Side: order.Ask, Price: decimal.NewFromFloat(160.00),
		OriginalQty: 100, TimeInForce: order.DAY,
	})

	gtd := e.ListGTD()
	assert.Len(t, gtd, 1)
	assert.Equal(t, int64(1), gtd[0].OrderID)
}

// P6: stop is idempotent and joins the worker promptly; Stop must return
// within one second.
func TestStartStop_Idempotent(t *testing.T) {
	e := newTestEngine(t)
	e.config.WorkerTickInterval = 5 * time.Millisecond

	e.Stop() // stopping an already-stopped engine is a no-op
	assert.False(t, e.Running())

	e.Start()
	assert.True(t, e.Running())
	e.Start() // starting an already-running engine is a no-op

	done := make(chan struct{})
	go func() {
		e.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop did not return within one second")
	}
	assert.False(t, e.Running())

	e.Stop() // stopping again is still a no-op
}

func TestSubmit_MarketOrder(t *testing.T) {
	e := newTestEngine(t)
	e.Submit(&order.Order{OrderID: 1, Key: testKey, Side: order.Ask, Price: decimal.NewFromFloat(150.00), OriginalQty: 100})

	ok := e.Submit(&order.Order{
		OrderID: 2, Key: testKey, Side: order.Bid, LimitType: order.None, OriginalQty: 100,
	})
	assert.True(t, ok)
	assert.Empty(t, e.Snapshot().Asks)

	stats := e.Stats()
	assert.Equal(t, int64(1), stats.TotalTradeCount)
}
