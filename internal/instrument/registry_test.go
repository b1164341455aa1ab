package instrument

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"fenrir/internal/routing"
)

func sampleInstrument() Instrument {
	return Instrument{
		Key:          routing.Key{InstrumentID: 1, MarketCode: "XPAR", Currency: "EUR"},
		Name:         "Demo Equity",
		State:        Active,
		LotSize:      100,
		PriceDecimal: 2,
	}
}

func TestRegister_FirstWins(t *testing.T) {
	r := NewRegistry()

	assert.True(t, r.Register(sampleInstrument()))
	assert.False(t, r.Register(sampleInstrument()), "duplicate composite key must be rejected")
	assert.Len(t, r.List(), 1)
}

func TestRegister_DistinctTriplesCoexist(t *testing.T) {
	r := NewRegistry()

	a := sampleInstrument()
	b := sampleInstrument()
	b.InstrumentID = 2

	assert.True(t, r.Register(a))
	assert.True(t, r.Register(b))
	assert.Len(t, r.List(), 2)
}

func TestList_InsertionOrder(t *testing.T) {
	r := NewRegistry()

	first := sampleInstrument()
	second := sampleInstrument()
	second.InstrumentID = 2
	third := sampleInstrument()
	third.InstrumentID = 3

	r.Register(third)
	r.Register(first)
	r.Register(second)

	list := r.List()
	assert.Equal(t, []int64{3, 1, 2}, []int64{list[0].InstrumentID, list[1].InstrumentID, list[2].InstrumentID})
}

func TestFind(t *testing.T) {
	r := NewRegistry()
	inst := sampleInstrument()
	r.Register(inst)

	found, ok := r.Find(inst.Key)
	assert.True(t, ok)
	assert.Equal(t, inst, found)

	_, ok = r.Find(routing.Key{InstrumentID: 99, MarketCode: "XPAR", Currency: "EUR"})
	assert.False(t, ok)
}
