package status

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"fenrir/internal/stats"
)

func TestEmitter_WritesLines(t *testing.T) {
	var buf bytes.Buffer
	e := New(&buf)

	e.EngineStarted()
	e.EngineStopped()
	e.ValidationRejected(42, errors.New("bad tick"))
	e.SweepError(errors.New("boom"))

	out := buf.String()
	assert.Contains(t, out, "engine started")
	assert.Contains(t, out, "engine stopped")
	assert.Contains(t, out, "bad tick")
	assert.Contains(t, out, "internal sweep error")
}

func TestEmitter_SweepTrades_SkipsZero(t *testing.T) {
	var buf bytes.Buffer
	e := New(&buf)

	e.SweepTrades(0)
	assert.Empty(t, buf.String())

	e.SweepTrades(3)
	assert.Contains(t, buf.String(), "matching sweep produced trades")
}

func TestEmitter_StatusUpdate(t *testing.T) {
	var buf bytes.Buffer
	e := New(&buf)

	snap := stats.Snapshot{
		DailyTradeCount:   5,
		DailyNotional:     1000,
		TotalTradeCount:   50,
		MatchingAttempts:  60,
		SuccessfulMatches: 50,
		LastDailyResetTS:  time.Now(),
	}
	e.StatusUpdate(true, snap)

	out := buf.String()
	assert.Contains(t, out, "status")
	assert.Contains(t, out, "dailyTrades")
}
