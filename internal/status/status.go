// Package status implements the engine's observability sink: a
// plain-text, line-buffered log the engine writes to at engine
// start/stop, on each daily reset, when a sweep produces a trade, at
// hourly GTD checks, and at the periodic status update.
package status

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"fenrir/internal/stats"
)

// Emitter wraps a zerolog.Logger configured to write human-readable,
// timestamp-prefixed lines. It is instantiated per engine rather than
// held as a package-level logger, so tests can capture the output.
type Emitter struct {
	log zerolog.Logger
}

// New wraps w in a console-formatted zerolog.Logger. Passing os.Stdout
// gives a line-buffered, human-readable sink; tests typically pass a
// bytes.Buffer instead.
func New(w io.Writer) *Emitter {
	console := zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	logger := zerolog.New(console).With().Timestamp().Logger()
	return &Emitter{log: logger}
}

// Default returns an Emitter writing to stdout.
func Default() *Emitter {
	return New(os.Stdout)
}

func (e *Emitter) EngineStarted() {
	e.log.Info().Msg("engine started")
}

func (e *Emitter) EngineStopped() {
	e.log.Info().Msg("engine stopped")
}

// DailyReset logs a daily statistics reset. snap carries the new reset
// time and the daily trade count as it stood just before the reset.
func (e *Emitter) DailyReset(snap stats.Snapshot) {
	e.log.Info().
		Time("resetAt", snap.LastDailyResetTS).
		Int64("priorDailyTrades", snap.DailyTradeCount).
		Msg("daily statistics reset")
}

// SweepTrades logs a matching sweep that produced at least one trade.
func (e *Emitter) SweepTrades(tradeCount int) {
	if tradeCount <= 0 {
		return
	}
	e.log.Info().
		Int("trades", tradeCount).
		Msg("matching sweep produced trades")
}

// GTDCheck logs an hourly GTD expiry sweep.
func (e *Emitter) GTDCheck(expired int) {
	e.log.Info().
		Int("expired", expired).
		Msg("GTD expiry sweep completed")
}

// StatusUpdate logs the periodic (default 30s) status snapshot.
func (e *Emitter) StatusUpdate(running bool, snap stats.Snapshot) {
	e.log.Info().
		Bool("running", running).
		Int64("dailyTrades", snap.DailyTradeCount).
		Float64("dailyNotional", snap.DailyNotional).
		Int64("totalTrades", snap.TotalTradeCount).
		Int64("matchingAttempts", snap.MatchingAttempts).
		Int64("successfulMatches", snap.SuccessfulMatches).
		Msg("status")
}

// ValidationRejected logs an InvalidPrice/InvalidQuantity rejection: the
// submission boundary reports these as a boolean false, with the
// descriptive reason written here instead.
func (e *Emitter) ValidationRejected(orderID int64, reason error) {
	e.log.Warn().
		Int64("orderID", orderID).
		Err(reason).
		Msg("order rejected")
}

// SweepError logs an exceptional condition caught inside the worker loop;
// the loop swallows it and continues.
func (e *Emitter) SweepError(err error) {
	e.log.Error().Err(err).Msg("internal sweep error")
}
