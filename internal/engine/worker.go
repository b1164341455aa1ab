package engine

import (
	"fmt"
	"time"
)

// runWorker is the background loop a tomb.Tomb supervises between Start
// and Stop. A Stop during a sweep takes effect at the next tick, never
// mid-sweep.
func (e *Engine) runWorker() error {
	ticker := time.NewTicker(e.config.WorkerTickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-e.t.Dying():
			return nil
		case <-ticker.C:
			e.tick()
		}
	}
}

// tick runs one worker iteration: daily reset check, a matching sweep,
// the hourly GTD expiry sweep, and the periodic status snapshot. A panic
// inside is logged and swallowed so the loop continues.
func (e *Engine) tick() {
	defer func() {
		if r := recover(); r != nil {
			e.emitter.SweepError(fmt.Errorf("internal sweep error: %v", r))
		}
	}()

	now := time.Now()

	prior := e.stats.Snapshot()
	if e.stats.MaybeResetDaily(now, e.config.DailyResetInterval) {
		e.book.ExpireDay(now)
		prior.LastDailyResetTS = e.stats.LastDailyReset()
		e.emitter.DailyReset(prior)
	}

	e.stats.RecordSweepAttempt()
	trades := e.book.Match(now)
	e.recordTrades(trades)
	if len(trades) > 0 {
		e.emitter.SweepTrades(len(trades))
	}

	e.mu.Lock()
	dueExpiry := now.Sub(e.lastExpiryCheckTS) >= e.config.GTDCheckInterval
	if dueExpiry {
		e.lastExpiryCheckTS = now
	}
	dueStatus := now.Sub(e.lastStatusTS) >= e.config.StatusInterval
	if dueStatus {
		e.lastStatusTS = now
	}
	e.mu.Unlock()

	if dueExpiry {
		expired := e.book.ExpireGTD(now)
		e.emitter.GTDCheck(expired)
	}
	if dueStatus {
		e.emitter.StatusUpdate(e.Running(), e.stats.Snapshot())
	}
}
