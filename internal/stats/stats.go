// Package stats implements the lock-free statistics accumulator: trade
// and volume counters updated by concurrent writers without a shared lock.
package stats

import (
	"math"
	"sync/atomic"
	"time"
)

// Stats holds the venue's running trade statistics. Every field is an
// independent atomic: readers may observe transient skew across counters,
// but never a lost update on any single counter.
type Stats struct {
	dailyTradeCount   atomic.Int64
	dailyNotionalBits atomic.Uint64
	totalTradeCount   atomic.Int64
	totalNotionalBits atomic.Uint64
	matchingAttempts  atomic.Int64
	successfulMatches atomic.Int64
	lastDailyResetTS  atomic.Int64 // UnixNano
}

// New returns a freshly reset accumulator, with lastDailyResetTS set to now.
func New(now time.Time) *Stats {
	s := &Stats{}
	s.lastDailyResetTS.Store(now.UnixNano())
	return s
}

// Snapshot is a read-only, point-in-time copy of every counter.
type Snapshot struct {
	DailyTradeCount   int64
	DailyNotional     float64
	TotalTradeCount   int64
	TotalNotional     float64
	MatchingAttempts  int64
	SuccessfulMatches int64
	LastDailyResetTS  time.Time
}

// Snapshot reads every counter independently; it is not a serialized
// transaction across counters.
func (s *Stats) Snapshot() Snapshot {
	return Snapshot{
		DailyTradeCount:   s.dailyTradeCount.Load(),
		DailyNotional:     loadFloat(&s.dailyNotionalBits),
		TotalTradeCount:   s.totalTradeCount.Load(),
		TotalNotional:     loadFloat(&s.totalNotionalBits),
		MatchingAttempts:  s.matchingAttempts.Load(),
		SuccessfulMatches: s.successfulMatches.Load(),
		LastDailyResetTS:  time.Unix(0, s.lastDailyResetTS.Load()),
	}
}

// LastDailyReset returns the timestamp of the last daily reset.
func (s *Stats) LastDailyReset() time.Time {
	return time.Unix(0, s.lastDailyResetTS.Load())
}

// RecordTrade applies the per-trade counter updates a produced trade
// triggers: daily/total trade counts, daily/total notional, and the
// successful-match count. notional is quantity * price.
func (s *Stats) RecordTrade(notional float64) {
	s.dailyTradeCount.Add(1)
	addFloat(&s.dailyNotionalBits, notional)
	s.totalTradeCount.Add(1)
	addFloat(&s.totalNotionalBits, notional)
	s.successfulMatches.Add(1)
}

// RecordSweepAttempt increments matching_attempts once per background
// sweep, independent of how many trades (if any) the sweep produced.
func (s *Stats) RecordSweepAttempt() {
	s.matchingAttempts.Add(1)
}

// MaybeResetDaily resets the daily fields and the per-window attempt and
// success counters when interval has elapsed since the last reset,
// reporting whether it did so. total_trade_count and total_notional are
// never reset.
func (s *Stats) MaybeResetDaily(now time.Time, interval time.Duration) bool {
	if now.Sub(s.LastDailyReset()) < interval {
		return false
	}
	s.lastDailyResetTS.Store(now.UnixNano())
	s.dailyTradeCount.Store(0)
	s.dailyNotionalBits.Store(0)
	s.matchingAttempts.Store(0)
	s.successfulMatches.Store(0)
	return true
}

func addFloat(bits *atomic.Uint64, delta float64) {
	for {
		old := bits.Load()
		next := math.Float64bits(math.Float64frombits(old) + delta)
		if bits.CompareAndSwap(old, next) {
			return
		}
	}
}

func loadFloat(bits *atomic.Uint64) float64 {
	return math.Float64frombits(bits.Load())
}
