package engine

import "time"

// Config bundles the core's tunable options. There are no CLI flags,
// environment variables, or files backing it; callers build one directly
// or start from DefaultConfig.
type Config struct {
	// WorkerTickInterval is the worker's sleep between iterations.
	WorkerTickInterval time.Duration
	// StatusInterval is the minimum elapsed time between status snapshots.
	StatusInterval time.Duration
	// GTDCheckInterval is the minimum elapsed time between GTD expiry sweeps.
	GTDCheckInterval time.Duration
	// DailyResetInterval is the interval at which daily statistics reset.
	DailyResetInterval time.Duration
	// PriceEpsilon is the tick-grid tolerance used by price validation.
	PriceEpsilon float64
}

// DefaultConfig returns sensible defaults: 1s tick, 30s status, 1h GTD
// checks, 24h daily reset, 1e-8 price epsilon.
func DefaultConfig() Config {
	return Config{
		WorkerTickInterval: time.Second,
		StatusInterval:     30 * time.Second,
		GTDCheckInterval:   time.Hour,
		DailyResetInterval: 24 * time.Hour,
		PriceEpsilon:       1e-8,
	}
}
