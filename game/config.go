package game

import (
	"math/rand"

	"github.com/pthm-cable/ecosystem/telemetry"
)

// Options configures game initialization.
type Options struct {
	// Seed for the random source. Ignored when Rand is set, and Game.Seed
	// then reports 0.
	Seed int64
	// Rand overrides the random source, e.g. to share one across scenarios.
	Rand *rand.Rand

	// LogStats logs window and perf stats via slog at each telemetry flush.
	LogStats bool
	// OutputDir enables CSV output (telemetry.csv, perf.csv, config.yaml). Empty disables it.
	OutputDir string
	// StatsCallback, when set, receives every flushed stats window.
	StatsCallback func(telemetry.WindowStats)
}
