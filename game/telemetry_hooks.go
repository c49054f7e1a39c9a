package game

import (
	"log/slog"

	"github.com/pthm-cable/ecosystem/components"
	"github.com/pthm-cable/ecosystem/telemetry"
)

// record feeds an event to the window collector and the lifetime tracker.
func (g *Game) record(ev telemetry.Event) {
	g.collector.Record(ev)
	g.lifetimeTracker.Observe(ev)
}

// flushTelemetry checks if the stats window should be flushed and emits it.
func (g *Game) flushTelemetry() {
	if !g.collector.ShouldFlush(g.tick) {
		return
	}

	stats := g.collector.Flush(g.tick, g.samplePopulation())
	perfStats := g.perfCollector.Stats()

	if g.statsCallback != nil {
		g.statsCallback(stats)
	}

	// Log stats if enabled (console output)
	if g.logStats {
		stats.LogStats()
		perfStats.LogStats()
	}

	if g.outputManager != nil {
		if err := g.outputManager.WriteTelemetry(stats); err != nil {
			slog.Error("failed to write telemetry", "error", err)
		}
		if err := g.outputManager.WritePerf(perfStats, stats.WindowEndTick); err != nil {
			slog.Error("failed to write perf", "error", err)
		}
	}
}

// samplePopulation collects per-diet counts and vital distributions.
func (g *Game) samplePopulation() telemetry.PopulationSample {
	animals := g.registry.Animals()
	w, h := g.registry.Size()

	s := telemetry.PopulationSample{
		Health:     make([]float64, 0, len(animals)),
		Energy:     make([]float64, 0, len(animals)),
		Hunger:     make([]float64, 0, len(animals)),
		Age:        make([]float64, 0, len(animals)),
		GrassCells: g.grass.Coverage(),
		GridCells:  w * h,
	}
	for i := range animals {
		a := &animals[i]
		s.Counts[a.Diet()]++
		s.Health = append(s.Health, a.Health())
		s.Energy = append(s.Energy, a.Energy())
		s.Hunger = append(s.Hunger, a.Hunger())
		s.Age = append(s.Age, float64(a.Age()))
	}
	return s
}

// LifetimeStats returns the tracked lifetime counters of a live animal, or nil.
func (g *Game) LifetimeStats(id components.AnimalID) *telemetry.LifetimeStats {
	return g.lifetimeTracker.Get(id)
}
