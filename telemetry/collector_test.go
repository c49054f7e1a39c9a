package telemetry

import (
	"testing"

	"github.com/pthm-cable/ecosystem/components"
)

func TestCollectorWindow(t *testing.T) {
	c := NewCollector(10)

	if c.ShouldFlush(9) {
		t.Error("should not flush before the window ends")
	}
	if !c.ShouldFlush(10) {
		t.Error("should flush at the window end")
	}

	c.Record(NewBirthEvent(3, 20, 1, components.Herbivore))
	c.Record(NewBirthEvent(4, 21, 2, components.Omnivore))
	c.Record(NewBirthEvent(4, 22, 1, components.Herbivore))
	c.Record(NewKillEvent(5, 2, 1, components.Carnivore))
	c.Record(NewDeathEvent(6, 1, components.Herbivore, components.CausePredation))
	c.Record(NewDeathEvent(7, 5, components.Carnivore, components.CauseStarvation))
	c.Record(NewDeathEvent(7, 6, components.Omnivore, components.CauseOldAge))
	c.Record(NewGrazeEvent(8, 3, components.Herbivore))
	c.RecordLifespan(100)
	c.RecordLifespan(300)

	sample := PopulationSample{
		Counts:     [3]int{4, 1, 2},
		Health:     []float64{100, 100},
		Energy:     []float64{10, 90},
		Hunger:     []float64{0, 50},
		Age:        []float64{1, 3},
		GrassCells: 30,
		GridCells:  300,
	}
	stats := c.Flush(10, sample)

	if stats.WindowStartTick != 0 || stats.WindowEndTick != 10 {
		t.Errorf("window = [%d,%d], want [0,10]", stats.WindowStartTick, stats.WindowEndTick)
	}
	if stats.Herbivores != 4 || stats.Carnivores != 1 || stats.Omnivores != 2 || stats.Total != 7 {
		t.Errorf("counts = %d/%d/%d total %d", stats.Herbivores, stats.Carnivores, stats.Omnivores, stats.Total)
	}
	if stats.HerbivoreBirths != 2 || stats.OmnivoreBirths != 1 || stats.CarnivoreBirths != 0 {
		t.Errorf("births = %d/%d/%d", stats.HerbivoreBirths, stats.CarnivoreBirths, stats.OmnivoreBirths)
	}
	if stats.DeathsPredation != 1 || stats.DeathsStarvation != 1 || stats.DeathsOldAge != 1 {
		t.Errorf("deaths = pred %d starve %d age %d", stats.DeathsPredation, stats.DeathsStarvation, stats.DeathsOldAge)
	}
	if stats.Kills != 1 || stats.Grazes != 1 {
		t.Errorf("kills/grazes = %d/%d, want 1/1", stats.Kills, stats.Grazes)
	}
	if stats.MeanLifespan != 200 {
		t.Errorf("mean lifespan = %v, want 200", stats.MeanLifespan)
	}
	if stats.GrassCoverage != 0.1 {
		t.Errorf("grass coverage = %v, want 0.1", stats.GrassCoverage)
	}
	if stats.EnergyMean != 50 || stats.AgeMean != 2 {
		t.Errorf("energy/age mean = %v/%v, want 50/2", stats.EnergyMean, stats.AgeMean)
	}

	// Counters reset for the next window
	next := c.Flush(20, PopulationSample{})
	if next.WindowStartTick != 10 {
		t.Errorf("next window start = %d, want 10", next.WindowStartTick)
	}
	if next.Kills != 0 || next.HerbivoreBirths != 0 || next.DeathsOldAge != 0 || next.MeanLifespan != 0 {
		t.Errorf("counters not reset: %+v", next)
	}
	if next.GrassCoverage != 0 {
		t.Errorf("empty grid coverage = %v, want 0", next.GrassCoverage)
	}
}

func TestLifetimeTracker(t *testing.T) {
	lt := NewLifetimeTracker()
	lt.Register(1, 0, components.Carnivore, 0)
	lt.Register(2, 5, components.Herbivore, 0)

	lt.Observe(NewKillEvent(6, 1, 2, components.Carnivore))
	lt.Observe(NewGrazeEvent(6, 2, components.Herbivore))
	lt.Observe(NewBirthEvent(7, 3, 1, components.Carnivore))
	lt.Observe(NewKillEvent(8, 99, 2, components.Carnivore)) // unknown hunter ignored

	s := lt.Get(1)
	if s == nil || s.Kills != 1 || s.Children != 1 {
		t.Fatalf("hunter stats = %+v, want 1 kill 1 child", s)
	}
	if g := lt.Get(2); g.Grazes != 1 || g.BirthTick != 5 {
		t.Errorf("grazer stats = %+v", g)
	}

	removed := lt.Remove(2)
	if removed == nil || removed.Diet != components.Herbivore {
		t.Errorf("Remove returned %+v", removed)
	}
	if lt.Count() != 1 || lt.Get(2) != nil {
		t.Errorf("count = %d after removal, want 1", lt.Count())
	}
}

func TestCollectorWindowTicksClamp(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{50, 50},
		{1, 1},
		{0, 1},
		{-5, 1},
	}
	for _, tt := range tests {
		if got := NewCollector(tt.in).WindowTicks(); got != tt.want {
			t.Errorf("NewCollector(%d).WindowTicks() = %d, want %d", tt.in, got, tt.want)
		}
	}
}
