package telemetry

import "github.com/pthm-cable/ecosystem/components"

// PopulationSample is the world state read at flush time.
type PopulationSample struct {
	Counts     [3]int // indexed by DietType
	Health     []float64
	Energy     []float64
	Hunger     []float64
	Age        []float64
	GrassCells int
	GridCells  int
}

// Collector accumulates events within tick windows and produces WindowStats.
type Collector struct {
	windowTicks     int
	windowStartTick int

	// Event counters for current window
	births    [3]int // by diet
	deaths    [4]int // by DeathCause
	kills     int
	grazes    int
	lifespans []float64
}

// NewCollector creates a new stats collector that flushes every windowTicks ticks.
func NewCollector(windowTicks int) *Collector {
	if windowTicks < 1 {
		windowTicks = 1
	}
	return &Collector{windowTicks: windowTicks}
}

// Record counts an event in the current window.
func (c *Collector) Record(ev Event) {
	switch ev.Type {
	case EventBirth:
		if int(ev.Diet) < len(c.births) {
			c.births[ev.Diet]++
		}
	case EventDeath:
		if int(ev.Cause) < len(c.deaths) {
			c.deaths[ev.Cause]++
		}
	case EventKill:
		c.kills++
	case EventGraze:
		c.grazes++
	}
}

// RecordLifespan records how many ticks a dead animal lived.
func (c *Collector) RecordLifespan(ticks int) {
	c.lifespans = append(c.lifespans, float64(ticks))
}

// ShouldFlush returns true if enough ticks have passed to flush the window.
func (c *Collector) ShouldFlush(currentTick int) bool {
	return currentTick-c.windowStartTick >= c.windowTicks
}

// Flush produces a WindowStats and resets counters for the next window.
func (c *Collector) Flush(currentTick int, sample PopulationSample) WindowStats {
	health := Summarize(sample.Health)
	energy := Summarize(sample.Energy)
	hunger := Summarize(sample.Hunger)
	age := Summarize(sample.Age)

	var coverage float64
	if sample.GridCells > 0 {
		coverage = float64(sample.GrassCells) / float64(sample.GridCells)
	}

	stats := WindowStats{
		WindowStartTick: c.windowStartTick,
		WindowEndTick:   currentTick,

		Herbivores: sample.Counts[components.Herbivore],
		Carnivores: sample.Counts[components.Carnivore],
		Omnivores:  sample.Counts[components.Omnivore],
		Total:      sample.Counts[0] + sample.Counts[1] + sample.Counts[2],

		HerbivoreBirths:  c.births[components.Herbivore],
		CarnivoreBirths:  c.births[components.Carnivore],
		OmnivoreBirths:   c.births[components.Omnivore],
		DeathsStarvation: c.deaths[components.CauseStarvation],
		DeathsPredation:  c.deaths[components.CausePredation],
		DeathsOldAge:     c.deaths[components.CauseOldAge],
		Kills:            c.kills,
		Grazes:           c.grazes,

		MeanLifespan:  Summarize(c.lifespans).Mean,
		GrassCoverage: coverage,

		HealthMean: health.Mean,
		HealthStd:  health.Std,
		EnergyMean: energy.Mean,
		EnergyP10:  energy.P10,
		EnergyP50:  energy.P50,
		EnergyP90:  energy.P90,
		HungerMean: hunger.Mean,
		HungerP90:  hunger.P90,
		AgeMean:    age.Mean,
		AgeP90:     age.P90,
	}

	// Reset for next window
	c.windowStartTick = currentTick
	c.births = [3]int{}
	c.deaths = [4]int{}
	c.kills = 0
	c.grazes = 0
	c.lifespans = c.lifespans[:0]

	return stats
}

// WindowTicks returns the number of ticks per window.
func (c *Collector) WindowTicks() int {
	return c.windowTicks
}
