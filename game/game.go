// Package game runs the ecosystem simulation: construction, the per-tick
// protocol, read views for external collaborators and telemetry.
package game

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/pthm-cable/ecosystem/components"
	"github.com/pthm-cable/ecosystem/config"
	"github.com/pthm-cable/ecosystem/systems"
	"github.com/pthm-cable/ecosystem/telemetry"
)

// ErrInvalidDimensions is returned by NewGame for a non-positive grid size.
var ErrInvalidDimensions = errors.New("grid dimensions must be positive")

// Game holds the complete simulation state.
type Game struct {
	cfg     *config.Config
	rng     *rand.Rand
	rngSeed int64

	grass    *systems.GrassField
	registry *systems.Registry

	// Offspring stats by diet
	offspring [3]components.Stats

	// Prey whose health was zeroed by a hunt, awaiting their own death check
	hunted map[components.AnimalID]struct{}

	// Children born this tick, inserted after the animal pass
	pending []birth

	tick int

	// Telemetry
	collector       *telemetry.Collector
	lifetimeTracker *telemetry.LifetimeTracker
	perfCollector   *telemetry.PerfCollector
	outputManager   *telemetry.OutputManager
	logStats        bool
	statsCallback   func(telemetry.WindowStats)
}

// birth is a queued offspring and the parent that produced it.
type birth struct {
	child  components.Animal
	parent components.AnimalID
}

// NewGame creates a game from cfg, spawning the configured initial population.
// A nil cfg uses the embedded defaults. cfg is not modified.
func NewGame(cfg *config.Config, opts Options) (*Game, error) {
	if cfg == nil {
		var err error
		if cfg, err = config.Load(""); err != nil {
			return nil, fmt.Errorf("loading default config: %w", err)
		}
	}
	if cfg.World.Width <= 0 || cfg.World.Height <= 0 {
		return nil, fmt.Errorf("new game %dx%d: %w", cfg.World.Width, cfg.World.Height, ErrInvalidDimensions)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	// Work on a copy so derived values match the dimensions we run with
	own := *cfg
	own.ComputeDerived()

	rng, seed := opts.Rand, opts.Seed
	if rng == nil {
		rng = rand.New(rand.NewSource(seed))
	} else {
		seed = 0 // unknown for an injected source
	}

	g := &Game{
		cfg:             &own,
		rng:             rng,
		rngSeed:         seed,
		hunted:          make(map[components.AnimalID]struct{}),
		collector:       telemetry.NewCollector(own.Telemetry.WindowTicks),
		lifetimeTracker: telemetry.NewLifetimeTracker(),
		perfCollector:   telemetry.NewPerfCollector(own.Telemetry.PerfWindow),
		logStats:        opts.LogStats,
		statsCallback:   opts.StatsCallback,
	}

	if err := g.buildOffspringTable(); err != nil {
		return nil, err
	}

	w, h := own.World.Width, own.World.Height
	g.grass = systems.NewGrassField(w, h, own.Grass.InitialDensity, g.rng)
	g.registry = systems.NewRegistry(w, h)

	if err := g.spawnInitialPopulation(); err != nil {
		return nil, err
	}

	om, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, fmt.Errorf("creating output manager: %w", err)
	}
	g.outputManager = om
	if err := g.outputManager.WriteConfig(g.cfg); err != nil {
		g.outputManager.Close()
		return nil, fmt.Errorf("writing config snapshot: %w", err)
	}

	slog.Info("simulation created",
		"seed", seed,
		"window_ticks", g.collector.WindowTicks(),
		"width", w,
		"height", h,
		"animals", g.registry.Len(),
		"grass", g.grass.Coverage(),
	)

	return g, nil
}

// Unload flushes and closes telemetry output.
func (g *Game) Unload() {
	if err := g.outputManager.Close(); err != nil {
		slog.Error("failed to close output", "error", err)
	}
}

// Tick returns the number of ticks advanced so far.
func (g *Game) Tick() int {
	return g.tick
}

// Seed returns the seed the game was created with, or 0 when the random
// source was injected through Options.Rand.
func (g *Game) Seed() int64 {
	return g.rngSeed
}

// Config returns the configuration the game runs with.
func (g *Game) Config() *config.Config {
	return g.cfg
}

// Size returns the grid dimensions.
func (g *Game) Size() (width, height int) {
	return g.registry.Size()
}

// Animal returns a copy of a live animal.
func (g *Game) Animal(id components.AnimalID) (components.Animal, bool) {
	a, ok := g.registry.Get(id)
	if !ok {
		return components.Animal{}, false
	}
	return *a, true
}

// Animals returns copies of all live animals in iteration order.
func (g *Game) Animals() []components.Animal {
	return g.registry.Animals()
}

// PositionOf returns a live animal's position, or false if it has been removed.
func (g *Game) PositionOf(id components.AnimalID) (components.Position, bool) {
	return g.registry.PositionOf(id)
}

// Population returns the live animal count indexed by DietType.
func (g *Game) Population() [3]int {
	var counts [3]int
	for _, a := range g.registry.Animals() {
		counts[a.Diet()]++
	}
	return counts
}
