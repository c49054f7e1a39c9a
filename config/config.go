// Package config provides configuration loading and access for the simulation.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Diet names accepted in archetype entries.
const (
	DietHerbivore = "herbivore"
	DietCarnivore = "carnivore"
	DietOmnivore  = "omnivore"
)

// Quadrant names accepted in archetype entries.
const (
	QuadrantTopLeft     = "top_left"
	QuadrantTopRight    = "top_right"
	QuadrantBottomLeft  = "bottom_left"
	QuadrantBottomRight = "bottom_right"
)

// Config holds all simulation configuration parameters.
type Config struct {
	World        WorldConfig        `yaml:"world"`
	Grass        GrassConfig        `yaml:"grass"`
	Lifecycle    LifecycleConfig    `yaml:"lifecycle"`
	Behavior     BehaviorConfig     `yaml:"behavior"`
	Actions      ActionsConfig      `yaml:"actions"`
	Reproduction ReproductionConfig `yaml:"reproduction"`
	Archetypes   []ArchetypeConfig  `yaml:"archetypes"`
	Telemetry    TelemetryConfig    `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// WorldConfig holds the grid dimensions in cells.
type WorldConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// GrassConfig holds grass field parameters.
type GrassConfig struct {
	InitialDensity float64 `yaml:"initial_density"` // Per-cell probability of grass at creation
	RegrowChance   float64 `yaml:"regrow_chance"`   // Probability per tick that one random cell regrows
}

// LifecycleConfig holds aging and starvation parameters.
type LifecycleConfig struct {
	AgeInterval      int     `yaml:"age_interval"`
	MaxAge           int     `yaml:"max_age"`
	StarvationHunger float64 `yaml:"starvation_hunger"`
	StarvationDamage float64 `yaml:"starvation_damage"`
}

// BehaviorConfig holds the state machine thresholds.
type BehaviorConfig struct {
	RestBelowEnergy float64 `yaml:"rest_below_energy"`
	EatAboveHunger  float64 `yaml:"eat_above_hunger"`
	WakeAtEnergy    float64 `yaml:"wake_at_energy"`
	SatedAtHunger   float64 `yaml:"sated_at_hunger"`
}

// ActionsConfig holds per-state action amounts.
type ActionsConfig struct {
	RoamEnergyCost    float64 `yaml:"roam_energy_cost"`
	RoamHungerGain    float64 `yaml:"roam_hunger_gain"`
	RestEnergyGain    float64 `yaml:"rest_energy_gain"`
	GrazeHungerRelief float64 `yaml:"graze_hunger_relief"`
	SearchEnergyCost  float64 `yaml:"search_energy_cost"`
	HuntEnergyGain    float64 `yaml:"hunt_energy_gain"`
}

// ReproductionConfig holds reproduction gates and costs.
// All gates are strict comparisons.
type ReproductionConfig struct {
	MinHealth  float64 `yaml:"min_health"`
	MinEnergy  float64 `yaml:"min_energy"`
	MaxHunger  float64 `yaml:"max_hunger"`
	MinAge     int     `yaml:"min_age"`
	Chance     float64 `yaml:"chance"`
	EnergyCost float64 `yaml:"energy_cost"`
	HungerCost float64 `yaml:"hunger_cost"`
}

// StatsConfig is a health/energy/hunger triple.
type StatsConfig struct {
	Health float64 `yaml:"health"`
	Energy float64 `yaml:"energy"`
	Hunger float64 `yaml:"hunger"`
}

// ArchetypeConfig defines the founder template for one diet.
type ArchetypeConfig struct {
	Name      string      `yaml:"name"`
	Diet      string      `yaml:"diet"`
	Initial   int         `yaml:"initial"`  // Number spawned at construction
	Quadrant  string      `yaml:"quadrant"` // Corner box the initial population spawns in
	Spawn     StatsConfig `yaml:"spawn"`
	Offspring StatsConfig `yaml:"offspring"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	WindowTicks int `yaml:"window_ticks"`
	PerfWindow  int `yaml:"perf_window"`
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	QuadrantW      int            // max(1, width/4)
	QuadrantH      int            // max(1, height/4)
	ArchetypeIndex map[string]int // diet -> index into Archetypes
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
// Every call returns a fresh Config, so callers may modify the result freely.
func Load(path string) (*Config, error) {
	// Start with embedded defaults
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	// Load user config if provided
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		defaults := slices.Clone(cfg.Archetypes)

		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}

		// yaml replaces lists wholesale; archetypes merge by diet instead
		var overlay struct {
			Archetypes []yaml.Node `yaml:"archetypes"`
		}
		if err := yaml.Unmarshal(data, &overlay); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
		if overlay.Archetypes != nil {
			merged, err := mergeArchetypes(defaults, overlay.Archetypes)
			if err != nil {
				return nil, fmt.Errorf("parsing config file: %w", err)
			}
			cfg.Archetypes = merged
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.ComputeDerived()

	return cfg, nil
}

// mergeArchetypes overlays each archetype node onto the base entry with the
// same diet, so a node only needs the fields it changes. Nodes for a diet
// not in base are appended as given.
func mergeArchetypes(base []ArchetypeConfig, nodes []yaml.Node) ([]ArchetypeConfig, error) {
	out := slices.Clone(base)
	for i := range nodes {
		var key struct {
			Diet string `yaml:"diet"`
		}
		if err := nodes[i].Decode(&key); err != nil {
			return nil, fmt.Errorf("archetypes[%d]: %w", i, err)
		}

		idx := slices.IndexFunc(out, func(a ArchetypeConfig) bool { return a.Diet == key.Diet })
		if idx < 0 {
			out = append(out, ArchetypeConfig{})
			idx = len(out) - 1
		}
		if err := nodes[i].Decode(&out[idx]); err != nil {
			return nil, fmt.Errorf("archetypes[%d]: %w", i, err)
		}
	}
	return out, nil
}

// Validate checks the configuration for values the simulation cannot run with.
func (c *Config) Validate() error {
	var errs []error

	if c.World.Width <= 0 || c.World.Height <= 0 {
		errs = append(errs, fmt.Errorf("world dimensions must be positive, got %dx%d", c.World.Width, c.World.Height))
	}
	if !isProbability(c.Grass.InitialDensity) {
		errs = append(errs, fmt.Errorf("grass.initial_density %v not in [0,1]", c.Grass.InitialDensity))
	}
	if !isProbability(c.Grass.RegrowChance) {
		errs = append(errs, fmt.Errorf("grass.regrow_chance %v not in [0,1]", c.Grass.RegrowChance))
	}
	if !isProbability(c.Reproduction.Chance) {
		errs = append(errs, fmt.Errorf("reproduction.chance %v not in [0,1]", c.Reproduction.Chance))
	}
	if c.Lifecycle.AgeInterval <= 0 {
		errs = append(errs, fmt.Errorf("lifecycle.age_interval must be positive, got %d", c.Lifecycle.AgeInterval))
	}

	seen := make(map[string]bool, len(c.Archetypes))
	for i, arch := range c.Archetypes {
		switch arch.Diet {
		case DietHerbivore, DietCarnivore, DietOmnivore:
		default:
			errs = append(errs, fmt.Errorf("archetypes[%d]: unknown diet %q", i, arch.Diet))
		}
		if seen[arch.Diet] {
			errs = append(errs, fmt.Errorf("archetypes[%d]: duplicate diet %q", i, arch.Diet))
		}
		seen[arch.Diet] = true

		switch arch.Quadrant {
		case QuadrantTopLeft, QuadrantTopRight, QuadrantBottomLeft, QuadrantBottomRight:
		default:
			errs = append(errs, fmt.Errorf("archetypes[%d]: unknown quadrant %q", i, arch.Quadrant))
		}
		if arch.Initial < 0 {
			errs = append(errs, fmt.Errorf("archetypes[%d]: negative initial count %d", i, arch.Initial))
		}
		if arch.Spawn.Health <= 0 {
			errs = append(errs, fmt.Errorf("archetypes[%d]: spawn health must be positive, got %v", i, arch.Spawn.Health))
		}
		if arch.Offspring.Health <= 0 {
			errs = append(errs, fmt.Errorf("archetypes[%d]: offspring health must be positive, got %v", i, arch.Offspring.Health))
		}
	}
	for _, diet := range []string{DietHerbivore, DietCarnivore, DietOmnivore} {
		if !seen[diet] {
			errs = append(errs, fmt.Errorf("archetypes: missing diet %q", diet))
		}
	}

	return errors.Join(errs...)
}

func isProbability(p float64) bool {
	return p >= 0 && p <= 1
}

// ComputeDerived calculates values derived from loaded config.
// Call again after changing World or Archetypes on a loaded Config.
func (c *Config) ComputeDerived() {
	c.Derived.QuadrantW = max(1, c.World.Width/4)
	c.Derived.QuadrantH = max(1, c.World.Height/4)

	c.Derived.ArchetypeIndex = make(map[string]int, len(c.Archetypes))
	for i, arch := range c.Archetypes {
		c.Derived.ArchetypeIndex[arch.Diet] = i
	}
}

// Archetype returns the archetype configured for a diet.
func (c *Config) Archetype(diet string) (*ArchetypeConfig, bool) {
	idx, ok := c.Derived.ArchetypeIndex[diet]
	if !ok {
		return nil, false
	}
	return &c.Archetypes[idx], true
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
