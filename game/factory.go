package game

import (
	"fmt"

	"github.com/pthm-cable/ecosystem/components"
	"github.com/pthm-cable/ecosystem/config"
)

// stats converts a config stat triple.
func stats(s config.StatsConfig) components.Stats {
	return components.Stats{Health: s.Health, Energy: s.Energy, Hunger: s.Hunger}
}

// dietKeys maps each DietType to its config name.
var dietKeys = [...]string{
	components.Herbivore: config.DietHerbivore,
	components.Carnivore: config.DietCarnivore,
	components.Omnivore:  config.DietOmnivore,
}

// buildOffspringTable fills the per-diet offspring stats from the archetypes.
// Every diet must have one.
func (g *Game) buildOffspringTable() error {
	for d := 0; d < components.DietCount(); d++ {
		diet := components.DietType(d)
		arch, ok := g.cfg.Archetype(dietKeys[diet])
		if !ok {
			return fmt.Errorf("no archetype for diet %s", diet)
		}
		g.offspring[diet] = stats(arch.Offspring)
	}
	return nil
}

// newFounder creates an initial-population animal from its archetype.
func newFounder(arch *config.ArchetypeConfig) (components.Animal, error) {
	diet, err := components.ParseDiet(arch.Diet)
	if err != nil {
		return components.Animal{}, fmt.Errorf("archetype %q: %w", arch.Name, err)
	}
	return components.NewAnimal(diet, stats(arch.Spawn)), nil
}

// quadrantBox returns the corner box an archetype's founders spawn in.
// Each box is max(1, w/4) x max(1, h/4) and anchored to its grid corner.
func (g *Game) quadrantBox(quadrant string) components.Box {
	w, h := g.cfg.World.Width, g.cfg.World.Height
	qw, qh := g.cfg.Derived.QuadrantW, g.cfg.Derived.QuadrantH

	switch quadrant {
	case config.QuadrantTopLeft:
		return components.Box{X: 0, Y: 0, W: qw, H: qh}
	case config.QuadrantTopRight:
		return components.Box{X: w - qw, Y: 0, W: qw, H: qh}
	case config.QuadrantBottomLeft:
		return components.Box{X: 0, Y: h - qh, W: qw, H: qh}
	case config.QuadrantBottomRight:
		return components.Box{X: w - qw, Y: h - qh, W: qw, H: qh}
	}
	return components.FullBox(w, h)
}
