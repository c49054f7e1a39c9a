package systems

import (
	"math/rand"

	"github.com/pthm-cable/ecosystem/components"
	"github.com/pthm-cable/ecosystem/config"
)

// Graze eats the grass under the animal if there is any. Otherwise the
// animal searches: one random step and the search energy cost.
// Returns true if grass was eaten.
func Graze(reg *Registry, grass *GrassField, id components.AnimalID, a *components.Animal, cfg *config.ActionsConfig, rng *rand.Rand) bool {
	pos, ok := reg.PositionOf(id)
	if !ok {
		return false
	}
	if grass.Consume(pos) {
		a.AddHunger(-cfg.GrazeHungerRelief)
		return true
	}
	Search(reg, id, a, cfg, rng)
	return false
}

// FindPrey returns the first live animal in iteration order that shares the
// hunter's cell, has a prey diet, and still has health. The hunter itself is
// skipped.
func FindPrey(reg *Registry, hunter components.AnimalID) (components.AnimalID, bool) {
	at, ok := reg.PositionOf(hunter)
	if !ok {
		return 0, false
	}
	for _, id := range reg.order {
		if id == hunter {
			continue
		}
		pos, _ := reg.PositionOf(id)
		if pos != at {
			continue
		}
		prey, _ := reg.Get(id)
		if prey.Diet().IsPrey() && !prey.Dead() {
			return id, true
		}
	}
	return 0, false
}

// Hunt attacks the first prey sharing the hunter's cell. A kill only zeroes
// the prey's health; the prey stays registered until its own death check.
// The hunter's hunger drops to zero and it gains energy. With no prey in the
// cell the hunter searches instead.
func Hunt(reg *Registry, id components.AnimalID, a *components.Animal, cfg *config.ActionsConfig, rng *rand.Rand) (components.AnimalID, bool) {
	if !a.CanInitiateHunt() {
		return 0, false
	}
	preyID, found := FindPrey(reg, id)
	if !found {
		Search(reg, id, a, cfg, rng)
		return 0, false
	}

	prey, _ := reg.Get(preyID)
	prey.SetHealth(0)
	a.SetHunger(0)
	a.AddEnergy(cfg.HuntEnergyGain)
	return preyID, true
}
