package systems

import (
	"math/rand"

	"github.com/pthm-cable/ecosystem/components"
	"github.com/pthm-cable/ecosystem/config"
)

// CanReproduce reports whether the parent passes every reproduction gate.
// All comparisons are strict.
func CanReproduce(a *components.Animal, cfg *config.ReproductionConfig) bool {
	return a.Health() > cfg.MinHealth &&
		a.Energy() > cfg.MinEnergy &&
		a.Hunger() < cfg.MaxHunger &&
		a.Age() > cfg.MinAge
}

// TryReproduce runs the reproduction check for one tick. A parent that
// passes the gates draws one Bernoulli(chance) trial; on success it pays the
// energy and hunger cost and a child of the same diet is returned with the
// fixed offspring stats. The child is not registered.
//
// rng is only consulted when the gates pass.
func TryReproduce(a *components.Animal, offspring components.Stats, cfg *config.ReproductionConfig, rng *rand.Rand) (components.Animal, bool) {
	if !CanReproduce(a, cfg) {
		return components.Animal{}, false
	}
	if rng.Float64() >= cfg.Chance {
		return components.Animal{}, false
	}

	a.AddEnergy(-cfg.EnergyCost)
	a.AddHunger(cfg.HungerCost)
	return components.NewAnimal(a.Diet(), offspring), true
}
