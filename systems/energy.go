package systems

import (
	"math/rand"

	"github.com/pthm-cable/ecosystem/components"
	"github.com/pthm-cable/ecosystem/config"
)

// Metabolize applies the per-tick aging and starvation rules:
// every age_interval ticks the animal ages one year, and an animal whose
// hunger is at or above the starvation level loses health.
func Metabolize(a *components.Animal, tick int, cfg *config.LifecycleConfig) {
	if tick%cfg.AgeInterval == 0 {
		a.Birthday()
	}
	if a.Hunger() >= cfg.StarvationHunger {
		a.AddHealth(-cfg.StarvationDamage)
	}
}

// DeathCheck reports why the animal must be removed, or CauseNone.
// Depleted health is reported as starvation; callers that know the animal
// was hunted relabel it.
func DeathCheck(a *components.Animal, cfg *config.LifecycleConfig) components.DeathCause {
	if a.Dead() {
		return components.CauseStarvation
	}
	if a.Age() > cfg.MaxAge {
		return components.CauseOldAge
	}
	return components.CauseNone
}

// Roam moves the animal one random step, then charges the roaming cost.
func Roam(reg *Registry, id components.AnimalID, a *components.Animal, cfg *config.ActionsConfig, rng *rand.Rand) {
	Wander(reg, id, rng)
	a.AddEnergy(-cfg.RoamEnergyCost)
	a.AddHunger(cfg.RoamHungerGain)
}

// Search moves a hungry animal that found no food and charges the search cost.
func Search(reg *Registry, id components.AnimalID, a *components.Animal, cfg *config.ActionsConfig, rng *rand.Rand) {
	Wander(reg, id, rng)
	a.AddEnergy(-cfg.SearchEnergyCost)
}
