package systems

import (
	"github.com/pthm-cable/ecosystem/components"
	"github.com/pthm-cable/ecosystem/config"
)

// NextState evaluates the state machine for one tick. Guards are checked in
// order and the first match wins:
//
//	Roaming: energy < rest threshold -> Resting; hunger > eat threshold -> Eating
//	Resting: energy >= wake threshold -> Roaming
//	Eating:  hunger <= sated threshold -> Roaming
func NextState(a *components.Animal, cfg *config.BehaviorConfig) components.BehaviorState {
	switch a.State() {
	case components.Roaming:
		if a.Energy() < cfg.RestBelowEnergy {
			return components.Resting
		}
		if a.Hunger() > cfg.EatAboveHunger {
			return components.Eating
		}
	case components.Resting:
		if a.Energy() >= cfg.WakeAtEnergy {
			return components.Roaming
		}
	case components.Eating:
		if a.Hunger() <= cfg.SatedAtHunger {
			return components.Roaming
		}
	}
	return a.State()
}

// UpdateState applies NextState and reports whether the state changed.
func UpdateState(a *components.Animal, cfg *config.BehaviorConfig) bool {
	next := NextState(a, cfg)
	if next == a.State() {
		return false
	}
	a.SetState(next)
	return true
}

// Rest recovers energy. Resting animals do not move.
func Rest(a *components.Animal, cfg *config.ActionsConfig) {
	a.AddEnergy(cfg.RestEnergyGain)
}
