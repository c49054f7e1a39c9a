package game

import (
	"log/slog"

	"github.com/pthm-cable/ecosystem/components"
)

// LogWorldState logs a one-line summary of the current world.
func (g *Game) LogWorldState() {
	animals := g.registry.Animals()

	var counts [3]int
	var states [3]int
	var ageSum int
	for i := range animals {
		a := &animals[i]
		counts[a.Diet()]++
		states[a.State()]++
		ageSum += a.Age()
	}

	avgAge := 0.0
	if len(animals) > 0 {
		avgAge = float64(ageSum) / float64(len(animals))
	}

	slog.Info("world",
		"tick", g.tick,
		"herbivores", counts[components.Herbivore],
		"carnivores", counts[components.Carnivore],
		"omnivores", counts[components.Omnivore],
		"roaming", states[components.Roaming],
		"resting", states[components.Resting],
		"eating", states[components.Eating],
		"avg_age", avgAge,
		"grass", g.grass.Coverage(),
	)
}
