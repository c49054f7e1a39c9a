package systems

import (
	"math/rand"

	"github.com/pthm-cable/ecosystem/components"
)

// RandomStep draws dx and dy uniformly from {-1, 0, 1}, redrawing while both
// are zero. Only the all-zero sample is rejected; a step that later clamps
// to no movement against a wall is kept.
func RandomStep(rng *rand.Rand) (dx, dy int) {
	for {
		dx = rng.Intn(3) - 1
		dy = rng.Intn(3) - 1
		if dx != 0 || dy != 0 {
			return dx, dy
		}
	}
}

// Wander moves the animal one random step, clamped to the grid.
// Returns false without drawing from rng if the animal is no longer registered.
func Wander(reg *Registry, id components.AnimalID, rng *rand.Rand) bool {
	pos, ok := reg.PositionOf(id)
	if !ok {
		return false
	}
	dx, dy := RandomStep(rng)
	w, h := reg.Size()
	return reg.MoveTo(id, pos.Offset(dx, dy, w, h))
}
