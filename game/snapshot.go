package game

import (
	"github.com/pthm-cable/ecosystem/components"
	"github.com/pthm-cable/ecosystem/systems"
)

// SnapshotPositions returns a point-in-time copy of every live animal's
// position. Call it between ticks.
func (g *Game) SnapshotPositions() map[components.AnimalID]components.Position {
	return g.registry.Positions()
}

// SnapshotGrass returns a read-only copy of the grass field.
func (g *Game) SnapshotGrass() systems.GrassView {
	return g.grass.Snapshot()
}
