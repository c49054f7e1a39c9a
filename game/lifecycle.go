package game

import (
	"log/slog"

	"github.com/pthm-cable/ecosystem/components"
	"github.com/pthm-cable/ecosystem/telemetry"
)

// spawnInitialPopulation creates the founders, archetype by archetype,
// each inside its configured corner box.
func (g *Game) spawnInitialPopulation() error {
	for i := range g.cfg.Archetypes {
		arch := &g.cfg.Archetypes[i]
		founder, err := newFounder(arch)
		if err != nil {
			return err
		}
		box := g.quadrantBox(arch.Quadrant)

		for n := 0; n < arch.Initial; n++ {
			id := g.registry.Spawn(founder, box, g.rng)
			g.lifetimeTracker.Register(id, g.tick, founder.Diet(), 0)
		}
	}
	return nil
}

// Place inserts a hand-built animal at an exact position (clamped to the
// grid) and returns its ID. It takes part in the next tick like any founder.
func (g *Game) Place(a components.Animal, pos components.Position) components.AnimalID {
	id := g.registry.Insert(a, pos)
	g.lifetimeTracker.Register(id, g.tick, a.Diet(), 0)
	return id
}

// removeDead drops an animal whose death check failed and records why.
// A starved-looking animal that was hunted is counted as predation.
func (g *Game) removeDead(id components.AnimalID, diet components.DietType, cause components.DeathCause) {
	if _, ok := g.hunted[id]; ok {
		if cause == components.CauseStarvation {
			cause = components.CausePredation
		}
		delete(g.hunted, id)
	}

	g.registry.Remove(id)
	g.record(telemetry.NewDeathEvent(g.tick, id, diet, cause))
	if ls := g.lifetimeTracker.Remove(id); ls != nil {
		g.collector.RecordLifespan(g.tick - ls.BirthTick)
	}

	slog.Debug("death", "tick", g.tick, "id", id, "diet", diet.String(), "cause", cause.String())
}

// insertOffspring registers the children queued during the animal pass at
// uniformly random cells. Runs after the pass so newborns never act in the
// tick they are born.
func (g *Game) insertOffspring() {
	w, h := g.registry.Size()
	box := components.FullBox(w, h)

	for i := range g.pending {
		b := &g.pending[i]
		diet := b.child.Diet()
		id := g.registry.Spawn(b.child, box, g.rng)
		g.lifetimeTracker.Register(id, g.tick, diet, b.parent)
		g.record(telemetry.NewBirthEvent(g.tick, id, b.parent, diet))

		slog.Debug("birth", "tick", g.tick, "id", id, "parent", b.parent, "diet", diet.String())
	}
	clear(g.pending)
	g.pending = g.pending[:0]
}
