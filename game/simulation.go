package game

import (
	"log/slog"
	"time"

	"github.com/pthm-cable/ecosystem/components"
	"github.com/pthm-cable/ecosystem/systems"
	"github.com/pthm-cable/ecosystem/telemetry"
)

// Step advances the world by exactly one tick:
//  1. the tick counter increments and one grass regrowth attempt runs
//  2. every live animal, in ascending ID order, ages and starves, is removed
//     if dead, updates its state, acts, and may queue a child
//  3. queued children are inserted
//  4. telemetry is flushed when a window closes
func (g *Game) Step() {
	perf := g.perfCollector
	perf.StartTick()

	t := time.Now()
	g.tick++
	g.grass.Regrow(g.cfg.Grass.RegrowChance, g.rng)
	perf.Since(telemetry.PhaseRegrowth, t)

	// IDs are captured once: removals during the pass never reorder it,
	// and children are not inserted until the pass ends.
	for _, id := range g.registry.IDs() {
		g.updateAnimal(id)
	}

	t = time.Now()
	g.insertOffspring()
	perf.Since(telemetry.PhaseOffspring, t)

	t = time.Now()
	g.flushTelemetry()
	perf.Since(telemetry.PhaseTelemetry, t)

	perf.EndTick()
}

// Run advances n ticks.
func (g *Game) Run(n int) {
	for i := 0; i < n; i++ {
		g.Step()
	}
}

// updateAnimal processes one animal for the current tick. Each stage is
// charged to its own perf phase so the action mix shows up in the window.
func (g *Game) updateAnimal(id components.AnimalID) {
	a, ok := g.registry.Get(id)
	if !ok {
		return
	}
	cfg := g.cfg
	perf := g.perfCollector

	t := time.Now()
	systems.Metabolize(a, g.tick, &cfg.Lifecycle)
	if cause := systems.DeathCheck(a, &cfg.Lifecycle); cause != components.CauseNone {
		g.removeDead(id, a.Diet(), cause)
		perf.Since(telemetry.PhaseUpkeep, t)
		return
	}
	systems.UpdateState(a, &cfg.Behavior)
	perf.Since(telemetry.PhaseUpkeep, t)

	t = time.Now()
	switch a.State() {
	case components.Roaming:
		systems.Roam(g.registry, id, a, &cfg.Actions, g.rng)
		perf.Since(telemetry.PhaseRoam, t)
	case components.Resting:
		systems.Rest(a, &cfg.Actions)
		perf.Since(telemetry.PhaseRest, t)
	case components.Eating:
		g.eat(id, a)
		perf.Since(telemetry.PhaseEat, t)
	}

	t = time.Now()
	if child, ok := systems.TryReproduce(a, g.offspring[a.Diet()], &cfg.Reproduction, g.rng); ok {
		g.pending = append(g.pending, birth{child: child, parent: id})
	}
	perf.Since(telemetry.PhaseReproduce, t)
}

// eat runs the Eating action. Grazers try the grass under them; hunters
// then try the first prey in their cell. Omnivores do both, hunting from
// wherever grazing left them.
func (g *Game) eat(id components.AnimalID, a *components.Animal) {
	diet := a.Diet()

	if diet.CanGraze() {
		if systems.Graze(g.registry, g.grass, id, a, &g.cfg.Actions, g.rng) {
			g.record(telemetry.NewGrazeEvent(g.tick, id, diet))
		}
	}

	if diet.CanHunt() {
		if preyID, ok := systems.Hunt(g.registry, id, a, &g.cfg.Actions, g.rng); ok {
			g.hunted[preyID] = struct{}{}
			g.record(telemetry.NewKillEvent(g.tick, id, preyID, diet))
			slog.Debug("kill", "tick", g.tick, "id", id, "prey", preyID, "diet", diet.String())
		}
	}
}
