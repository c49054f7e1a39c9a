// Package systems provides the grid, registry and per-tick rules of the simulation.
package systems

import (
	"math/rand"
	"slices"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/ecosystem/components"
)

// Registry owns the live population. Each animal is one ECS entity carrying
// both its Animal and Position components, so inserting or removing an
// animal always adds or drops its position in the same step.
//
// Iteration order is ascending AnimalID, which is insertion order.
// Pointers returned by Get are valid until the next Insert or Remove.
type Registry struct {
	world *ecs.World

	mapper    *ecs.Map2[components.Animal, components.Position]
	animalMap *ecs.Map[components.Animal]
	posMap    *ecs.Map[components.Position]
	filter    *ecs.Filter2[components.Animal, components.Position]

	entities map[components.AnimalID]ecs.Entity
	order    []components.AnimalID // ascending
	nextID   components.AnimalID

	width, height int
}

// NewRegistry creates an empty registry for a width x height grid.
func NewRegistry(width, height int) *Registry {
	world := ecs.NewWorld()
	return &Registry{
		world:     world,
		mapper:    ecs.NewMap2[components.Animal, components.Position](world),
		animalMap: ecs.NewMap[components.Animal](world),
		posMap:    ecs.NewMap[components.Position](world),
		filter:    ecs.NewFilter2[components.Animal, components.Position](world),
		entities:  make(map[components.AnimalID]ecs.Entity),
		nextID:    1,
		width:     width,
		height:    height,
	}
}

// Spawn inserts the animal at a position drawn uniformly from box
// (clipped to the grid) and returns its new ID.
func (r *Registry) Spawn(a components.Animal, box components.Box, rng *rand.Rand) components.AnimalID {
	b := box.Clip(r.width, r.height)
	pos := components.Position{
		X: b.X + rng.Intn(b.W),
		Y: b.Y + rng.Intn(b.H),
	}
	return r.Insert(a, pos)
}

// Insert adds the animal at an exact position and returns its new ID.
// The position is clamped to the grid.
func (r *Registry) Insert(a components.Animal, pos components.Position) components.AnimalID {
	id := r.nextID
	r.nextID++

	a = a.WithID(id)
	pos = pos.Offset(0, 0, r.width, r.height)

	r.entities[id] = r.mapper.NewEntity(&a, &pos)
	r.order = append(r.order, id)
	return id
}

// Remove deletes the animal and its position. Returns false if it was already gone.
func (r *Registry) Remove(id components.AnimalID) bool {
	e, ok := r.entities[id]
	if !ok {
		return false
	}
	r.world.RemoveEntity(e)
	delete(r.entities, id)
	if i, found := slices.BinarySearch(r.order, id); found {
		r.order = slices.Delete(r.order, i, i+1)
	}
	return true
}

// Contains reports whether the animal is live.
func (r *Registry) Contains(id components.AnimalID) bool {
	_, ok := r.entities[id]
	return ok
}

// Get returns a mutable pointer to a live animal.
func (r *Registry) Get(id components.AnimalID) (*components.Animal, bool) {
	e, ok := r.entities[id]
	if !ok {
		return nil, false
	}
	return r.animalMap.Get(e), true
}

// PositionOf returns the animal's current position, or false if it has been removed.
func (r *Registry) PositionOf(id components.AnimalID) (components.Position, bool) {
	e, ok := r.entities[id]
	if !ok {
		return components.Position{}, false
	}
	return *r.posMap.Get(e), true
}

// MoveTo replaces the animal's position with pos clamped to the grid.
// A removed animal is ignored.
func (r *Registry) MoveTo(id components.AnimalID, pos components.Position) bool {
	e, ok := r.entities[id]
	if !ok {
		return false
	}
	*r.posMap.Get(e) = pos.Offset(0, 0, r.width, r.height)
	return true
}

// Len returns the number of live animals.
func (r *Registry) Len() int {
	return len(r.order)
}

// IDs returns a copy of the live IDs in iteration order.
func (r *Registry) IDs() []components.AnimalID {
	return slices.Clone(r.order)
}

// Size returns the grid dimensions the registry clamps positions to.
func (r *Registry) Size() (width, height int) {
	return r.width, r.height
}

// Positions returns a point-in-time copy of the ID -> Position mapping.
func (r *Registry) Positions() map[components.AnimalID]components.Position {
	out := make(map[components.AnimalID]components.Position, len(r.order))
	query := r.filter.Query()
	for query.Next() {
		a, pos := query.Get()
		out[a.ID()] = *pos
	}
	return out
}

// Animals returns copies of all live animals in iteration order.
func (r *Registry) Animals() []components.Animal {
	out := make([]components.Animal, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, *r.animalMap.Get(r.entities[id]))
	}
	return out
}
