// Package components defines ECS components for the simulation.
package components

// AnimalID identifies an animal for its whole lifetime. IDs are assigned in
// insertion order and never reused, so ascending ID is the iteration order.
type AnimalID uint64

// DietType determines what an animal can eat. Fixed at creation.
type DietType uint8

const (
	Herbivore DietType = iota
	Carnivore
	Omnivore
)

// BehaviorState is the animal's current state in the per-tick state machine.
type BehaviorState uint8

const (
	Roaming BehaviorState = iota
	Resting
	Eating
)

// CanGraze reports whether the diet eats grass.
func (d DietType) CanGraze() bool {
	return d == Herbivore || d == Omnivore
}

// CanHunt reports whether the diet can initiate a hunt.
func (d DietType) CanHunt() bool {
	return d == Carnivore || d == Omnivore
}

// IsPrey reports whether animals of this diet can be hunted.
func (d DietType) IsPrey() bool {
	return d == Herbivore || d == Omnivore
}
