package components

// Animal holds an animal's biological state.
// Diet and hunt capability are set by NewAnimal and never change afterwards.
// Vitals are clamped on every write, so readers never see an out-of-range value.
type Animal struct {
	id      AnimalID
	diet    DietType
	canHunt bool

	state  BehaviorState
	health float64
	energy float64
	hunger float64
	age    int
}

// NewAnimal creates a Roaming, age-zero animal with the given starting vitals.
// Energy and hunger above their ceilings are clamped.
func NewAnimal(diet DietType, s Stats) Animal {
	return Animal{
		diet:    diet,
		canHunt: diet.CanHunt(),
		state:   Roaming,
		health:  clampHealth(s.Health),
		energy:  clampEnergy(s.Energy),
		hunger:  clampHunger(s.Hunger),
	}
}

// WithID returns a copy of the animal carrying the given ID.
// Used by the registry on insertion.
func (a Animal) WithID(id AnimalID) Animal {
	a.id = id
	return a
}

func (a *Animal) ID() AnimalID          { return a.id }
func (a *Animal) Diet() DietType        { return a.diet }
func (a *Animal) CanInitiateHunt() bool { return a.canHunt }
func (a *Animal) State() BehaviorState  { return a.state }
func (a *Animal) Health() float64       { return a.health }
func (a *Animal) Energy() float64       { return a.energy }
func (a *Animal) Hunger() float64       { return a.hunger }
func (a *Animal) Age() int              { return a.age }

// Dead reports whether health has dropped to zero.
func (a *Animal) Dead() bool {
	return a.health <= 0
}

func (a *Animal) SetState(s BehaviorState) { a.state = s }

func (a *Animal) SetHealth(v float64) { a.health = clampHealth(v) }
func (a *Animal) SetEnergy(v float64) { a.energy = clampEnergy(v) }
func (a *Animal) SetHunger(v float64) { a.hunger = clampHunger(v) }

func (a *Animal) AddHealth(d float64) { a.SetHealth(a.health + d) }
func (a *Animal) AddEnergy(d float64) { a.SetEnergy(a.energy + d) }
func (a *Animal) AddHunger(d float64) { a.SetHunger(a.hunger + d) }

// SetAge sets the age, flooring at zero.
func (a *Animal) SetAge(years int) { a.age = max(0, years) }

// Birthday advances age by one.
func (a *Animal) Birthday() { a.age++ }
