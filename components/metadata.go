package components

import "fmt"

// String returns the display name for a DietType.
func (d DietType) String() string {
	names := DietNames()
	if int(d) < len(names) {
		return names[d]
	}
	return "Unknown"
}

// DietNames returns the display names for all diets.
// The order matches the DietType constants.
func DietNames() []string {
	return []string{"Herbivore", "Carnivore", "Omnivore"}
}

// DietCount returns the number of diets.
func DietCount() int {
	return len(DietNames())
}

// ParseDiet maps a config diet name ("herbivore", "carnivore", "omnivore") to a DietType.
func ParseDiet(name string) (DietType, error) {
	switch name {
	case "herbivore":
		return Herbivore, nil
	case "carnivore":
		return Carnivore, nil
	case "omnivore":
		return Omnivore, nil
	}
	return 0, fmt.Errorf("unknown diet %q", name)
}

// String returns the display name for a BehaviorState.
func (s BehaviorState) String() string {
	switch s {
	case Roaming:
		return "Roaming"
	case Resting:
		return "Resting"
	case Eating:
		return "Eating"
	}
	return "Unknown"
}
