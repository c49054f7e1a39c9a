package systems

import (
	"math/rand"
	"testing"

	"github.com/pthm-cable/ecosystem/components"
)

func fertile(diet components.DietType) components.Animal {
	a := components.NewAnimal(diet, components.Stats{Health: 100, Energy: 90, Hunger: 10})
	a.SetAge(30)
	return a
}

func TestCanReproduceGates(t *testing.T) {
	cfg := testConfig(t)

	tests := []struct {
		name   string
		mutate func(*components.Animal)
		want   bool
	}{
		{"fertile", func(*components.Animal) {}, true},
		{"health 50", func(a *components.Animal) { a.SetHealth(50) }, false},
		{"energy 60", func(a *components.Animal) { a.SetEnergy(60) }, false},
		{"hunger 50", func(a *components.Animal) { a.SetHunger(50) }, false},
		{"age 20", func(a *components.Animal) { a.SetAge(20) }, false},
		{"age 21", func(a *components.Animal) { a.SetAge(21) }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := fertile(components.Herbivore)
			tt.mutate(&a)
			if got := CanReproduce(&a, &cfg.Reproduction); got != tt.want {
				t.Errorf("CanReproduce = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTryReproduceLowHealthNever(t *testing.T) {
	cfg := testConfig(t)
	rng := rand.New(rand.NewSource(99))

	for i := 0; i < 1000; i++ {
		a := fertile(components.Omnivore)
		a.SetHealth(40)
		if _, ok := TryReproduce(&a, components.Stats{Health: 110, Energy: 60, Hunger: 10}, &cfg.Reproduction, rng); ok {
			t.Fatalf("reproduced with health 40 on trial %d", i)
		}
	}
}

func TestTryReproduceRate(t *testing.T) {
	cfg := testConfig(t)
	rng := rand.New(rand.NewSource(17))

	births := 0
	for i := 0; i < 10000; i++ {
		a := fertile(components.Herbivore)
		if _, ok := TryReproduce(&a, components.Stats{Health: 100, Energy: 60, Hunger: 10}, &cfg.Reproduction, rng); ok {
			births++
		}
	}
	// Bernoulli(0.02): mean 200, sd ~14
	if births < 140 || births > 260 {
		t.Errorf("births = %d of 10000, want ~200", births)
	}
}

func TestTryReproduceChild(t *testing.T) {
	cfg := testConfig(t)
	cfg.Reproduction.Chance = 1
	rng := rand.New(rand.NewSource(1))

	parent := fertile(components.Carnivore)
	parent.SetHunger(40)
	child, ok := TryReproduce(&parent, components.Stats{Health: 120, Energy: 60, Hunger: 10}, &cfg.Reproduction, rng)
	if !ok {
		t.Fatal("expected reproduction with chance 1")
	}

	if parent.Energy() != 50 {
		t.Errorf("parent energy = %v, want 50", parent.Energy())
	}
	if parent.Hunger() != 60 {
		t.Errorf("parent hunger = %v, want 60", parent.Hunger())
	}

	if child.Diet() != components.Carnivore || !child.CanInitiateHunt() {
		t.Errorf("child diet = %v hunt = %v", child.Diet(), child.CanInitiateHunt())
	}
	if child.Health() != 120 || child.Energy() != 60 || child.Hunger() != 10 {
		t.Errorf("child stats = (%v,%v,%v), want (120,60,10)", child.Health(), child.Energy(), child.Hunger())
	}
	if child.Age() != 0 || child.State() != components.Roaming {
		t.Errorf("child age/state = %d/%v, want 0/Roaming", child.Age(), child.State())
	}
}

func TestTryReproduceCostClamps(t *testing.T) {
	cfg := testConfig(t)
	cfg.Reproduction.Chance = 1
	cfg.Reproduction.EnergyCost = 500
	cfg.Reproduction.HungerCost = 500

	parent := fertile(components.Herbivore)
	if _, ok := TryReproduce(&parent, components.Stats{Health: 100}, &cfg.Reproduction, rand.New(rand.NewSource(1))); !ok {
		t.Fatal("expected reproduction")
	}
	if parent.Energy() != 0 || parent.Hunger() != 100 {
		t.Errorf("parent energy/hunger = %v/%v, want 0/100", parent.Energy(), parent.Hunger())
	}
}
