package telemetry

import "github.com/pthm-cable/ecosystem/components"

// LifetimeStats tracks per-animal statistics over its lifetime.
type LifetimeStats struct {
	BirthTick int
	Diet      components.DietType
	ParentID  components.AnimalID // 0 for founders

	Kills    int
	Grazes   int
	Children int
}

// LifetimeTracker manages per-animal lifetime statistics.
type LifetimeTracker struct {
	stats map[components.AnimalID]*LifetimeStats
}

// NewLifetimeTracker creates a new lifetime tracker.
func NewLifetimeTracker() *LifetimeTracker {
	return &LifetimeTracker{
		stats: make(map[components.AnimalID]*LifetimeStats),
	}
}

// Register creates lifetime stats for a new animal.
func (lt *LifetimeTracker) Register(id components.AnimalID, birthTick int, diet components.DietType, parentID components.AnimalID) {
	lt.stats[id] = &LifetimeStats{
		BirthTick: birthTick,
		Diet:      diet,
		ParentID:  parentID,
	}
}

// Get returns the lifetime stats for an animal, or nil if not found.
func (lt *LifetimeTracker) Get(id components.AnimalID) *LifetimeStats {
	return lt.stats[id]
}

// Remove removes an animal's stats and returns them.
func (lt *LifetimeTracker) Remove(id components.AnimalID) *LifetimeStats {
	stats := lt.stats[id]
	delete(lt.stats, id)
	return stats
}

// Observe updates the per-animal counters for an event.
func (lt *LifetimeTracker) Observe(ev Event) {
	switch ev.Type {
	case EventKill:
		if s := lt.stats[ev.AnimalID]; s != nil {
			s.Kills++
		}
	case EventGraze:
		if s := lt.stats[ev.AnimalID]; s != nil {
			s.Grazes++
		}
	case EventBirth:
		if s := lt.stats[ev.TargetID]; s != nil {
			s.Children++
		}
	}
}

// Count returns the number of tracked animals.
func (lt *LifetimeTracker) Count() int {
	return len(lt.stats)
}
