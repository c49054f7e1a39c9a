// Package telemetry provides population tracking, window statistics and CSV output.
package telemetry

import "github.com/pthm-cable/ecosystem/components"

// EventType identifies telemetry events.
type EventType uint8

const (
	EventBirth EventType = iota
	EventDeath
	EventKill
	EventGraze
)

// Event represents a single telemetry event.
type Event struct {
	Type     EventType
	Tick     int
	AnimalID components.AnimalID
	Diet     components.DietType

	// Optional fields depending on event type
	TargetID components.AnimalID   // prey for kills, parent for births
	Cause    components.DeathCause // deaths only
}

// NewBirthEvent creates a birth event.
func NewBirthEvent(tick int, childID, parentID components.AnimalID, diet components.DietType) Event {
	return Event{
		Type:     EventBirth,
		Tick:     tick,
		AnimalID: childID,
		Diet:     diet,
		TargetID: parentID,
	}
}

// NewDeathEvent creates a death event.
func NewDeathEvent(tick int, id components.AnimalID, diet components.DietType, cause components.DeathCause) Event {
	return Event{
		Type:     EventDeath,
		Tick:     tick,
		AnimalID: id,
		Diet:     diet,
		Cause:    cause,
	}
}

// NewKillEvent creates a kill event. The prey is removed later, at its own death check.
func NewKillEvent(tick int, hunterID, preyID components.AnimalID, hunterDiet components.DietType) Event {
	return Event{
		Type:     EventKill,
		Tick:     tick,
		AnimalID: hunterID,
		Diet:     hunterDiet,
		TargetID: preyID,
	}
}

// NewGrazeEvent creates a grazing event.
func NewGrazeEvent(tick int, id components.AnimalID, diet components.DietType) Event {
	return Event{
		Type:     EventGraze,
		Tick:     tick,
		AnimalID: id,
		Diet:     diet,
	}
}
