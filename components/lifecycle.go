package components

// DeathCause records why an animal was removed.
type DeathCause uint8

const (
	CauseNone       DeathCause = iota
	CauseStarvation            // health ran out without a predator involved
	CausePredation             // health zeroed by a hunt
	CauseOldAge
)

// String returns the telemetry name for a DeathCause.
func (c DeathCause) String() string {
	switch c {
	case CauseStarvation:
		return "starvation"
	case CausePredation:
		return "predation"
	case CauseOldAge:
		return "old_age"
	}
	return "none"
}
