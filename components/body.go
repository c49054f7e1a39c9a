package components

// Vital ranges. Health has no upper bound; spawn values may exceed 100.
const (
	MaxEnergy = 100.0
	MaxHunger = 100.0
)

// Stats is a health/energy/hunger triple used for spawn and offspring templates.
type Stats struct {
	Health float64
	Energy float64
	Hunger float64
}

func clampHealth(v float64) float64 {
	return max(0, v)
}

func clampEnergy(v float64) float64 {
	return min(MaxEnergy, max(0, v))
}

func clampHunger(v float64) float64 {
	return min(MaxHunger, max(0, v))
}
