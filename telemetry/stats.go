package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated statistics for a tick window.
type WindowStats struct {
	WindowStartTick int `csv:"-"`
	WindowEndTick   int `csv:"window_end"`

	// Population counts at window end
	Herbivores int `csv:"herbivores"`
	Carnivores int `csv:"carnivores"`
	Omnivores  int `csv:"omnivores"`
	Total      int `csv:"total"`

	// Events during window
	HerbivoreBirths  int `csv:"herbivore_births"`
	CarnivoreBirths  int `csv:"carnivore_births"`
	OmnivoreBirths   int `csv:"omnivore_births"`
	DeathsStarvation int `csv:"deaths_starvation"`
	DeathsPredation  int `csv:"deaths_predation"`
	DeathsOldAge     int `csv:"deaths_old_age"`
	Kills            int `csv:"kills"`
	Grazes           int `csv:"grazes"`

	// Mean ticks lived by animals that died during the window
	MeanLifespan float64 `csv:"mean_lifespan"`

	// Fraction of cells with grass at window end
	GrassCoverage float64 `csv:"grass_coverage"`

	// Vital distributions (sampled at window end)
	HealthMean float64 `csv:"health_mean"`
	HealthStd  float64 `csv:"health_std"`
	EnergyMean float64 `csv:"energy_mean"`
	EnergyP10  float64 `csv:"energy_p10"`
	EnergyP50  float64 `csv:"energy_p50"`
	EnergyP90  float64 `csv:"energy_p90"`
	HungerMean float64 `csv:"hunger_mean"`
	HungerP90  float64 `csv:"hunger_p90"`
	AgeMean    float64 `csv:"age_mean"`
	AgeP90     float64 `csv:"age_p90"`
}

// Summary describes a sample distribution.
type Summary struct {
	Mean, Std     float64
	P10, P50, P90 float64
}

// Summarize computes mean, standard deviation and empirical quantiles.
// An empty sample summarizes to zeros; a single value has zero spread.
func Summarize(values []float64) Summary {
	n := len(values)
	if n == 0 {
		return Summary{}
	}

	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	var s Summary
	if n < 2 {
		s.Mean = sorted[0]
	} else {
		s.Mean, s.Std = stat.MeanStdDev(sorted, nil)
	}
	s.P10 = stat.Quantile(0.10, stat.Empirical, sorted, nil)
	s.P50 = stat.Quantile(0.50, stat.Empirical, sorted, nil)
	s.P90 = stat.Quantile(0.90, stat.Empirical, sorted, nil)
	return s
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("window_start", s.WindowStartTick),
		slog.Int("window_end", s.WindowEndTick),
		slog.Int("herbivores", s.Herbivores),
		slog.Int("carnivores", s.Carnivores),
		slog.Int("omnivores", s.Omnivores),
		slog.Int("total", s.Total),
		slog.Int("herbivore_births", s.HerbivoreBirths),
		slog.Int("carnivore_births", s.CarnivoreBirths),
		slog.Int("omnivore_births", s.OmnivoreBirths),
		slog.Int("deaths_starvation", s.DeathsStarvation),
		slog.Int("deaths_predation", s.DeathsPredation),
		slog.Int("deaths_old_age", s.DeathsOldAge),
		slog.Int("kills", s.Kills),
		slog.Int("grazes", s.Grazes),
		slog.Float64("mean_lifespan", s.MeanLifespan),
		slog.Float64("grass_coverage", s.GrassCoverage),
		slog.Float64("health_mean", s.HealthMean),
		slog.Float64("energy_mean", s.EnergyMean),
		slog.Float64("hunger_mean", s.HungerMean),
		slog.Float64("age_mean", s.AgeMean),
	)
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats", "window", s)
}
