package telemetry

import (
	"log/slog"
	"time"
)

// Phase identifies a timed part of a tick. The per-animal phases are
// accumulated across the animal pass, one sample per animal.
type Phase uint8

const (
	PhaseRegrowth  Phase = iota
	PhaseUpkeep          // aging, starvation, death check, state transition
	PhaseRoam            // Roaming action
	PhaseRest            // Resting action
	PhaseEat             // Eating action: grazing and hunting
	PhaseReproduce       // reproduction check
	PhaseOffspring       // end-of-tick insertion
	PhaseTelemetry
	numPhases
)

var phaseNames = [numPhases]string{
	"regrowth", "upkeep", "roam", "rest", "eat", "reproduce", "offspring", "telemetry",
}

// String returns the phase name used in logs and CSV columns.
func (p Phase) String() string {
	if p < numPhases {
		return phaseNames[p]
	}
	return "unknown"
}

// tickTiming is the time and sample count per phase for one tick.
type tickTiming struct {
	total time.Duration
	spent [numPhases]time.Duration
	calls [numPhases]int
}

// PerfCollector keeps per-phase timings of the last windowSize ticks.
type PerfCollector struct {
	ring   []tickTiming
	next   int
	filled int

	current   tickTiming
	tickStart time.Time
}

// NewPerfCollector creates a collector averaging over windowSize ticks.
func NewPerfCollector(windowSize int) *PerfCollector {
	if windowSize < 1 {
		windowSize = 100
	}
	return &PerfCollector{ring: make([]tickTiming, windowSize)}
}

// StartTick begins timing a new simulation tick.
func (p *PerfCollector) StartTick() {
	p.current = tickTiming{}
	p.tickStart = time.Now()
}

// Add charges d to a phase of the current tick.
func (p *PerfCollector) Add(phase Phase, d time.Duration) {
	p.current.spent[phase] += d
	p.current.calls[phase]++
}

// Since charges the time elapsed since start to a phase.
func (p *PerfCollector) Since(phase Phase, start time.Time) {
	p.Add(phase, time.Since(start))
}

// EndTick closes the current tick and stores it in the window.
func (p *PerfCollector) EndTick() {
	p.current.total = time.Since(p.tickStart)
	p.ring[p.next] = p.current
	p.next = (p.next + 1) % len(p.ring)
	p.filled = min(p.filled+1, len(p.ring))
}

// PhaseStats summarizes one phase over the window.
type PhaseStats struct {
	Avg          time.Duration // mean time per tick
	Pct          float64       // share of mean tick time
	CallsPerTick float64       // mean samples per tick; for actions, animals taking them
}

// PerfStats holds aggregated performance statistics.
type PerfStats struct {
	Ticks           int
	AvgTickDuration time.Duration
	MinTickDuration time.Duration
	MaxTickDuration time.Duration
	TicksPerSecond  float64

	Phases [numPhases]PhaseStats
}

// Phase returns the stats of one phase.
func (s PerfStats) Phase(p Phase) PhaseStats {
	return s.Phases[p]
}

// Stats aggregates the ticks in the window.
func (p *PerfCollector) Stats() PerfStats {
	s := PerfStats{Ticks: p.filled}
	if p.filled == 0 {
		return s
	}

	var total time.Duration
	var spent [numPhases]time.Duration
	var calls [numPhases]int
	for i, t := range p.ring[:p.filled] {
		total += t.total
		if i == 0 || t.total < s.MinTickDuration {
			s.MinTickDuration = t.total
		}
		s.MaxTickDuration = max(s.MaxTickDuration, t.total)
		for ph := range spent {
			spent[ph] += t.spent[ph]
			calls[ph] += t.calls[ph]
		}
	}

	n := time.Duration(p.filled)
	s.AvgTickDuration = total / n
	if s.AvgTickDuration > 0 {
		s.TicksPerSecond = float64(time.Second) / float64(s.AvgTickDuration)
	}
	for ph := range s.Phases {
		avg := spent[ph] / n
		ps := PhaseStats{Avg: avg, CallsPerTick: float64(calls[ph]) / float64(p.filled)}
		if s.AvgTickDuration > 0 {
			ps.Pct = float64(avg) / float64(s.AvgTickDuration) * 100
		}
		s.Phases[ph] = ps
	}
	return s
}

// LogStats logs performance statistics.
func (s PerfStats) LogStats() {
	slog.Info("perf", "window", s)
}

// LogValue implements slog.LogValuer for structured logging.
func (s PerfStats) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.Int64("avg_tick_us", s.AvgTickDuration.Microseconds()),
		slog.Int64("max_tick_us", s.MaxTickDuration.Microseconds()),
		slog.Int("ticks_per_sec", int(s.TicksPerSecond)),
	}
	for ph, ps := range s.Phases {
		if ps.Pct >= 0.1 {
			attrs = append(attrs, slog.Float64(Phase(ph).String()+"_pct", float64(int(ps.Pct*10))/10))
		}
	}
	return slog.GroupValue(attrs...)
}

// PerfStatsCSV is a flat struct for CSV export of performance stats.
type PerfStatsCSV struct {
	WindowEnd    int     `csv:"window_end"`
	AvgTickUS    int64   `csv:"avg_tick_us"`
	MinTickUS    int64   `csv:"min_tick_us"`
	MaxTickUS    int64   `csv:"max_tick_us"`
	TicksPerSec  float64 `csv:"ticks_per_sec"`
	RegrowthPct  float64 `csv:"regrowth_pct"`
	UpkeepPct    float64 `csv:"upkeep_pct"`
	RoamPct      float64 `csv:"roam_pct"`
	RestPct      float64 `csv:"rest_pct"`
	EatPct       float64 `csv:"eat_pct"`
	ReproducePct float64 `csv:"reproduce_pct"`
	OffspringPct float64 `csv:"offspring_pct"`
	TelemetryPct float64 `csv:"telemetry_pct"`
	Roamers      float64 `csv:"roamers_per_tick"`
	Resters      float64 `csv:"resters_per_tick"`
	Eaters       float64 `csv:"eaters_per_tick"`
}

// ToCSV converts PerfStats to a flat CSV-friendly struct.
func (s PerfStats) ToCSV(windowEnd int) PerfStatsCSV {
	return PerfStatsCSV{
		WindowEnd:    windowEnd,
		AvgTickUS:    s.AvgTickDuration.Microseconds(),
		MinTickUS:    s.MinTickDuration.Microseconds(),
		MaxTickUS:    s.MaxTickDuration.Microseconds(),
		TicksPerSec:  s.TicksPerSecond,
		RegrowthPct:  s.Phases[PhaseRegrowth].Pct,
		UpkeepPct:    s.Phases[PhaseUpkeep].Pct,
		RoamPct:      s.Phases[PhaseRoam].Pct,
		RestPct:      s.Phases[PhaseRest].Pct,
		EatPct:       s.Phases[PhaseEat].Pct,
		ReproducePct: s.Phases[PhaseReproduce].Pct,
		OffspringPct: s.Phases[PhaseOffspring].Pct,
		TelemetryPct: s.Phases[PhaseTelemetry].Pct,
		Roamers:      s.Phases[PhaseRoam].CallsPerTick,
		Resters:      s.Phases[PhaseRest].CallsPerTick,
		Eaters:       s.Phases[PhaseEat].CallsPerTick,
	}
}
