package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/pkg/profile"

	"github.com/pthm-cable/ecosystem/config"
	"github.com/pthm-cable/ecosystem/game"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		slog.Error("simulation failed", "error", err)
		os.Exit(1)
	}
}

// run parses args and drives a headless simulation. Errors are returned
// rather than exiting so deferred profile and output flushes still run.
func run(args []string) error {
	fs := flag.NewFlagSet("ecosystem", flag.ContinueOnError)

	// CLI flags
	configPath := fs.String("config", "", "Path to config.yaml (empty = use defaults)")
	logStats := fs.Bool("log-stats", false, "Output stats via slog")
	outputDir := fs.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	seed := fs.Int64("seed", 0, "RNG seed (0 = time-based)")
	maxTicks := fs.Int("max-ticks", 1000, "Stop after N ticks (0 = until extinction)")
	width := fs.Int("width", 0, "Grid width in cells (0 = use config)")
	height := fs.Int("height", 0, "Grid height in cells (0 = use config)")
	debug := fs.Bool("debug", false, "Log births, deaths and kills")
	profileMode := fs.String("profile", "", "Write a cpu or mem profile to the output directory (or cwd)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	// Set up slog (JSON to stdout for structured logging)
	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	if err := config.Init(*configPath); err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	cfg := config.Cfg()
	if *width > 0 {
		cfg.World.Width = *width
	}
	if *height > 0 {
		cfg.World.Height = *height
	}

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	if stop := startProfile(*profileMode, *outputDir); stop != nil {
		defer stop()
	}

	g, err := game.NewGame(cfg, game.Options{
		Seed:      rngSeed,
		LogStats:  *logStats,
		OutputDir: *outputDir,
	})
	if err != nil {
		return fmt.Errorf("creating simulation: %w", err)
	}
	defer g.Unload()

	slog.Info("starting headless simulation",
		"seed", rngSeed,
		"max_ticks", *maxTicks,
		"output_dir", *outputDir,
	)

	start := time.Now()
	for *maxTicks == 0 || g.Tick() < *maxTicks {
		g.Step()
		if pop := g.Population(); pop[0]+pop[1]+pop[2] == 0 {
			slog.Info("population extinct", "tick", g.Tick())
			break
		}
	}

	g.LogWorldState()
	slog.Info("simulation finished", "tick", g.Tick(), "elapsed", time.Since(start).String())
	return nil
}

// startProfile starts a pprof profile for mode "cpu" or "mem" and returns its stop function.
func startProfile(mode, dir string) func() {
	if dir == "" {
		dir = "."
	}
	var kind func(*profile.Profile)
	switch mode {
	case "":
		return nil
	case "cpu":
		kind = profile.CPUProfile
	case "mem":
		kind = profile.MemProfileAllocs
	default:
		slog.Warn("unknown profile mode, profiling disabled", "mode", mode)
		return nil
	}
	p := profile.Start(kind, profile.ProfilePath(dir), profile.NoShutdownHook, profile.Quiet)
	return p.Stop
}
