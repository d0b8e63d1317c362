// Command slsgen generates a randomized ship & lock scheduling instance and
// writes it as structured JSON for the downstream scheduling solver.
//
// Flags mirror the generation Config; defaults come from
// instance.DefaultConfig, optionally overridden by environment variables
// (SLSGEN_SEED, SLSGEN_OUT, SLSGEN_LOG_LEVEL), which a local .env file may
// provide. Flags win over the environment.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/slslab/slsgen/compactjson"
	"github.com/slslab/slsgen/instance"
	"github.com/slslab/slsgen/sampling"
)

const defaultOutPath = "data-generated.json"

func main() {
	if err := run(os.Args[1:]); err != nil {
		slog.Error("generation failed", "error", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if err := godotenv.Load(); err != nil {
		// A .env file is optional; the process environment still applies.
		slog.Debug("no .env file found, using process environment")
	}
	initLogger(getenv("SLSGEN_LOG_LEVEL", "info"))

	cfg := instance.DefaultConfig()
	if v := os.Getenv("SLSGEN_SEED"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("slsgen: SLSGEN_SEED: %w", err)
		}
		cfg.Seed = seed
	}
	outPath := getenv("SLSGEN_OUT", defaultOutPath)

	fs := flag.NewFlagSet("slsgen", flag.ContinueOnError)
	fs.IntVar(&cfg.NLocks, "locks", cfg.NLocks, "number of locks")
	fs.IntVar(&cfg.ChambersPerLock, "chambers-per-lock", cfg.ChambersPerLock, "parallel chambers per lock")
	fs.IntVar(&cfg.ShipCount, "ship-count", cfg.ShipCount, "number of ships")
	fs.Var(newRangeFlag(&cfg.SegmentLengthMRange), "segment-length-range", "segment length range in m, as lo,hi")
	fs.Var(newRangeFlag(&cfg.ShipDistributionRange), "ship-distribution-range", "downstream:upstream ratio, as lo,hi")
	fs.Var(newRangeFlag(&cfg.ShipLengthCMRange), "ship-length-range", "ship length range in cm, as lo,hi")
	fs.Var(newRangeFlag(&cfg.ShipWidthCMRange), "ship-width-range", "ship width range in cm, as lo,hi")
	fs.Var(newRangeFlag(&cfg.ChamberLengthCMRange), "chamber-length-range", "chamber length range in cm, as lo,hi")
	fs.Var(newRangeFlag(&cfg.ChamberWidthCMRange), "chamber-width-range", "chamber width range in cm, as lo,hi")
	fs.Var(newRangeFlag(&cfg.FillTimeRange), "fill-time-range", "chamber fill time range in min, as lo,hi")
	fs.Var(newRangeFlag(&cfg.EmptyTimeRange), "empty-time-range", "chamber empty time range in min, as lo,hi")
	fs.Var(newRangeFlag(&cfg.SpeedUpRange), "speed-up-range", "downstream speed range in km/h, as lo,hi")
	fs.Var(newRangeFlag(&cfg.SpeedDownRange), "speed-down-range", "upstream speed range in km/h, as lo,hi")
	fs.Var(newRangeFlag(&cfg.EtaRange), "eta-range", "arrival interval range in min, as lo,hi")
	fs.IntVar(&cfg.DurationFactor, "duration-factor", cfg.DurationFactor, "max/min transit duration factor")
	fs.IntVar(&cfg.BufferTimeMin, "buffer-time", cfg.BufferTimeMin, "buffer time in min")
	fs.IntVar(&cfg.SecurityDistanceCM, "security-distance", cfg.SecurityDistanceCM, "security distance in cm")
	fs.IntVar(&cfg.DelayWeight, "delay-weight", cfg.DelayWeight, "objective weight for delays")
	fs.IntVar(&cfg.WaitWeight, "wait-weight", cfg.WaitWeight, "objective weight for waiting time")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed")
	noAutoScale := fs.Bool("no-auto-scale-chambers", false, "disable chamber auto-scaling to fit ships")
	fs.BoolVar(&cfg.AdaptiveHorizon, "adaptive-horizon", cfg.AdaptiveHorizon, "derive the horizon from synthesized durations instead of the fixed day")
	fs.StringVar(&outPath, "out", outPath, "output file path")

	if err := fs.Parse(args); err != nil {
		return err
	}
	cfg.AutoScaleChambers = !*noAutoScale

	slog.Info("generating instance",
		"locks", cfg.NLocks,
		"chambers_per_lock", cfg.ChambersPerLock,
		"ships", cfg.ShipCount,
		"seed", cfg.Seed,
	)

	inst, err := instance.Generate(cfg)
	if err != nil {
		return err
	}

	if err = compactjson.WriteFile(outPath, inst, 0o644); err != nil {
		return err
	}

	slog.Info("instance written",
		"path", outPath,
		"horizon", inst.RawMaxHorizon,
		"max_lockings", inst.MaxNumOfLockings,
	)
	return nil
}

func initLogger(level string) {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})))
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// rangeFlag binds a sampling.Range to a "lo,hi" command-line value.
type rangeFlag struct {
	r *sampling.Range
}

func newRangeFlag(r *sampling.Range) *rangeFlag {
	return &rangeFlag{r: r}
}

func (f *rangeFlag) String() string {
	if f == nil || f.r == nil {
		return ""
	}
	return fmt.Sprintf("%d,%d", f.r.Lo, f.r.Hi)
}

func (f *rangeFlag) Set(value string) error {
	parts := strings.Split(value, ",")
	if len(parts) != 2 {
		return fmt.Errorf("slsgen: range must be lo,hi: %q", value)
	}
	lo, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return fmt.Errorf("slsgen: range lower bound: %w", err)
	}
	hi, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return fmt.Errorf("slsgen: range upper bound: %w", err)
	}
	*f.r = sampling.NewRange(lo, hi)
	return nil
}
