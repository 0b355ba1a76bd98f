package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"seat-ca/internal/logging"
	"seat-ca/internal/seating"
)

type scenario struct {
	name   string
	layout *seating.Grid
	rule   seating.Rule
}

type scenarioResult struct {
	scenario    scenario
	iterations  int
	generations int
	occupied    int
	seats       int
	elapsed     time.Duration
	err         error
}

func (r scenarioResult) String() string {
	return fmt.Sprintf("%-24s %-8s %4dx%-4d seats=%-6d occupied=%-6d generations=%-4d elapsed=%s",
		r.scenario.name, r.scenario.rule, r.scenario.layout.Rows(), r.scenario.layout.Cols(),
		r.seats, r.occupied, r.generations, r.elapsed.Round(time.Microsecond))
}

type sweepConfig struct {
	rules         string
	maxIterations int
	workers       int
	stepWorkers   int
	random        int
	width         int
	height        int
	floorChance   float64
	seed          int64
	top           int
	logLevel      string
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	var cfg sweepConfig
	fs := flag.NewFlagSet("seat-sweep", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.rules, "rules", "adjacent,visible", "comma separated rules to sweep")
	fs.IntVar(&cfg.maxIterations, "max-iterations", seating.DefaultMaxIterations, "steps allowed per scenario")
	fs.IntVar(&cfg.workers, "workers", runtime.NumCPU(), "scenarios simulated concurrently")
	fs.IntVar(&cfg.stepWorkers, "step-workers", 1, "goroutines per simulation step")
	fs.IntVar(&cfg.random, "random", 0, "number of random layouts to add to the sweep")
	fs.IntVar(&cfg.width, "w", 90, "random layout width")
	fs.IntVar(&cfg.height, "h", 90, "random layout height")
	fs.Float64Var(&cfg.floorChance, "floor-chance", 0.2, "probability that a random cell is floor")
	fs.Int64Var(&cfg.seed, "seed", 1, "seed of the first random layout; later layouts use seed+1, seed+2, ...")
	fs.IntVar(&cfg.top, "top", 5, "number of slowest scenarios to list")
	fs.StringVar(&cfg.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	logger := logging.New(cfg.logLevel, stderr)

	rules, err := parseRules(cfg.rules)
	if err != nil {
		logger.Error().Err(err).Msg("invalid -rules")
		return 2
	}
	layouts, err := loadLayouts(fs.Args(), cfg)
	if err != nil {
		logger.Error().Err(err).Msg("cannot load layouts")
		return 1
	}
	if len(layouts) == 0 {
		fmt.Fprintln(stderr, "usage: seat-sweep [flags] [layout-file ...]  (or -random N)")
		return 2
	}

	var sets []scenario
	for _, l := range layouts {
		for _, rule := range rules {
			sets = append(sets, scenario{name: l.name, layout: l.grid, rule: rule})
		}
	}

	fmt.Fprintf(stdout, "Sweeping %d scenarios (%d workers, budget %d)\n", len(sets), max(cfg.workers, 1), cfg.maxIterations)
	start := time.Now()
	all := sweep(sets, cfg, &logger)
	elapsed := time.Since(start)

	var ok, failed []scenarioResult
	for _, res := range all {
		if res.err != nil {
			failed = append(failed, res)
			continue
		}
		ok = append(ok, res)
	}
	sort.SliceStable(ok, func(i, j int) bool { return ok[i].generations > ok[j].generations })

	fmt.Fprintf(stdout, "\nSlowest %d to settle (elapsed %s):\n", min(cfg.top, len(ok)), elapsed.Round(time.Millisecond))
	for i := 0; i < len(ok) && i < cfg.top; i++ {
		fmt.Fprintf(stdout, "%2d) %s\n", i+1, ok[i])
	}
	for _, res := range failed {
		fmt.Fprintf(stdout, "FAILED %s %s: %v\n", res.scenario.name, res.scenario.rule, res.err)
	}
	if len(failed) > 0 {
		return 1
	}
	return 0
}

// sweep runs every scenario and returns the results in input order.
func sweep(sets []scenario, cfg sweepConfig, logger *zerolog.Logger) []scenarioResult {
	results := make([]scenarioResult, len(sets))
	var g errgroup.Group
	g.SetLimit(max(cfg.workers, 1))
	for i, sc := range sets {
		i, sc := i, sc
		g.Go(func() error {
			results[i] = runScenario(sc, cfg, logger)
			return nil
		})
	}
	// Scenario failures are recorded per result, never returned.
	_ = g.Wait()
	return results
}

func runScenario(sc scenario, cfg sweepConfig, logger *zerolog.Logger) scenarioResult {
	log := logger.With().Str("layout", sc.name).Logger()
	opts := seating.Options{MaxIterations: cfg.maxIterations, Workers: cfg.stepWorkers}
	start := time.Now()
	res, err := seating.NewSimulator(sc.rule, opts, &log).Run(sc.layout)
	out := scenarioResult{
		scenario: sc,
		seats:    sc.layout.Count(seating.Cell.IsSeat),
		elapsed:  time.Since(start),
		err:      err,
	}
	if err == nil {
		out.iterations = res.Iterations
		out.generations = res.Generations()
		out.occupied = res.Occupied()
	}
	return out
}

type namedLayout struct {
	name string
	grid *seating.Grid
}

func loadLayouts(paths []string, cfg sweepConfig) ([]namedLayout, error) {
	var out []namedLayout
	for _, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		grid, err := seating.Parse(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		out = append(out, namedLayout{name: path, grid: grid})
	}
	for i := 0; i < cfg.random; i++ {
		seed := cfg.seed + int64(i)
		out = append(out, namedLayout{
			name: fmt.Sprintf("random(seed=%d)", seed),
			grid: seating.RandomLayout(cfg.height, cfg.width, cfg.floorChance, seed),
		})
	}
	return out, nil
}

func parseRules(list string) ([]seating.Rule, error) {
	var rules []seating.Rule
	for _, part := range strings.Split(list, ",") {
		if part = strings.TrimSpace(part); part == "" {
			continue
		}
		r, err := seating.ParseRule(part)
		if err != nil {
			return nil, err
		}
		rules = append(rules, r)
	}
	if len(rules) == 0 {
		return nil, fmt.Errorf("no rules in %q", list)
	}
	return rules, nil
}
