// Package sweep generates card tables for a range of seeds and collects
// statistics about them.
package sweep

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/lox/badugi/badugi"
	"github.com/lox/badugi/table"
)

// SourceFunc builds the table source for one seed
type SourceFunc func(seed int64) table.Source

// Config holds configuration for a sweep
type Config struct {
	From, To    int64
	Workers     int
	MaxAttempts int
	NewSource   SourceFunc
	Clock       quartz.Clock
	Logger      *log.Logger
}

// SeedResult is what a sweep learned about one seed
type SeedResult struct {
	Seed       int64
	Attempts   int
	Fallback   bool
	Duplicates int
	Repeats    int
	Classes    [badugi.Badugi + 1]int
}

// Result aggregates a sweep
type Result struct {
	Seeds     []SeedResult
	Fallbacks int
	Conflicts int
	// AttemptHistogram counts seeds by how many attempts placement took.
	AttemptHistogram map[int]int
	Elapsed          time.Duration
}

// Run generates a table for every seed in [From, To]. Each seed is generated
// by one goroutine from its own source; results are returned in seed order.
func Run(ctx context.Context, cfg Config) (*Result, error) {
	if cfg.To < cfg.From {
		return nil, fmt.Errorf("invalid seed range %d..%d", cfg.From, cfg.To)
	}
	if cfg.NewSource == nil {
		return nil, fmt.Errorf("sweep: no source constructor")
	}
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.GOMAXPROCS(0)
	}
	if cfg.Clock == nil {
		cfg.Clock = quartz.NewReal()
	}
	if cfg.Logger == nil {
		cfg.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}

	start := cfg.Clock.Now()
	results := make([]SeedResult, cfg.To-cfg.From+1)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)
	for i := range results {
		seed := cfg.From + int64(i)
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = runSeed(cfg, seed)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	res := &Result{
		Seeds:            results,
		AttemptHistogram: make(map[int]int),
		Elapsed:          cfg.Clock.Since(start),
	}
	for _, r := range results {
		if r.Fallback {
			res.Fallbacks++
		}
		if r.Duplicates > 0 {
			res.Conflicts++
		}
		res.AttemptHistogram[r.Attempts]++
	}

	cfg.Logger.Info("Sweep complete",
		"seeds", len(results),
		"fallbacks", res.Fallbacks,
		"conflicts", res.Conflicts,
		"elapsed", res.Elapsed)
	return res, nil
}

func runSeed(cfg Config, seed int64) SeedResult {
	var opts []table.Option
	if cfg.MaxAttempts > 0 {
		opts = append(opts, table.WithMaxAttempts(cfg.MaxAttempts))
	}
	grid := table.Generate(cfg.NewSource(seed), opts...)
	report := table.Audit(grid)

	if grid.UsedFallback() {
		cfg.Logger.Warn("Seed fell back to the fixed table", "seed", seed)
	}
	cfg.Logger.Debug("Audited seed", "seed", seed, "duplicates", len(report.DuplicatePrefixes))

	return SeedResult{
		Seed:       seed,
		Attempts:   grid.Attempts(),
		Fallback:   grid.UsedFallback(),
		Duplicates: len(report.DuplicatePrefixes),
		Repeats:    len(report.RepeatedCards),
		Classes:    report.Classes,
	}
}
