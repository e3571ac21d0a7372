package bench

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"github.com/katalvlaran/argmatch/internal/workload"
	"github.com/katalvlaran/argmatch/match"
)

// Run generates the workload described by cfg and times cfg.Repeat match
// calls on it. The context is checked between runs; a single call always
// runs to completion.
//
// With cfg.Verify the last result is checked with workload.Verify and any
// unmatched key fails the run with ErrIncomplete; otherwise Report.Summary
// stays zero. The returned report is non-nil whenever at least the timing
// finished, including on ErrIncomplete.
func Run(ctx context.Context, cfg Config, log *slog.Logger) (*Report, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	opts, err := cfg.MatchOptions()
	if err != nil {
		return nil, err
	}

	log.Info("Generating workload",
		"query", cfg.Query,
		"reference", cfg.Reference,
		"seed", cfg.Seed,
		"sorted", cfg.Sorted)

	w, err := workload.Generate(cfg.Query, cfg.Reference, cfg.Seed, cfg.Sorted)
	if err != nil {
		return nil, fmt.Errorf("generate workload: %w", err)
	}

	stopProfile, err := startCPUProfile(cfg.CPUProfile)
	if err != nil {
		return nil, err
	}
	defer stopProfile()

	runtime.GC()
	var memBefore runtime.MemStats
	runtime.ReadMemStats(&memBefore)

	report := &Report{
		Query:     cfg.Query,
		Reference: cfg.Reference,
		Sorted:    cfg.Sorted,
		TieBreak:  opts.TieBreak.String(),
		Workers:   opts.Workers,
	}

	var result []int
	for i := range cfg.Repeat {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("run %d of %d: %w", i+1, cfg.Repeat, err)
		}

		start := time.Now()
		result, err = match.MatchWith(w.Query, w.Reference, opts)
		elapsed := time.Since(start)
		if err != nil {
			return nil, fmt.Errorf("run %d of %d: %w", i+1, cfg.Repeat, err)
		}

		report.Runs = append(report.Runs, elapsed)
		log.Debug("Run finished", "run", i+1, "duration", elapsed)
	}

	var memAfter runtime.MemStats
	runtime.ReadMemStats(&memAfter)
	report.AllocBytes = memAfter.TotalAlloc - memBefore.TotalAlloc
	report.Allocs = memAfter.Mallocs - memBefore.Mallocs

	if err := writeHeapProfile(cfg.MemProfile); err != nil {
		return nil, err
	}

	report.finish()
	if !cfg.Verify {
		log.Info("Benchmark finished", "best", report.Best, "mean", report.Mean, "verified", false)
		return report, nil
	}

	summary, err := workload.Verify(w.Query, w.Reference, result)
	if err != nil {
		return nil, fmt.Errorf("verify result: %w", err)
	}
	report.Summary = summary
	report.Verified = true

	log.Info("Benchmark finished",
		"best", report.Best,
		"mean", report.Mean,
		"matched", summary.Matched,
		"missed", summary.Missed)

	if summary.Missed > 0 {
		return report, fmt.Errorf("%w: %d of %d keys unmatched", ErrIncomplete, summary.Missed, cfg.Query)
	}
	return report, nil
}
