// Package runner lints work items in parallel and feeds their results to a
// single reducer.
package runner

import (
	"context"
	"log/slog"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/leapstack-labs/biome/internal/driver"
	"github.com/leapstack-labs/biome/internal/outcome"
	"github.com/leapstack-labs/biome/internal/scanner"
)

// Linter lints one work item.
type Linter interface {
	Lint(ctx context.Context, item scanner.WorkItem) driver.Result
}

// Options configures a run.
type Options struct {
	// Jobs is the number of workers; zero means one per logical CPU.
	Jobs   int
	Logger *slog.Logger
}

// Run lints items with a bounded worker pool. Workers hand each result to
// the reducer through a bounded channel; only one goroutine touches the
// reducer. Run returns the context error when it is cancelled.
func Run(ctx context.Context, items []scanner.WorkItem, l Linter, reducer *outcome.Reducer, opts Options) error {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	if len(items) == 0 {
		return ctx.Err()
	}
	jobs = min(jobs, len(items))

	start := time.Now()
	results := make(chan driver.Result, jobs)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for res := range results {
			reducer.Add(res)
		}
	}()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for _, item := range items {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res := l.Lint(gctx, item)
			select {
			case results <- res:
				return nil
			case <-gctx.Done():
				return gctx.Err()
			}
		})
	}

	err := g.Wait()
	close(results)
	<-done

	logger.Debug("lint run finished",
		slog.Int("files", len(items)),
		slog.Int("jobs", jobs),
		slog.Duration("elapsed", time.Since(start)))
	if err != nil {
		return err
	}
	return ctx.Err()
}
