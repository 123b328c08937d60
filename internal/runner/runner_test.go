package runner

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/biome/internal/driver"
	fsx "github.com/leapstack-labs/biome/internal/fs"
	"github.com/leapstack-labs/biome/internal/outcome"
	"github.com/leapstack-labs/biome/internal/scanner"
	"github.com/leapstack-labs/biome/internal/testutil"
	"github.com/leapstack-labs/biome/pkg/lint"
	_ "github.com/leapstack-labs/biome/pkg/lint/rules" // register rules
	"github.com/leapstack-labs/biome/pkg/parser"
)

type linterFunc func(ctx context.Context, item scanner.WorkItem) driver.Result

func (f linterFunc) Lint(ctx context.Context, item scanner.WorkItem) driver.Result {
	return f(ctx, item)
}

func items(n int) []scanner.WorkItem {
	out := make([]scanner.WorkItem, n)
	for i := range out {
		out[i] = scanner.WorkItem{Path: fmt.Sprintf("file%03d.js", i), Language: parser.LanguageJavaScript}
	}
	return out
}

func TestRun_AllItemsReduced(t *testing.T) {
	var calls atomic.Int64
	l := linterFunc(func(_ context.Context, item scanner.WorkItem) driver.Result {
		calls.Add(1)
		return driver.Result{Path: item.Path}
	})
	reducer := outcome.NewReducer(outcome.Options{})

	err := Run(context.Background(), items(50), l, reducer, Options{Jobs: 4, Logger: testutil.NewTestLogger(t)})
	require.NoError(t, err)

	rep := reducer.Finish()
	assert.Equal(t, int64(50), calls.Load())
	require.Len(t, rep.Files, 50)
	assert.Equal(t, "file000.js", rep.Files[0].Path)
	assert.Equal(t, "file049.js", rep.Files[49].Path)
}

func TestRun_Empty(t *testing.T) {
	reducer := outcome.NewReducer(outcome.Options{})
	err := Run(context.Background(), nil, linterFunc(nil), reducer, Options{})
	require.NoError(t, err)
	assert.Zero(t, reducer.Finish().Summary.Files)
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	l := linterFunc(func(_ context.Context, item scanner.WorkItem) driver.Result {
		cancel()
		return driver.Result{Path: item.Path}
	})
	reducer := outcome.NewReducer(outcome.Options{})

	err := Run(ctx, items(100), l, reducer, Options{Jobs: 1})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Less(t, reducer.Finish().Summary.Files, 100)
}

func TestRun_WithDriver(t *testing.T) {
	m := fsx.NewMemory()
	var work []scanner.WorkItem
	for i := 0; i < 8; i++ {
		path := fmt.Sprintf("/proj/f%d.js", i)
		m.AddFile(path, "debugger;\n")
		work = append(work, scanner.WorkItem{
			Path:     fmt.Sprintf("f%d.js", i),
			FullPath: path,
			Language: parser.LanguageJavaScript,
		})
	}
	d := driver.New(driver.Options{
		FS:       m,
		Analyzer: lint.NewAnalyzer(lint.Resolve(lint.RulesConfiguration{}, lint.ResolveOptions{LinterEnabled: true})),
	})
	reducer := outcome.NewReducer(outcome.Options{})

	require.NoError(t, Run(context.Background(), work, d, reducer, Options{Jobs: 3}))

	rep := reducer.Finish()
	assert.Equal(t, 8, rep.Summary.Errors)
	assert.True(t, rep.Failed())
}
