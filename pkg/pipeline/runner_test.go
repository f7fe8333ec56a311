package pipeline

import (
	"bytes"
	"context"
	"sync"
	"testing"
	"time"

	"github.com/matzehuels/mazegen/pkg/cache"
	"github.com/matzehuels/mazegen/pkg/observability"
)

type recordingHooks struct {
	observability.NoopPipelineHooks
	mu        sync.Mutex
	generated int
	rendered  [][]string
}

func (h *recordingHooks) OnGenerateComplete(_ context.Context, _ string, _ int, _ time.Duration, err error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if err == nil {
		h.generated++
	}
}

func (h *recordingHooks) OnRenderComplete(_ context.Context, formats []string, _ time.Duration, err error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if err == nil {
		h.rendered = append(h.rendered, formats)
	}
}

func newTestRunner(t *testing.T) *Runner {
	t.Helper()
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	r := NewRunner(c, nil, nil)
	t.Cleanup(func() { r.Close() })
	return r
}

func TestRunnerExecuteCaches(t *testing.T) {
	hooks := &recordingHooks{}
	observability.SetPipelineHooks(hooks)
	t.Cleanup(observability.Reset)

	r := newTestRunner(t)
	ctx := context.Background()
	opts := Options{Columns: 6, Rows: 5, Algorithm: "sidewinder", Seed: 11, Formats: []string{"svg", "ascii"}}

	first, err := r.Execute(ctx, opts)
	if err != nil {
		t.Fatal(err)
	}
	if first.CacheInfo.GenerateHit || first.CacheInfo.RenderHit {
		t.Errorf("first run should miss, got %+v", first.CacheInfo)
	}
	if first.Stats.Cells != 30 || first.Stats.Links != 29 {
		t.Errorf("stats = %+v", first.Stats)
	}
	if first.MazeHash == "" || first.Analysis == nil {
		t.Error("result should carry hash and analysis")
	}

	second, err := r.Execute(ctx, opts)
	if err != nil {
		t.Fatal(err)
	}
	if !second.CacheInfo.GenerateHit || !second.CacheInfo.RenderHit {
		t.Errorf("second run should hit, got %+v", second.CacheInfo)
	}
	if second.MazeHash != first.MazeHash {
		t.Error("cached maze should hash the same")
	}
	if !bytes.Equal(second.Artifacts["svg"], first.Artifacts["svg"]) {
		t.Error("cached svg differs")
	}

	if hooks.generated != 1 {
		t.Errorf("generator should run once, ran %d times", hooks.generated)
	}
	if len(hooks.rendered) != 1 || len(hooks.rendered[0]) != 2 {
		t.Errorf("render hooks = %v", hooks.rendered)
	}
}

func TestRunnerRendersOnlyMissingFormats(t *testing.T) {
	hooks := &recordingHooks{}
	observability.SetPipelineHooks(hooks)
	t.Cleanup(observability.Reset)

	r := newTestRunner(t)
	ctx := context.Background()

	if _, err := r.Execute(ctx, Options{Seed: 5, Formats: []string{"svg"}}); err != nil {
		t.Fatal(err)
	}
	res, err := r.Execute(ctx, Options{Seed: 5, Formats: []string{"svg", "dot"}})
	if err != nil {
		t.Fatal(err)
	}
	if res.CacheInfo.RenderHit {
		t.Error("dot was never rendered, render should not be a full hit")
	}
	last := hooks.rendered[len(hooks.rendered)-1]
	if len(last) != 1 || last[0] != "dot" {
		t.Errorf("only dot should be rendered, got %v", last)
	}
}

func TestRunnerRefresh(t *testing.T) {
	r := newTestRunner(t)
	ctx := context.Background()
	opts := Options{Columns: 4, Rows: 4, Seed: 9}

	if _, err := r.Execute(ctx, opts); err != nil {
		t.Fatal(err)
	}
	opts.Refresh = true
	res, err := r.Execute(ctx, opts)
	if err != nil {
		t.Fatal(err)
	}
	if res.CacheInfo.GenerateHit || res.CacheInfo.RenderHit {
		t.Errorf("refresh should bypass the cache, got %+v", res.CacheInfo)
	}
}

func TestRunnerSeedsAreDistinct(t *testing.T) {
	r := NewRunner(nil, nil, nil)
	ctx := context.Background()

	a, err := r.Execute(ctx, Options{Columns: 10, Rows: 10, Seed: 1})
	if err != nil {
		t.Fatal(err)
	}
	b, err := r.Execute(ctx, Options{Columns: 10, Rows: 10, Seed: 2})
	if err != nil {
		t.Fatal(err)
	}
	if a.MazeHash == b.MazeHash {
		t.Error("different seeds should give different mazes")
	}
}

func TestRunnerInvalidOptions(t *testing.T) {
	r := NewRunner(nil, nil, nil)
	if _, err := r.Execute(context.Background(), Options{Algorithm: "nope"}); err == nil {
		t.Error("unknown algorithm should fail")
	}
}
