package observability

import (
	"context"
	"testing"
	"time"
)

type countingRenderHooks struct {
	starts, completes int
}

func (h *countingRenderHooks) OnRenderStart(context.Context, string, string) { h.starts++ }
func (h *countingRenderHooks) OnRenderComplete(context.Context, string, string, int, time.Duration, error) {
	h.completes++
}

type countingCacheHooks struct {
	hits, misses, sets int
}

func (h *countingCacheHooks) OnCacheHit(context.Context, string)      { h.hits++ }
func (h *countingCacheHooks) OnCacheMiss(context.Context, string)     { h.misses++ }
func (h *countingCacheHooks) OnCacheSet(context.Context, string, int) { h.sets++ }

func TestSetRenderHooks(t *testing.T) {
	defer SetRenderHooks(nil)

	h := &countingRenderHooks{}
	SetRenderHooks(h)

	ctx := context.Background()
	Render().OnRenderStart(ctx, "fire", "png")
	Render().OnRenderComplete(ctx, "fire", "png", 100, time.Millisecond, nil)

	if h.starts != 1 || h.completes != 1 {
		t.Errorf("starts = %d, completes = %d, want 1 and 1", h.starts, h.completes)
	}
}

func TestSetCacheHooks(t *testing.T) {
	defer SetCacheHooks(nil)

	h := &countingCacheHooks{}
	SetCacheHooks(h)

	ctx := context.Background()
	Cache().OnCacheMiss(ctx, "swatch")
	Cache().OnCacheSet(ctx, "swatch", 256)
	Cache().OnCacheHit(ctx, "swatch")

	if h.hits != 1 || h.misses != 1 || h.sets != 1 {
		t.Errorf("hits = %d, misses = %d, sets = %d, want 1 each", h.hits, h.misses, h.sets)
	}
}

func TestNilResetsToNoop(t *testing.T) {
	SetRenderHooks(&countingRenderHooks{})
	SetRenderHooks(nil)

	// Must not panic.
	Render().OnRenderStart(context.Background(), "fire", "png")

	if _, ok := Render().(NoopRenderHooks); !ok {
		t.Error("SetRenderHooks(nil) should restore the no-op implementation")
	}
}
