package aggregator

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

func TestWorkerPool_RunsAllTasks(t *testing.T) {
	pool := NewWorkerPool(3, 8)
	ctx := context.Background()
	results := pool.Run(ctx)

	var ran int32
	for i := 0; i < 8; i++ {
		pool.Submit(func(ctx context.Context) error {
			atomic.AddInt32(&ran, 1)
			return nil
		})
	}
	pool.Close()

	count := 0
	for r := range results {
		if r.Err != nil {
			t.Errorf("unexpected task error: %v", r.Err)
		}
		count++
	}
	if count != 8 {
		t.Errorf("expected 8 results, got %d", count)
	}
	if got := atomic.LoadInt32(&ran); got != 8 {
		t.Errorf("expected 8 tasks run, got %d", got)
	}
}

func TestWorkerPool_RateLimitedTasksFinishAfterClose(t *testing.T) {
	pool := NewWorkerPool(1, 4)
	pool.SetRateLimit(20)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	results := pool.Run(ctx)

	for i := 0; i < 4; i++ {
		pool.Submit(func(ctx context.Context) error { return nil })
	}
	time.Sleep(20 * time.Millisecond)
	pool.Close()

	count := 0
	for r := range results {
		if r.Err != nil {
			t.Errorf("unexpected task error: %v", r.Err)
		}
		count++
	}
	if count != 4 {
		t.Errorf("expected 4 results after close, got %d", count)
	}
	if ctx.Err() != nil {
		t.Errorf("queued tasks should drain before the deadline, ctx err: %v", ctx.Err())
	}
}

func TestWorkerPool_ReportsTaskErrors(t *testing.T) {
	pool := NewWorkerPool(2, 2)
	results := pool.Run(context.Background())

	wantErr := errors.New("fetch failed")
	pool.Submit(func(ctx context.Context) error { return wantErr })
	pool.Submit(func(ctx context.Context) error { return nil })
	pool.Close()

	var failed int
	for r := range results {
		if r.Err != nil {
			failed++
			if !errors.Is(r.Err, wantErr) {
				t.Errorf("unexpected error: %v", r.Err)
			}
		}
	}
	if failed != 1 {
		t.Errorf("expected 1 failed task, got %d", failed)
	}
}
