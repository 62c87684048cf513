package storage

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
)

func TestMemoryLock_AcquireRelease(t *testing.T) {
	ctx := context.Background()
	lock := NewMemoryLock()

	ok, err := lock.Acquire(ctx, "project-0")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatal("expected first acquire to succeed")
	}

	ok, err = lock.Acquire(ctx, "project-0")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Error("expected second acquire to fail while held")
	}

	// A different campaign is independent.
	ok, _ = lock.Acquire(ctx, "project-1")
	if !ok {
		t.Error("expected acquire on another project to succeed")
	}

	if err := lock.Release(ctx, "project-0"); err != nil {
		t.Fatalf("release failed: %v", err)
	}
	ok, _ = lock.Acquire(ctx, "project-0")
	if !ok {
		t.Error("expected acquire after release to succeed")
	}
}

func TestMemoryLock_Concurrent(t *testing.T) {
	ctx := context.Background()
	lock := NewMemoryLock()

	var successCount atomic.Int32
	var wg sync.WaitGroup
	concurrency := 100

	for i := 0; i < concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ok, err := lock.Acquire(ctx, "project-0")
			if err != nil {
				t.Errorf("unexpected error: %v", err)
				return
			}
			if ok {
				successCount.Add(1)
			}
		}()
	}

	wg.Wait()

	if successCount.Load() != 1 {
		t.Errorf("expected exactly 1 acquire to succeed, got %d", successCount.Load())
	}
}
