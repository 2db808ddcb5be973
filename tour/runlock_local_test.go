package tour

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
)

func TestLocalRunLock_Synchronized(t *testing.T) {
	lock := NewLocalRunLock()
	ctx := context.Background()

	executed := false
	err := lock.NonBlockingSynchronized(ctx, "demo_key", time.Minute, func(ctx context.Context) error {
		executed = true
		return nil
	})
	if err != nil {
		t.Fatalf("NonBlockingSynchronized failed: %v", err)
	}
	if !executed {
		t.Error("closure should be executed")
	}
}

func TestLocalRunLock_Reentrant(t *testing.T) {
	lock := NewLocalRunLock()
	ctx := context.Background()

	// 同一个key在持有锁的上下文里可以重入
	err := lock.NonBlockingSynchronized(ctx, "reentrant_key", time.Minute, func(ctx context.Context) error {
		return lock.NonBlockingSynchronized(ctx, "reentrant_key", time.Minute, func(ctx context.Context) error {
			return nil
		})
	})
	if err != nil {
		t.Fatalf("reentrant lock failed: %v", err)
	}
}

func TestLocalRunLock_Conflict(t *testing.T) {
	lock := NewLocalRunLock()
	ctx := context.Background()

	started := make(chan struct{})
	release := make(chan struct{})
	done := make(chan error, 1)

	go func() {
		done <- lock.NonBlockingSynchronized(ctx, "conflict_key", time.Minute, func(ctx context.Context) error {
			close(started)
			<-release
			return nil
		})
	}()

	<-started
	// 另一个goroutine拿同一把锁,立刻失败
	err := lock.NonBlockingSynchronized(ctx, "conflict_key", time.Minute, func(ctx context.Context) error {
		return nil
	})
	if !errors.Is(errors.Cause(err), LockFailedError) {
		t.Errorf("Expected LockFailedError, got %v", err)
	}

	close(release)
	if err := <-done; err != nil {
		t.Fatalf("first holder failed: %v", err)
	}

	// 释放后可以再次上锁
	err = lock.NonBlockingSynchronized(ctx, "conflict_key", time.Minute, func(ctx context.Context) error {
		return nil
	})
	if err != nil {
		t.Fatalf("lock after release failed: %v", err)
	}
}
