package main

import (
	"context"
	"errors"
	"io"
	"sync/atomic"
	"testing"
	"time"

	"github.com/remiges-tech/logharbour/logharbour"

	"github.com/jung/hannum/internal/scheduler"
)

func TestWaitDone(t *testing.T) {
	done := make(chan struct{})
	close(done)
	if err := waitDone(context.Background(), done); err != nil {
		t.Errorf("waitDone() on closed channel = %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	if err := waitDone(ctx, make(chan struct{})); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("waitDone() past deadline = %v", err)
	}
}

func TestShutdownWaitsForBatch(t *testing.T) {
	logger := logharbour.NewLogger(logharbour.NewLoggerContext(logharbour.Info), "hannumd-test", io.Discard)
	ctx, cancel := context.WithCancel(context.Background())

	started := make(chan struct{})
	var finished atomic.Bool
	sched := scheduler.New(time.Hour, func(ctx context.Context) error {
		close(started)
		<-ctx.Done()
		time.Sleep(20 * time.Millisecond)
		finished.Store(true)
		return nil
	}, logger)

	schedDone := make(chan struct{})
	go func() {
		defer close(schedDone)
		sched.Run(ctx)
	}()

	<-started
	cancel()

	shutdownCtx, stop := context.WithTimeout(context.Background(), 5*time.Second)
	defer stop()
	if err := waitDone(shutdownCtx, schedDone); err != nil {
		t.Fatalf("waitDone() = %v", err)
	}
	if !finished.Load() {
		t.Error("shutdown returned before the batch finished")
	}
}
