package scheduler

import (
	"context"
	"errors"
	"io"
	"sync/atomic"
	"testing"
	"time"

	"github.com/remiges-tech/logharbour/logharbour"
)

func testLogger() *logharbour.Logger {
	return logharbour.NewLogger(logharbour.NewLoggerContext(logharbour.Info), "scheduler-test", io.Discard)
}

func TestRunOnce(t *testing.T) {
	var calls atomic.Int64
	s := New(0, func(ctx context.Context) error {
		calls.Add(1)
		return nil
	}, testLogger())

	s.Run(context.Background())

	if calls.Load() != 1 {
		t.Errorf("job ran %d times, want 1", calls.Load())
	}
	stats := s.Stats()
	if stats.RunCount != 1 || stats.IsRunning || stats.LastRunError != "" {
		t.Errorf("unexpected stats %+v", stats)
	}
}

func TestRunRecordsError(t *testing.T) {
	s := New(0, func(ctx context.Context) error {
		return errors.New("input missing")
	}, testLogger())

	s.Run(context.Background())

	if got := s.Stats().LastRunError; got != "input missing" {
		t.Errorf("LastRunError = %q", got)
	}
}

func TestRunPeriodicUntilCancel(t *testing.T) {
	var calls atomic.Int64
	ctx, cancel := context.WithCancel(context.Background())

	s := New(10*time.Millisecond, func(ctx context.Context) error {
		if calls.Add(1) >= 3 {
			cancel()
		}
		return nil
	}, testLogger())

	done := make(chan struct{})
	go func() {
		s.Run(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
	if calls.Load() < 3 {
		t.Errorf("job ran %d times, want at least 3", calls.Load())
	}
}

func TestRunWaitsForInFlightJob(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	started := make(chan struct{})
	var finished atomic.Bool

	s := New(time.Hour, func(ctx context.Context) error {
		close(started)
		<-ctx.Done()
		time.Sleep(20 * time.Millisecond)
		finished.Store(true)
		return ctx.Err()
	}, testLogger())

	done := make(chan struct{})
	go func() {
		s.Run(ctx)
		close(done)
	}()

	<-started
	cancel()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
	if !finished.Load() {
		t.Error("Run returned before the in-flight job finished")
	}
}
