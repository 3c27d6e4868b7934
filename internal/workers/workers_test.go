// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/crrd/internal/logger"
)

// mockWorker is a test implementation of the Worker interface
// that tracks how many times Run was called.
type mockWorker struct {
	runCount atomic.Int32
}

func (m *mockWorker) Run(ctx context.Context) {
	m.runCount.Add(1)
	<-ctx.Done()
}

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1 := &mockWorker{}
	w2 := &mockWorker{}
	w3 := &mockWorker{}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	ws := NewWorkers(w1, w2, w3)
	go func() {
		ws.Run(ctx)
		close(done)
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancellation")
	}

	for i, w := range []*mockWorker{w1, w2, w3} {
		if got := w.runCount.Load(); got != 1 {
			t.Errorf("worker[%d]: expected runCount=1, got %d", i, got)
		}
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	ws := &Workers{workers: []Worker{}}

	// Should return immediately on empty workers list
	ws.Run(context.Background())
}

func TestWorkers_Run_Nil(t *testing.T) {
	ws := &Workers{}

	// Should not panic when workers field is nil
	ws.Run(context.Background())
}

// sweeperFunc adapts a function to SessionSweeper.
type sweeperFunc func(ctx context.Context) (int64, error)

func (f sweeperFunc) SweepExpiredSessions(ctx context.Context) (int64, error) {
	return f(ctx)
}

func TestSessionSweeperWorker_SweepsUntilCancelled(t *testing.T) {
	var mu sync.Mutex
	calls := 0
	sweeper := sweeperFunc(func(context.Context) (int64, error) {
		mu.Lock()
		defer mu.Unlock()
		calls++
		return 1, nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	w := NewSessionSweeperWorker(sweeper, 5*time.Millisecond, logger.Nop())
	go func() {
		w.Run(ctx)
		close(done)
	}()

	time.Sleep(40 * time.Millisecond)
	cancel()
	<-done

	mu.Lock()
	defer mu.Unlock()
	if calls == 0 {
		t.Error("expected at least one sweep")
	}
}

func TestSessionSweeperWorker_KeepsRunningAfterError(t *testing.T) {
	var calls atomic.Int32
	sweeper := sweeperFunc(func(context.Context) (int64, error) {
		calls.Add(1)
		return 0, context.DeadlineExceeded
	})

	ctx, cancel := context.WithTimeout(context.Background(), 40*time.Millisecond)
	defer cancel()

	NewSessionSweeperWorker(sweeper, 5*time.Millisecond, logger.Nop()).Run(ctx)

	if calls.Load() < 2 {
		t.Errorf("expected repeated sweeps after errors, got %d", calls.Load())
	}
}
