// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/MKhiriev/go-gambit/internal/entitlement"
	"github.com/MKhiriev/go-gambit/internal/logger"
	"github.com/MKhiriev/go-gambit/models"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type funcWorker struct {
	name string
	run  func(ctx context.Context) error
}

func (f funcWorker) Name() string                  { return f.name }
func (f funcWorker) Run(ctx context.Context) error { return f.run(ctx) }

func TestWorkers_StartRunsAllAndWaitBlocks(t *testing.T) {
	var ran atomic.Int32
	blockUntilDone := func(ctx context.Context) error {
		ran.Add(1)
		<-ctx.Done()
		return ctx.Err()
	}
	failing := func(ctx context.Context) error {
		ran.Add(1)
		return errors.New("boom")
	}

	ws := NewWorkers(logger.Nop(),
		funcWorker{"a", blockUntilDone},
		funcWorker{"b", failing},
		funcWorker{"c", blockUntilDone},
	)

	ctx, cancel := context.WithCancel(context.Background())
	ws.Start(ctx)

	require.Eventually(t, func() bool { return ran.Load() == 3 }, time.Second, time.Millisecond)

	cancel()
	ws.Wait()
}

func TestWorkers_Empty(t *testing.T) {
	ws := NewWorkers(logger.Nop())

	ws.Start(context.Background())
	ws.Wait()
}

// fakeListener hands out a fresh channel per Listen call and closes it
// when the test says the stream dropped.
type fakeListener struct {
	mu      sync.Mutex
	streams []chan models.EntitlementSnapshot
	opened  chan chan models.EntitlementSnapshot
}

func newFakeListener() *fakeListener {
	return &fakeListener{opened: make(chan chan models.EntitlementSnapshot, 10)}
}

func (f *fakeListener) Listen(ctx context.Context) <-chan models.EntitlementSnapshot {
	ch := make(chan models.EntitlementSnapshot, 1)
	f.mu.Lock()
	f.streams = append(f.streams, ch)
	f.mu.Unlock()
	f.opened <- ch
	return ch
}

func proSnap() models.EntitlementSnapshot {
	return models.EntitlementSnapshot{
		Entitlements: map[string]models.Entitlement{
			models.ProEntitlement: {Identifier: models.ProEntitlement},
		},
	}
}

func TestStreamWorker_AppliesAndReconnects(t *testing.T) {
	listener := newFakeListener()
	state := entitlement.NewState(models.EntitlementSnapshot{})

	w := NewStreamWorker(listener, state, logger.Nop())
	w.reconnectDelay = time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	first := <-listener.opened
	first <- proSnap()
	require.Eventually(t, func() bool { return state.Current().HasPro(time.Now()) }, time.Second, time.Millisecond)

	close(first)
	second := <-listener.opened
	second <- models.EntitlementSnapshot{}
	require.Eventually(t, func() bool { return !state.Current().HasPro(time.Now()) }, time.Second, time.Millisecond)

	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
}

type spyJob struct {
	mu       sync.Mutex
	started  time.Duration
	stopped  bool
	startedC chan struct{}
}

func (s *spyJob) Start(ctx context.Context, interval time.Duration) {
	s.mu.Lock()
	s.started = interval
	s.mu.Unlock()
	close(s.startedC)
}

func (s *spyJob) Stop() {
	s.mu.Lock()
	s.stopped = true
	s.mu.Unlock()
}

func TestRefreshWorker_StartsAndStopsJob(t *testing.T) {
	job := &spyJob{startedC: make(chan struct{})}
	w := NewRefreshWorker(job, 30*time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	<-job.startedC
	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)

	job.mu.Lock()
	defer job.mu.Unlock()
	assert.Equal(t, 30*time.Second, job.started)
	assert.True(t, job.stopped)
}
