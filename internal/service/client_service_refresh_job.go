// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-gambit/internal/logger"
)

// DefaultRefreshInterval is used when Start gets a non-positive interval.
const DefaultRefreshInterval = time.Minute

type clientRefreshJob struct {
	purchases ClientPurchaseService
	applier   SnapshotApplier

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup

	logger *logger.Logger
}

// NewClientRefreshJob creates a job that pulls Entitlements on a ticker and
// hands every result to applier. The job is idle until Start is called.
func NewClientRefreshJob(purchases ClientPurchaseService, applier SnapshotApplier, logger *logger.Logger) ClientRefreshJob {
	return &clientRefreshJob{purchases: purchases, applier: applier, logger: logger}
}

// Start implements ClientRefreshJob. Failed refreshes are logged and the
// previous snapshot stays in effect.
func (j *clientRefreshJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultRefreshInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				snap, err := j.purchases.Entitlements(jobCtx)
				if err != nil {
					j.logger.Warn().Err(err).Msg("entitlement refresh failed")
					continue
				}
				j.applier.Apply(snap)
			}
		}
	}()
}

// Stop implements ClientRefreshJob. Safe to call when the job is not running.
func (j *clientRefreshJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
