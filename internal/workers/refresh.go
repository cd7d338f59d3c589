// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"
)

// RefreshWorker keeps a [Job] running for as long as its context lives.
type RefreshWorker struct {
	job      Job
	interval time.Duration
}

func NewRefreshWorker(job Job, interval time.Duration) *RefreshWorker {
	return &RefreshWorker{job: job, interval: interval}
}

func (r *RefreshWorker) Name() string { return "entitlement-refresh" }

func (r *RefreshWorker) Run(ctx context.Context) error {
	r.job.Start(ctx, r.interval)
	<-ctx.Done()
	r.job.Stop()
	return ctx.Err()
}
