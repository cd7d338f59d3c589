// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs the client's background jobs for the lifetime of a
// context: the entitlement stream pump and the periodic refresher.
package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-gambit/models"
)

// Worker blocks in Run until ctx is done or its work is finished.
type Worker interface {
	Name() string
	Run(ctx context.Context) error
}

// Listener opens the push notification stream. The channel is closed when
// the stream ends.
type Listener interface {
	Listen(ctx context.Context) <-chan models.EntitlementSnapshot
}

// Pump consumes a notification stream until it is closed or ctx is done.
type Pump interface {
	Run(ctx context.Context, updates <-chan models.EntitlementSnapshot) error
}

// Job is a start/stop background job such as the entitlement refresher.
type Job interface {
	Start(ctx context.Context, interval time.Duration)
	Stop()
}
