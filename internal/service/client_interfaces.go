// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-gambit/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientPurchaseService is the game client's entry point to in-app
// purchases. Every call except Listen is a single round trip; failures are
// returned to the caller and never retried in the background.
type ClientPurchaseService interface {
	// Initialize loads the device's anonymous app user ID, creating and
	// storing one on first launch, and identifies it with the server.
	// When the server cannot be reached the cached token is kept so a later
	// call can still succeed.
	Initialize(ctx context.Context) error

	// Offerings lists the packages available for purchase.
	Offerings(ctx context.Context) ([]models.Package, error)

	// Purchase buys pkg. When confirmed is false nothing is sent and
	// ErrPurchaseCancelled is returned.
	Purchase(ctx context.Context, pkg models.Package, confirmed bool) (models.EntitlementSnapshot, error)

	// Restore re-fetches everything the customer owns.
	Restore(ctx context.Context) (models.EntitlementSnapshot, error)

	// Entitlements fetches the current snapshot.
	Entitlements(ctx context.Context) (models.EntitlementSnapshot, error)

	// Listen streams entitlement changes pushed by the server. The channel
	// is closed when ctx is cancelled or the stream ends.
	Listen(ctx context.Context) <-chan models.EntitlementSnapshot

	// DeleteAccount deletes the customer on the server and then wipes the
	// device identity, so the next Initialize starts a fresh customer.
	DeleteAccount(ctx context.Context) error
}

// ClientRefreshJob periodically pulls entitlements to cover pushes missed
// while the stream was down.
type ClientRefreshJob interface {
	// Start stops any running job and begins polling every interval.
	Start(ctx context.Context, interval time.Duration)

	// Stop cancels the job and blocks until it has exited.
	Stop()
}

// SnapshotApplier receives fresh snapshots. *entitlement.State implements it.
type SnapshotApplier interface {
	Apply(snap models.EntitlementSnapshot)
}

// IDGenerator creates anonymous app user IDs.
type IDGenerator interface {
	Generate() string
}
