// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-gambit/internal/logger"
	"github.com/MKhiriev/go-gambit/internal/store"
	"github.com/MKhiriev/go-gambit/models"
)

// Notifier fans entitlement snapshots out to stream subscribers.
// *notify.Hub implements it.
type Notifier interface {
	Subscribe(customerID int64) (<-chan models.EntitlementSnapshot, func())
	Publish(customerID int64, snap models.EntitlementSnapshot) int
}

type purchaseService struct {
	offeringRepository store.OfferingRepository
	grantRepository    store.GrantRepository
	notifier           Notifier

	now func() time.Time

	logger *logger.Logger
}

// NewPurchaseService wires the catalog and grant repositories with the
// notifier that feeds /api/entitlements/stream.
func NewPurchaseService(offeringRepository store.OfferingRepository, grantRepository store.GrantRepository, notifier Notifier, logger *logger.Logger) PurchaseService {
	return &purchaseService{
		offeringRepository: offeringRepository,
		grantRepository:    grantRepository,
		notifier:           notifier,
		now:                time.Now,
		logger:             logger,
	}
}

// Purchase grants the package's entitlement to the customer.
//
// A subscription bought while the previous one is still running is stacked on
// top of the remaining time. A lifetime grant is never replaced by a
// time-limited one. Both rules are applied by the repository in one
// statement, so concurrent purchases cannot overwrite each other.
func (p *purchaseService) Purchase(ctx context.Context, customerID int64, req models.PurchaseRequest) (models.EntitlementSnapshot, error) {
	log := logger.FromContext(ctx)

	if customerID <= 0 {
		return models.EntitlementSnapshot{}, ErrNoCustomerID
	}

	pkg, err := p.offeringRepository.GetPackage(ctx, req.PackageID)
	if errors.Is(err, store.ErrPackageNotFound) {
		return models.EntitlementSnapshot{}, fmt.Errorf("%w: %d", ErrPackageNotFound, req.PackageID)
	}
	if err != nil {
		return models.EntitlementSnapshot{}, fmt.Errorf("package lookup failed: %w", err)
	}

	now := p.now()
	grant := models.Grant{
		CustomerID:  customerID,
		Entitlement: pkg.Entitlement,
		PackageID:   pkg.ID,
		GrantedAt:   now,
		ExpiresAt:   pkg.Period.ExpiresAt(now),
	}

	saved, err := p.grantRepository.UpsertGrant(ctx, grant, pkg.Period)
	if err != nil {
		log.Err(err).Int64("customer_id", customerID).Msg("grant upsert failed")
		return models.EntitlementSnapshot{}, fmt.Errorf("grant upsert failed: %w", err)
	}

	if saved.ExpiresAt == nil && pkg.Period != models.PeriodLifetime {
		log.Info().
			Int64("customer_id", customerID).
			Str("package", pkg.Identifier).
			Msg("customer already owns a lifetime grant, keeping it")
	} else {
		log.Info().
			Int64("customer_id", customerID).
			Str("package", pkg.Identifier).
			Str("entitlement", pkg.Entitlement).
			Msg("entitlement granted")
	}

	return p.publish(ctx, customerID, now)
}

// Restore re-reads the customer's grants and pushes them to every open
// stream, so other devices of the same customer catch up too.
func (p *purchaseService) Restore(ctx context.Context, customerID int64) (models.EntitlementSnapshot, error) {
	if customerID <= 0 {
		return models.EntitlementSnapshot{}, ErrNoCustomerID
	}

	return p.publish(ctx, customerID, p.now())
}

func (p *purchaseService) Entitlements(ctx context.Context, customerID int64) (models.EntitlementSnapshot, error) {
	if customerID <= 0 {
		return models.EntitlementSnapshot{}, ErrNoCustomerID
	}

	return p.snapshot(ctx, customerID, p.now())
}

func (p *purchaseService) Subscribe(customerID int64) (<-chan models.EntitlementSnapshot, func()) {
	return p.notifier.Subscribe(customerID)
}

func (p *purchaseService) publish(ctx context.Context, customerID int64, now time.Time) (models.EntitlementSnapshot, error) {
	snap, err := p.snapshot(ctx, customerID, now)
	if err != nil {
		return models.EntitlementSnapshot{}, err
	}

	delivered := p.notifier.Publish(customerID, snap)
	logger.FromContext(ctx).Debug().
		Int64("customer_id", customerID).
		Int("delivered", delivered).
		Msg("entitlement snapshot published")

	return snap, nil
}

func (p *purchaseService) snapshot(ctx context.Context, customerID int64, now time.Time) (models.EntitlementSnapshot, error) {
	grants, err := p.grantRepository.GetActiveGrants(ctx, customerID, now)
	if err != nil {
		return models.EntitlementSnapshot{}, fmt.Errorf("active grant lookup failed: %w", err)
	}

	return models.SnapshotFromGrants(grants, now), nil
}
