// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-gambit/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// CustomerRepository persists anonymous customers.
type CustomerRepository interface {
	// CreateCustomer inserts a customer; a taken app user ID yields
	// [ErrCustomerAlreadyExists].
	CreateCustomer(ctx context.Context, appUserID string) (models.Customer, error)
	// FindCustomerByAppUserID returns [ErrNoCustomerWasFound] when absent.
	FindCustomerByAppUserID(ctx context.Context, appUserID string) (models.Customer, error)
	// DeleteCustomer removes the customer and, by cascade, their grants.
	DeleteCustomer(ctx context.Context, customerID int64) error
}

// OfferingRepository reads the package catalog.
type OfferingRepository interface {
	GetPackages(ctx context.Context) ([]models.Package, error)
	// GetPackage returns [ErrPackageNotFound] for an unknown ID.
	GetPackage(ctx context.Context, packageID int64) (models.Package, error)
}

// GrantRepository persists entitlement grants.
type GrantRepository interface {
	// UpsertGrant stores grant. When the customer already holds the
	// entitlement, period is stacked onto the later of its expiry and
	// grant.GrantedAt in the same statement. Lifetime grants stay lifetime.
	UpsertGrant(ctx context.Context, grant models.Grant, period models.Period) (models.Grant, error)
	// GetActiveGrants returns grants that are lifetime or expire after now.
	GetActiveGrants(ctx context.Context, customerID int64, now time.Time) ([]models.Grant, error)
}

// HealthChecker reports database reachability.
type HealthChecker interface {
	PingContext(ctx context.Context) error
}
