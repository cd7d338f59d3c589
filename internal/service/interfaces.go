// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-gambit/models"
)

//go:generate mockgen -destination=../mock/service_mock.go -package=mock github.com/MKhiriev/go-gambit/internal/service CustomerService,OfferingService,PurchaseService,AppInfoService

// CustomerService identifies anonymous customers and issues their tokens.
type CustomerService interface {
	// Identify returns the customer for req.AppUserID, creating it on first
	// contact.
	Identify(ctx context.Context, req models.IdentifyRequest) (models.Customer, error)
	CreateToken(ctx context.Context, customer models.Customer) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
	DeleteCustomer(ctx context.Context, customerID int64) error
}

type OfferingService interface {
	GetOfferings(ctx context.Context) ([]models.Package, error)
}

// PurchaseService grants entitlements and publishes every change to the
// customer's stream subscribers.
type PurchaseService interface {
	Purchase(ctx context.Context, customerID int64, req models.PurchaseRequest) (models.EntitlementSnapshot, error)
	Restore(ctx context.Context, customerID int64) (models.EntitlementSnapshot, error)
	Entitlements(ctx context.Context, customerID int64) (models.EntitlementSnapshot, error)

	// Subscribe registers a stream listener; the returned func unregisters it.
	Subscribe(customerID int64) (<-chan models.EntitlementSnapshot, func())
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	// CheckHealth reports whether the database answers pings.
	CheckHealth(ctx context.Context) error
}

// PurchaseServiceWrapper decorates a PurchaseService, e.g. with request
// validation.
type PurchaseServiceWrapper interface {
	Wrap(PurchaseService) PurchaseService
}
