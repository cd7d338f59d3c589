// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-gambit/internal/validators"
	"github.com/MKhiriev/go-gambit/models"
)

// PurchaseValidationService rejects malformed purchase requests before they
// reach the wrapped service.
type PurchaseValidationService struct {
	inner     PurchaseService
	validator validators.Validator
}

func NewPurchaseValidationService() PurchaseServiceWrapper {
	return &PurchaseValidationService{
		validator: validators.NewRequestValidator(),
	}
}

// Wrap implements PurchaseServiceWrapper.
func (v *PurchaseValidationService) Wrap(inner PurchaseService) PurchaseService {
	v.inner = inner
	return v
}

func (v *PurchaseValidationService) Purchase(ctx context.Context, customerID int64, req models.PurchaseRequest) (models.EntitlementSnapshot, error) {
	if err := v.validateCustomer(ctx, customerID); err != nil {
		return models.EntitlementSnapshot{}, err
	}
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.EntitlementSnapshot{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Purchase(ctx, customerID, req)
}

func (v *PurchaseValidationService) Restore(ctx context.Context, customerID int64) (models.EntitlementSnapshot, error) {
	if err := v.validateCustomer(ctx, customerID); err != nil {
		return models.EntitlementSnapshot{}, err
	}

	return v.inner.Restore(ctx, customerID)
}

func (v *PurchaseValidationService) Entitlements(ctx context.Context, customerID int64) (models.EntitlementSnapshot, error) {
	if err := v.validateCustomer(ctx, customerID); err != nil {
		return models.EntitlementSnapshot{}, err
	}

	return v.inner.Entitlements(ctx, customerID)
}

func (v *PurchaseValidationService) Subscribe(customerID int64) (<-chan models.EntitlementSnapshot, func()) {
	return v.inner.Subscribe(customerID)
}

func (v *PurchaseValidationService) validateCustomer(ctx context.Context, customerID int64) error {
	err := v.validator.Validate(ctx, models.Customer{CustomerID: customerID}, validators.FieldCustomerID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrNoCustomerID, err)
	}
	return nil
}

// CustomerValidationService checks that identify requests carry a UUID app
// user ID.
type CustomerValidationService struct {
	CustomerService
	validator validators.Validator
}

func NewCustomerValidationService(inner CustomerService) CustomerService {
	return &CustomerValidationService{
		CustomerService: inner,
		validator:       validators.NewRequestValidator(),
	}
}

func (v *CustomerValidationService) Identify(ctx context.Context, req models.IdentifyRequest) (models.Customer, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Customer{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.CustomerService.Identify(ctx, req)
}
