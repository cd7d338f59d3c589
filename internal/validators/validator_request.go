// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"slices"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-gambit/models"
)

const (
	FieldAppUserID  = "app_user_id"
	FieldPackageID  = "package_id"
	FieldCustomerID = "customer_id"
)

// RequestValidator validates purchase-server requests.
type RequestValidator struct{}

func NewRequestValidator() Validator {
	return &RequestValidator{}
}

func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.IdentifyRequest:
		return v.validateIdentify(value, fields...)
	case *models.IdentifyRequest:
		return v.validateIdentify(*value, fields...)

	case models.PurchaseRequest:
		return v.validatePurchase(value, fields...)
	case *models.PurchaseRequest:
		return v.validatePurchase(*value, fields...)

	case models.Customer:
		return v.validateCustomer(value, fields...)

	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

func (v *RequestValidator) validateIdentify(req models.IdentifyRequest, fields ...string) error {
	return validateFields(fields, []string{FieldAppUserID}, func(field string) error {
		return validateAppUserID(req.AppUserID)
	})
}

func (v *RequestValidator) validatePurchase(req models.PurchaseRequest, fields ...string) error {
	return validateFields(fields, []string{FieldPackageID}, func(field string) error {
		if req.PackageID <= 0 {
			return ErrInvalidPackageID
		}
		return nil
	})
}

func (v *RequestValidator) validateCustomer(c models.Customer, fields ...string) error {
	return validateFields(fields, []string{FieldCustomerID, FieldAppUserID}, func(field string) error {
		switch field {
		case FieldCustomerID:
			if c.CustomerID <= 0 {
				return ErrInvalidCustomerID
			}
		case FieldAppUserID:
			return validateAppUserID(c.AppUserID)
		}
		return nil
	})
}

func validateAppUserID(id string) error {
	if err := uuid.Validate(id); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAppUserID, err)
	}
	return nil
}

// validateFields runs check for every requested field, or for all known
// fields when none are requested.
func validateFields(requested, known []string, check func(field string) error) error {
	if len(requested) == 0 {
		requested = known
	}
	for _, f := range requested {
		if !slices.Contains(known, f) {
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
		if err := check(f); err != nil {
			return err
		}
	}
	return nil
}
