// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-gambit/internal/mock"
	"github.com/MKhiriev/go-gambit/internal/validators"
	"github.com/MKhiriev/go-gambit/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestPurchaseValidationService_Purchase(t *testing.T) {
	tests := []struct {
		name       string
		customerID int64
		packageID  int64
		wantErr    error
	}{
		{name: "valid", customerID: 1, packageID: 2},
		{name: "zero package", customerID: 1, packageID: 0, wantErr: validators.ErrInvalidPackageID},
		{name: "negative package", customerID: 1, packageID: -4, wantErr: ErrInvalidDataProvided},
		{name: "no customer", customerID: 0, packageID: 2, wantErr: ErrNoCustomerID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			inner := mock.NewMockPurchaseService(ctrl)
			svc := NewPurchaseValidationService().Wrap(inner)

			req := models.PurchaseRequest{PackageID: tt.packageID}
			if tt.wantErr == nil {
				inner.EXPECT().Purchase(gomock.Any(), tt.customerID, req).Return(models.EntitlementSnapshot{}, nil)
			}

			_, err := svc.Purchase(context.Background(), tt.customerID, req)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestPurchaseValidationService_DelegatesReads(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := mock.NewMockPurchaseService(ctrl)
	svc := NewPurchaseValidationService().Wrap(inner)
	ctx := context.Background()

	ch := make(chan models.EntitlementSnapshot)
	inner.EXPECT().Restore(ctx, int64(3)).Return(models.EntitlementSnapshot{}, nil)
	inner.EXPECT().Entitlements(ctx, int64(3)).Return(models.EntitlementSnapshot{}, nil)
	inner.EXPECT().Subscribe(int64(3)).Return((<-chan models.EntitlementSnapshot)(ch), func() {})

	_, err := svc.Restore(ctx, 3)
	require.NoError(t, err)
	_, err = svc.Entitlements(ctx, 3)
	require.NoError(t, err)

	got, cancel := svc.Subscribe(3)
	cancel()
	assert.NotNil(t, got)

	_, err = svc.Restore(ctx, 0)
	assert.ErrorIs(t, err, ErrNoCustomerID)
}

func TestCustomerValidationService_Identify(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := mock.NewMockCustomerService(ctrl)
	svc := NewCustomerValidationService(inner)
	ctx := context.Background()

	inner.EXPECT().Identify(ctx, models.IdentifyRequest{AppUserID: testAppUserID}).
		Return(models.Customer{CustomerID: 1, AppUserID: testAppUserID}, nil)

	_, err := svc.Identify(ctx, models.IdentifyRequest{AppUserID: testAppUserID})
	require.NoError(t, err)

	_, err = svc.Identify(ctx, models.IdentifyRequest{AppUserID: "player-one"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
	assert.ErrorIs(t, err, validators.ErrInvalidAppUserID)
}

func TestCustomerValidationService_PassesThroughTokens(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := mock.NewMockCustomerService(ctrl)
	svc := NewCustomerValidationService(inner)

	inner.EXPECT().ParseToken(gomock.Any(), "tok").Return(models.Token{CustomerID: 4}, nil)

	token, err := svc.ParseToken(context.Background(), "tok")
	require.NoError(t, err)
	assert.Equal(t, int64(4), token.CustomerID)
}
