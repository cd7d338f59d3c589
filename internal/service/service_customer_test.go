// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-gambit/internal/config"
	"github.com/MKhiriev/go-gambit/internal/logger"
	"github.com/MKhiriev/go-gambit/internal/mock"
	"github.com/MKhiriev/go-gambit/internal/store"
	"github.com/MKhiriev/go-gambit/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testAppUserID = "0190c7a8-5b2e-7c3d-8e4f-a1b2c3d4e5f6"

var testAppCfg = config.App{
	TokenSignKey:  "test-sign-key",
	TokenIssuer:   "go-gambit",
	TokenDuration: time.Hour,
	HashKey:       "test-hash-key",
	Version:       "1.0.0",
}

func newTestCustomerSvc(t *testing.T) (CustomerService, *mock.MockCustomerRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockCustomerRepository(ctrl)
	return NewCustomerService(repo, testAppCfg, logger.Nop()), repo
}

// ── Identify ─────────────────────────────────────────────────────────────────

func TestCustomerService_Identify_Existing(t *testing.T) {
	svc, repo := newTestCustomerSvc(t)
	ctx := context.Background()
	existing := models.Customer{CustomerID: 7, AppUserID: testAppUserID}

	repo.EXPECT().FindCustomerByAppUserID(ctx, testAppUserID).Return(existing, nil)

	got, err := svc.Identify(ctx, models.IdentifyRequest{AppUserID: testAppUserID})
	require.NoError(t, err)
	assert.Equal(t, existing, got)
}

func TestCustomerService_Identify_CreatesOnFirstContact(t *testing.T) {
	svc, repo := newTestCustomerSvc(t)
	ctx := context.Background()
	created := models.Customer{CustomerID: 8, AppUserID: testAppUserID}

	gomock.InOrder(
		repo.EXPECT().FindCustomerByAppUserID(ctx, testAppUserID).Return(models.Customer{}, store.ErrNoCustomerWasFound),
		repo.EXPECT().CreateCustomer(ctx, testAppUserID).Return(created, nil),
	)

	got, err := svc.Identify(ctx, models.IdentifyRequest{AppUserID: testAppUserID})
	require.NoError(t, err)
	assert.Equal(t, int64(8), got.CustomerID)
}

func TestCustomerService_Identify_LostInsertRace(t *testing.T) {
	svc, repo := newTestCustomerSvc(t)
	ctx := context.Background()
	winner := models.Customer{CustomerID: 9, AppUserID: testAppUserID}

	gomock.InOrder(
		repo.EXPECT().FindCustomerByAppUserID(ctx, testAppUserID).Return(models.Customer{}, store.ErrNoCustomerWasFound),
		repo.EXPECT().CreateCustomer(ctx, testAppUserID).Return(models.Customer{}, store.ErrCustomerAlreadyExists),
		repo.EXPECT().FindCustomerByAppUserID(ctx, testAppUserID).Return(winner, nil),
	)

	got, err := svc.Identify(ctx, models.IdentifyRequest{AppUserID: testAppUserID})
	require.NoError(t, err)
	assert.Equal(t, winner, got)
}

func TestCustomerService_Identify_EmptyID(t *testing.T) {
	svc, _ := newTestCustomerSvc(t)

	_, err := svc.Identify(context.Background(), models.IdentifyRequest{})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestCustomerService_Identify_RepositoryFailure(t *testing.T) {
	svc, repo := newTestCustomerSvc(t)
	dbErr := errors.New("connection reset")

	repo.EXPECT().FindCustomerByAppUserID(gomock.Any(), testAppUserID).Return(models.Customer{}, dbErr)

	_, err := svc.Identify(context.Background(), models.IdentifyRequest{AppUserID: testAppUserID})
	assert.ErrorIs(t, err, dbErr)
}

// ── Tokens ───────────────────────────────────────────────────────────────────

func TestCustomerService_TokenRoundTrip(t *testing.T) {
	svc, _ := newTestCustomerSvc(t)
	ctx := context.Background()

	token, err := svc.CreateToken(ctx, models.Customer{CustomerID: 42})
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := svc.ParseToken(ctx, token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, int64(42), parsed.CustomerID)
}

func TestCustomerService_ParseToken_ForeignKey(t *testing.T) {
	svc, _ := newTestCustomerSvc(t)

	other := NewCustomerService(nil, config.App{
		TokenSignKey:  "another-key",
		TokenIssuer:   testAppCfg.TokenIssuer,
		TokenDuration: time.Hour,
	}, logger.Nop())
	token, err := other.CreateToken(context.Background(), models.Customer{CustomerID: 1})
	require.NoError(t, err)

	_, err = svc.ParseToken(context.Background(), token.SignedString)
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestCustomerService_ParseToken_Garbage(t *testing.T) {
	svc, _ := newTestCustomerSvc(t)

	_, err := svc.ParseToken(context.Background(), "not.a.jwt")
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

// ── DeleteCustomer ───────────────────────────────────────────────────────────

func TestCustomerService_DeleteCustomer(t *testing.T) {
	tests := []struct {
		name       string
		customerID int64
		repoErr    error
		callsRepo  bool
		wantErr    error
	}{
		{name: "success", customerID: 3, callsRepo: true},
		{name: "no id", customerID: 0, wantErr: ErrNoCustomerID},
		{name: "not found", customerID: 3, callsRepo: true, repoErr: store.ErrNoCustomerWasFound, wantErr: ErrCustomerNotFound},
		{name: "db failure", customerID: 3, callsRepo: true, repoErr: store.ErrExecutingQuery, wantErr: store.ErrExecutingQuery},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newTestCustomerSvc(t)
			if tt.callsRepo {
				repo.EXPECT().DeleteCustomer(gomock.Any(), tt.customerID).Return(tt.repoErr)
			}

			err := svc.DeleteCustomer(context.Background(), tt.customerID)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
