// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-gambit/internal/app"
	"github.com/MKhiriev/go-gambit/internal/service"
	"github.com/MKhiriev/go-gambit/internal/utils"
	"github.com/MKhiriev/go-gambit/models"
)

func decodeSnapshot(t *testing.T, body string) models.EntitlementSnapshot {
	t.Helper()
	var snap models.EntitlementSnapshot
	require.NoError(t, json.Unmarshal([]byte(body), &snap))
	return snap
}

func TestGetOfferings(t *testing.T) {
	packages := []models.Package{
		{ID: 1, Identifier: "pro_lifetime", Entitlement: models.ProEntitlement, PriceMicros: 4_990_000, Currency: "USD", Period: models.PeriodLifetime},
	}

	t.Run("catalog", func(t *testing.T) {
		f := newFixture(t, "")
		f.expectAuth()
		f.offerings.EXPECT().GetOfferings(gomock.Any()).Return(packages, nil)

		rr := f.serve(authed(httptest.NewRequest(http.MethodGet, "/api/offerings", nil)))

		require.Equal(t, http.StatusOK, rr.Code)
		var got []models.Package
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
		if diff := cmp.Diff(packages, got); diff != "" {
			t.Errorf("offerings mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("storage error", func(t *testing.T) {
		f := newFixture(t, "")
		f.expectAuth()
		f.offerings.EXPECT().GetOfferings(gomock.Any()).Return(nil, errors.New("boom"))

		rr := f.serve(authed(httptest.NewRequest(http.MethodGet, "/api/offerings", nil)))

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}

func TestPurchase(t *testing.T) {
	body := `{"package_id":1}`

	tests := []struct {
		name       string
		hashKey    string
		signature  func() string
		setup      func(f *handlerFixture)
		wantStatus int
		wantBody   string
	}{
		{
			name: "unsigned purchase when no key is configured",
			setup: func(f *handlerFixture) {
				f.purchases.EXPECT().
					Purchase(gomock.Any(), testCustomerID, models.PurchaseRequest{PackageID: 1}).
					Return(proSnapshot(), nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:      "signed purchase",
			hashKey:   testHashKey,
			signature: func() string { return utils.HashString(body, testHashKey) },
			setup: func(f *handlerFixture) {
				f.purchases.EXPECT().
					Purchase(gomock.Any(), testCustomerID, models.PurchaseRequest{PackageID: 1}).
					Return(proSnapshot(), nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "signature from another key",
			hashKey:    testHashKey,
			signature:  func() string { return utils.HashString(body, "other-key") },
			setup:      func(f *handlerFixture) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   app.MsgHashMismatch,
		},
		{
			name:       "missing signature",
			hashKey:    testHashKey,
			setup:      func(f *handlerFixture) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   app.MsgHashMismatch,
		},
		{
			name: "unknown package",
			setup: func(f *handlerFixture) {
				f.purchases.EXPECT().
					Purchase(gomock.Any(), testCustomerID, gomock.Any()).
					Return(models.EntitlementSnapshot{}, fmt.Errorf("%w: id 1", service.ErrPackageNotFound))
			},
			wantStatus: http.StatusNotFound,
			wantBody:   app.MsgPackageNotFound,
		},
		{
			name: "invalid package id",
			setup: func(f *handlerFixture) {
				f.purchases.EXPECT().
					Purchase(gomock.Any(), testCustomerID, gomock.Any()).
					Return(models.EntitlementSnapshot{}, service.ErrInvalidDataProvided)
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   app.MsgInvalidDataProvided,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, tt.hashKey)
			f.expectAuth()
			tt.setup(f)

			req := authed(httptest.NewRequest(http.MethodPost, "/api/purchases", strings.NewReader(body)))
			if tt.signature != nil {
				req.Header.Set(utils.HashHeader, tt.signature())
			}
			rr := f.serve(req)

			require.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantStatus == http.StatusOK {
				snap := decodeSnapshot(t, rr.Body.String())
				assert.True(t, snap.IsActive(models.ProEntitlement, snap.FetchedAt))
				return
			}
			assert.Equal(t, tt.wantBody, strings.TrimSpace(rr.Body.String()))
		})
	}
}

func TestPurchase_MalformedJSON(t *testing.T) {
	f := newFixture(t, "")
	rr := httptest.NewRecorder()

	req := withCustomer(httptest.NewRequest(http.MethodPost, "/api/purchases", strings.NewReader("{")))
	f.handler.purchase(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, app.MsgInvalidDataProvided, strings.TrimSpace(rr.Body.String()))
}

func TestRestore(t *testing.T) {
	f := newFixture(t, "")
	f.expectAuth()
	f.purchases.EXPECT().Restore(gomock.Any(), testCustomerID).Return(proSnapshot(), nil)

	rr := f.serve(authed(httptest.NewRequest(http.MethodPost, "/api/purchases/restore", nil)))

	require.Equal(t, http.StatusOK, rr.Code)
	if diff := cmp.Diff(proSnapshot(), decodeSnapshot(t, rr.Body.String())); diff != "" {
		t.Errorf("snapshot mismatch (-want +got):\n%s", diff)
	}
}

func TestGetEntitlements(t *testing.T) {
	tests := []struct {
		name       string
		snap       models.EntitlementSnapshot
		err        error
		wantStatus int
	}{
		{name: "active pro", snap: proSnapshot(), wantStatus: http.StatusOK},
		{name: "customer deleted meanwhile", err: service.ErrCustomerNotFound, wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, "")
			f.expectAuth()
			f.purchases.EXPECT().Entitlements(gomock.Any(), testCustomerID).Return(tt.snap, tt.err)

			rr := f.serve(authed(httptest.NewRequest(http.MethodGet, "/api/entitlements", nil)))

			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}
