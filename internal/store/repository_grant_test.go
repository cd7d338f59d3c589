// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-gambit/internal/logger"
	"github.com/MKhiriev/go-gambit/models"
)

func TestUpsertGrant(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewGrantRepository(db, logger.Nop())
	now := time.Now()
	exp := now.AddDate(0, 1, 0)

	grant := models.Grant{CustomerID: 1, Entitlement: "pro", PackageID: 2, GrantedAt: now, ExpiresAt: &exp}
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO grants")).
		WithArgs(int64(1), "pro", int64(2), now, &exp, "1 month").
		WillReturnRows(sqlmock.NewRows(grantColumns).AddRow(int64(1), "pro", int64(2), now, exp))

	saved, err := repo.UpsertGrant(context.Background(), grant, models.PeriodMonthly)
	require.NoError(t, err)
	require.NotNil(t, saved.ExpiresAt)
	assert.Equal(t, exp, *saved.ExpiresAt)
}

func TestUpsertGrant_Error(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewGrantRepository(db, logger.Nop())

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO grants")).WillReturnError(errors.New("fk violation"))

	_, err := repo.UpsertGrant(context.Background(), models.Grant{CustomerID: 1, Entitlement: "pro"}, models.PeriodMonthly)
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestGetActiveGrants_NullExpiryIsLifetime(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewGrantRepository(db, logger.Nop())
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("WHERE customer_id = $1 AND (expires_at IS NULL OR expires_at > $2)")).
		WithArgs(int64(1), now).
		WillReturnRows(sqlmock.NewRows(grantColumns).AddRow(int64(1), "pro", int64(3), now, nil))

	grants, err := repo.GetActiveGrants(context.Background(), 1, now)
	require.NoError(t, err)
	require.Len(t, grants, 1)
	assert.Nil(t, grants[0].ExpiresAt)
}

func TestUpsertGrant_StacksOnRunningGrant(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewGrantRepository(db, logger.Nop())
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	requested := now.AddDate(1, 0, 0)
	// the stored grant still runs for ten days, so the database adds the year to that
	stacked := now.AddDate(0, 0, 10).AddDate(1, 0, 0)

	grant := models.Grant{CustomerID: 1, Entitlement: "pro", PackageID: 2, GrantedAt: now, ExpiresAt: &requested}
	mock.ExpectQuery(regexp.QuoteMeta("GREATEST(grants.expires_at, EXCLUDED.granted_at) + CAST($6 AS interval)")).
		WithArgs(int64(1), "pro", int64(2), now, &requested, "1 year").
		WillReturnRows(sqlmock.NewRows(grantColumns).AddRow(int64(1), "pro", int64(2), now, stacked))

	saved, err := repo.UpsertGrant(context.Background(), grant, models.PeriodAnnual)
	require.NoError(t, err)
	require.NotNil(t, saved.ExpiresAt)
	assert.Equal(t, stacked, *saved.ExpiresAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertGrant_KeepsLifetime(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewGrantRepository(db, logger.Nop())
	now := time.Now()
	requested := now.AddDate(0, 1, 0)
	owned := now.AddDate(-1, 0, 0)

	grant := models.Grant{CustomerID: 1, Entitlement: "pro", PackageID: 1, GrantedAt: now, ExpiresAt: &requested}
	mock.ExpectQuery(regexp.QuoteMeta("WHEN grants.expires_at IS NULL OR EXCLUDED.expires_at IS NULL THEN NULL")).
		WithArgs(int64(1), "pro", int64(1), now, &requested, "1 month").
		WillReturnRows(sqlmock.NewRows(grantColumns).AddRow(int64(1), "pro", int64(3), owned, nil))

	saved, err := repo.UpsertGrant(context.Background(), grant, models.PeriodMonthly)
	require.NoError(t, err)
	assert.Nil(t, saved.ExpiresAt)
	assert.Equal(t, int64(3), saved.PackageID)
}
