// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-gambit/models"
)

func TestCreateCustomerQuery(t *testing.T) {
	query, args, err := createCustomerQuery("abc")
	require.NoError(t, err)
	assert.Equal(t, "INSERT INTO customers (app_user_id) VALUES ($1) RETURNING customer_id, app_user_id, created_at", query)
	assert.Equal(t, []any{"abc"}, args)
}

func TestFindCustomerQuery(t *testing.T) {
	query, args, err := findCustomerByAppUserIDQuery("abc")
	require.NoError(t, err)
	assert.Equal(t, "SELECT customer_id, app_user_id, created_at FROM customers WHERE app_user_id = $1", query)
	assert.Equal(t, []any{"abc"}, args)
}

func TestDeleteCustomerQuery(t *testing.T) {
	query, args, err := deleteCustomerQuery(7)
	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM customers WHERE customer_id = $1", query)
	assert.Equal(t, []any{int64(7)}, args)
}

func TestGetActiveGrantsQuery(t *testing.T) {
	now := time.Now()
	query, args, err := getActiveGrantsQuery(3, now)
	require.NoError(t, err)
	assert.Equal(t,
		"SELECT customer_id, entitlement, package_id, granted_at, expires_at FROM grants WHERE customer_id = $1 AND (expires_at IS NULL OR expires_at > $2) ORDER BY entitlement ASC",
		query)
	assert.Equal(t, []any{int64(3), now}, args)
}

func TestUpsertGrantQuery(t *testing.T) {
	now := time.Now()
	query, args, err := upsertGrantQuery(models.Grant{CustomerID: 1, Entitlement: "pro", PackageID: 2, GrantedAt: now}, models.PeriodAnnual)
	require.NoError(t, err)
	assert.Contains(t, query, "INSERT INTO grants (customer_id,entitlement,package_id,granted_at,expires_at) VALUES ($1,$2,$3,$4,$5)")
	assert.Contains(t, query, "ON CONFLICT (customer_id, entitlement) DO UPDATE")
	assert.Contains(t, query, "CAST($6 AS interval)")
	require.Len(t, args, 6)
	assert.Equal(t, "1 year", args[5])
}

func TestPeriodInterval(t *testing.T) {
	assert.Equal(t, "1 month", periodInterval(models.PeriodMonthly))
	assert.Equal(t, "1 year", periodInterval(models.PeriodAnnual))
	assert.Equal(t, "0", periodInterval(models.PeriodLifetime))
}

func TestGetPackagesQuery(t *testing.T) {
	query, args, err := getPackagesQuery()
	require.NoError(t, err)
	assert.Equal(t, "SELECT package_id, identifier, title, price_micros, currency, period, entitlement FROM packages ORDER BY price_micros ASC, package_id ASC", query)
	assert.Empty(t, args)
}
