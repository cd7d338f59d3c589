// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-gambit/models"
)

var (
	customerColumns = []string{"customer_id", "app_user_id", "created_at"}
	packageColumns  = []string{"package_id", "identifier", "title", "price_micros", "currency", "period", "entitlement"}
	grantColumns    = []string{"customer_id", "entitlement", "package_id", "granted_at", "expires_at"}
)

func createCustomerQuery(appUserID string) (string, []any, error) {
	return psql.Insert(models.Customer{}.TableName()).
		Columns("app_user_id").
		Values(appUserID).
		Suffix("RETURNING customer_id, app_user_id, created_at").
		ToSql()
}

func findCustomerByAppUserIDQuery(appUserID string) (string, []any, error) {
	return psql.Select(customerColumns...).
		From(models.Customer{}.TableName()).
		Where(sq.Eq{"app_user_id": appUserID}).
		ToSql()
}

func deleteCustomerQuery(customerID int64) (string, []any, error) {
	return psql.Delete(models.Customer{}.TableName()).
		Where(sq.Eq{"customer_id": customerID}).
		ToSql()
}

func getPackagesQuery() (string, []any, error) {
	return psql.Select(packageColumns...).
		From(models.Package{}.TableName()).
		OrderBy("price_micros ASC", "package_id ASC").
		ToSql()
}

func getPackageQuery(packageID int64) (string, []any, error) {
	return psql.Select(packageColumns...).
		From(models.Package{}.TableName()).
		Where(sq.Eq{"package_id": packageID}).
		ToSql()
}

// upsertGrantQuery inserts g or stacks period onto the stored grant. The
// conflicting row is locked by ON CONFLICT, so concurrent purchases of the
// same entitlement each add their full period.
func upsertGrantQuery(g models.Grant, period models.Period) (string, []any, error) {
	return psql.Insert(models.Grant{}.TableName()).
		Columns(grantColumns...).
		Values(g.CustomerID, g.Entitlement, g.PackageID, g.GrantedAt, g.ExpiresAt).
		Suffix(`ON CONFLICT (customer_id, entitlement) DO UPDATE SET
			package_id = CASE WHEN grants.expires_at IS NULL THEN grants.package_id ELSE EXCLUDED.package_id END,
			granted_at = CASE WHEN grants.expires_at IS NULL THEN grants.granted_at ELSE EXCLUDED.granted_at END,
			expires_at = CASE
				WHEN grants.expires_at IS NULL OR EXCLUDED.expires_at IS NULL THEN NULL
				ELSE GREATEST(grants.expires_at, EXCLUDED.granted_at) + CAST(? AS interval)
			END
			RETURNING customer_id, entitlement, package_id, granted_at, expires_at`, periodInterval(period)).
		ToSql()
}

// periodInterval is the PostgreSQL interval of a billing period. Lifetime
// never reaches the interval branch.
func periodInterval(p models.Period) string {
	switch p {
	case models.PeriodMonthly:
		return "1 month"
	case models.PeriodAnnual:
		return "1 year"
	default:
		return "0"
	}
}

func getActiveGrantsQuery(customerID int64, now time.Time) (string, []any, error) {
	return psql.Select(grantColumns...).
		From(models.Grant{}.TableName()).
		Where(sq.Eq{"customer_id": customerID}).
		Where(sq.Or{sq.Eq{"expires_at": nil}, sq.Gt{"expires_at": now}}).
		OrderBy("entitlement ASC").
		ToSql()
}
