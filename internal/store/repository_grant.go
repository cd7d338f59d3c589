// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/MKhiriev/go-gambit/internal/logger"
	"github.com/MKhiriev/go-gambit/models"
)

type grantRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewGrantRepository(db *DB, logger *logger.Logger) GrantRepository {
	logger.Debug().Msg("creating grant repository")
	return &grantRepository{
		db:     db,
		logger: logger,
	}
}

func scanGrant(row rowScanner) (models.Grant, error) {
	var (
		g         models.Grant
		expiresAt sql.NullTime
	)
	if err := row.Scan(&g.CustomerID, &g.Entitlement, &g.PackageID, &g.GrantedAt, &expiresAt); err != nil {
		return models.Grant{}, err
	}
	if expiresAt.Valid {
		t := expiresAt.Time
		g.ExpiresAt = &t
	}
	return g, nil
}

func (r *grantRepository) UpsertGrant(ctx context.Context, grant models.Grant, period models.Period) (models.Grant, error) {
	query, args, err := upsertGrantQuery(grant, period)
	if err != nil {
		return models.Grant{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	saved, err := scanGrant(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*grantRepository.UpsertGrant").
			Int64("customer_id", grant.CustomerID).
			Bool("retryable", r.db.retryable(err)).
			Msg("error saving grant")
		return models.Grant{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return saved, nil
}

func (r *grantRepository) GetActiveGrants(ctx context.Context, customerID int64, now time.Time) ([]models.Grant, error) {
	query, args, err := getActiveGrantsQuery(customerID, now)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return r.queryGrants(ctx, query, args)
}

func (r *grantRepository) queryGrants(ctx context.Context, query string, args []any) ([]models.Grant, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*grantRepository.queryGrants").Msg("error querying grants")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	grants := make([]models.Grant, 0)
	for rows.Next() {
		g, scanErr := scanGrant(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		grants = append(grants, g)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return grants, nil
}
