// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-gambit/internal/logger"
	"github.com/MKhiriev/go-gambit/models"
)

type offeringRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewOfferingRepository(db *DB, logger *logger.Logger) OfferingRepository {
	logger.Debug().Msg("creating offering repository")
	return &offeringRepository{
		db:     db,
		logger: logger,
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPackage(row rowScanner) (models.Package, error) {
	var p models.Package
	err := row.Scan(&p.ID, &p.Identifier, &p.Title, &p.PriceMicros, &p.Currency, &p.Period, &p.Entitlement)
	return p, err
}

func (r *offeringRepository) GetPackages(ctx context.Context) ([]models.Package, error) {
	log := logger.FromContext(ctx)

	query, args, err := getPackagesQuery()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*offeringRepository.GetPackages").Msg("error querying packages")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	packages := make([]models.Package, 0)
	for rows.Next() {
		p, scanErr := scanPackage(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		packages = append(packages, p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return packages, nil
}

func (r *offeringRepository) GetPackage(ctx context.Context, packageID int64) (models.Package, error) {
	query, args, err := getPackageQuery(packageID)
	if err != nil {
		return models.Package{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	p, err := scanPackage(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Package{}, ErrPackageNotFound
		}
		logger.FromContext(ctx).Err(err).Str("func", "*offeringRepository.GetPackage").Int64("package_id", packageID).Msg("error reading package")
		return models.Package{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return p, nil
}
