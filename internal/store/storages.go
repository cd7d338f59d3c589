// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-gambit/internal/config"
	"github.com/MKhiriev/go-gambit/internal/logger"
)

// Storages groups the server repositories over one PostgreSQL pool.
type Storages struct {
	CustomerRepository CustomerRepository
	OfferingRepository OfferingRepository
	GrantRepository    GrantRepository
	HealthChecker      HealthChecker

	db *DB
}

// NewStorages connects to PostgreSQL, migrates the schema and builds the
// repositories.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectPostgres(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err = db.Migrate(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return newStorages(db, logger), nil
}

func newStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		CustomerRepository: NewCustomerRepository(db, logger),
		OfferingRepository: NewOfferingRepository(db, logger),
		GrantRepository:    NewGrantRepository(db, logger),
		HealthChecker:      db,
		db:                 db,
	}
}

// Close releases the connection pool.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
