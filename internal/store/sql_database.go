// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"

	"github.com/MKhiriev/go-gambit/internal/logger"
)

// DB is a database handle shared by the repositories of one backend.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	migrate            func(ctx context.Context, db *sql.DB) error
	logger             *logger.Logger
}

// ErrorClassificator decides whether a driver error is worth retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// Migrate applies the schema of the backend the handle was opened for.
func (db *DB) Migrate(ctx context.Context) error {
	if db.migrate == nil {
		return nil
	}
	return db.migrate(ctx, db.DB)
}

// retryable reports whether err is classified as transient.
func (db *DB) retryable(err error) bool {
	if db.errorClassificator == nil {
		return false
	}
	return db.errorClassificator.Classify(err) == Retryable
}
