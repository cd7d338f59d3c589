// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-gambit/internal/logger"
)

func newMockDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		_ = sqlDB.Close()
	})
	return &DB{DB: sqlDB, logger: logger.Nop(), errorClassificator: NewPostgresErrorClassifier()}, mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

const appUserID = "0192f3a4-5b6c-7d8e-9f00-112233445566"

// ── CreateCustomer ────────────────────────────────────────────────────────────

func TestCreateCustomer_Success(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCustomerRepository(db, logger.Nop())
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO customers (app_user_id)")).
		WithArgs(appUserID).
		WillReturnRows(sqlmock.NewRows(customerColumns).AddRow(int64(1), appUserID, now))

	c, err := repo.CreateCustomer(context.Background(), appUserID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), c.CustomerID)
	assert.Equal(t, appUserID, c.AppUserID)
	assert.Equal(t, now, c.CreatedAt)
}

func TestCreateCustomer_UniqueViolation(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCustomerRepository(db, logger.Nop())

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO customers")).
		WithArgs(appUserID).
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateCustomer(context.Background(), appUserID)
	assert.ErrorIs(t, err, ErrCustomerAlreadyExists)
}

func TestCreateCustomer_OtherError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCustomerRepository(db, logger.Nop())

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO customers")).
		WillReturnError(errors.New("boom"))

	_, err := repo.CreateCustomer(context.Background(), appUserID)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrCustomerAlreadyExists)
}

// ── FindCustomerByAppUserID ───────────────────────────────────────────────────

func TestFindCustomer_Success(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCustomerRepository(db, logger.Nop())

	mock.ExpectQuery(regexp.QuoteMeta("SELECT customer_id, app_user_id, created_at FROM customers WHERE app_user_id = $1")).
		WithArgs(appUserID).
		WillReturnRows(sqlmock.NewRows(customerColumns).AddRow(int64(5), appUserID, time.Now()))

	c, err := repo.FindCustomerByAppUserID(context.Background(), appUserID)
	require.NoError(t, err)
	assert.Equal(t, int64(5), c.CustomerID)
}

func TestFindCustomer_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCustomerRepository(db, logger.Nop())

	mock.ExpectQuery(regexp.QuoteMeta("FROM customers")).
		WithArgs(appUserID).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindCustomerByAppUserID(context.Background(), appUserID)
	assert.ErrorIs(t, err, ErrNoCustomerWasFound)
}

// ── DeleteCustomer ────────────────────────────────────────────────────────────

func TestDeleteCustomer(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCustomerRepository(db, logger.Nop())

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM customers WHERE customer_id = $1")).
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM customers")).
		WithArgs(int64(6)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM customers")).
		WithArgs(int64(7)).
		WillReturnError(pgError(pgerrcode.ConnectionFailure))

	assert.NoError(t, repo.DeleteCustomer(context.Background(), 5))
	assert.ErrorIs(t, repo.DeleteCustomer(context.Background(), 6), ErrNoCustomerWasFound)
	assert.ErrorIs(t, repo.DeleteCustomer(context.Background(), 7), ErrExecutingQuery)
}

// ── error classification ──────────────────────────────────────────────────────

func TestPostgresErrorClassifier(t *testing.T) {
	c := NewPostgresErrorClassifier()

	assert.Equal(t, Retryable, c.Classify(pgError(pgerrcode.DeadlockDetected)))
	assert.Equal(t, Retryable, c.Classify(pgError(pgerrcode.ConnectionFailure)))
	assert.Equal(t, NonRetryable, c.Classify(pgError(pgerrcode.UniqueViolation)))
	assert.Equal(t, NonRetryable, c.Classify(errors.New("plain")))
	assert.Equal(t, NonRetryable, c.Classify(nil))
}
