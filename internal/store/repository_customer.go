// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"

	"github.com/MKhiriev/go-gambit/internal/logger"
	"github.com/MKhiriev/go-gambit/models"
)

// customerRepository is the PostgreSQL implementation of [CustomerRepository].
type customerRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewCustomerRepository(db *DB, logger *logger.Logger) CustomerRepository {
	logger.Debug().Msg("creating customer repository")
	return &customerRepository{
		db:     db,
		logger: logger,
	}
}

func (r *customerRepository) CreateCustomer(ctx context.Context, appUserID string) (models.Customer, error) {
	log := logger.FromContext(ctx)

	query, args, err := createCustomerQuery(appUserID)
	if err != nil {
		return models.Customer{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var customer models.Customer
	row := r.db.QueryRowContext(ctx, query, args...)
	if err = row.Scan(&customer.CustomerID, &customer.AppUserID, &customer.CreatedAt); err != nil {
		log.Err(err).Str("func", "*customerRepository.CreateCustomer").Bool("retryable", r.db.retryable(err)).Msg("error creating customer")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Customer{}, ErrCustomerAlreadyExists
		default:
			return models.Customer{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return customer, nil
}

func (r *customerRepository) FindCustomerByAppUserID(ctx context.Context, appUserID string) (models.Customer, error) {
	log := logger.FromContext(ctx)

	query, args, err := findCustomerByAppUserIDQuery(appUserID)
	if err != nil {
		return models.Customer{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var customer models.Customer
	row := r.db.QueryRowContext(ctx, query, args...)
	if err = row.Scan(&customer.CustomerID, &customer.AppUserID, &customer.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) || postgresError(err) == pgerrcode.NoDataFound {
			return models.Customer{}, ErrNoCustomerWasFound
		}
		log.Err(err).Str("func", "*customerRepository.FindCustomerByAppUserID").Msg("error finding customer")
		return models.Customer{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return customer, nil
}

func (r *customerRepository) DeleteCustomer(ctx context.Context, customerID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := deleteCustomerQuery(customerID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*customerRepository.DeleteCustomer").Int64("customer_id", customerID).Msg("error deleting customer")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrNoCustomerWasFound
	}

	return nil
}
