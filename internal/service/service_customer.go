// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-gambit/internal/config"
	"github.com/MKhiriev/go-gambit/internal/logger"
	"github.com/MKhiriev/go-gambit/internal/store"
	"github.com/MKhiriev/go-gambit/internal/utils"
	"github.com/MKhiriev/go-gambit/models"
)

// customerService is the concrete implementation of CustomerService.
// Customers are anonymous: the app user ID generated on the device is the
// only credential, and the issued JWT carries the server-side customer ID.
type customerService struct {
	customerRepository store.CustomerRepository

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	tokenIssuer string

	tokenDuration time.Duration

	logger *logger.Logger
}

// NewCustomerService constructs a CustomerService backed by customerRepository
// with token parameters taken from cfg.
func NewCustomerService(customerRepository store.CustomerRepository, cfg config.App, logger *logger.Logger) CustomerService {
	return &customerService{
		customerRepository: customerRepository,
		tokenSignKey:       cfg.TokenSignKey,
		tokenIssuer:        cfg.TokenIssuer,
		tokenDuration:      cfg.TokenDuration,
		logger:             logger,
	}
}

// Identify looks the customer up by app user ID and creates it when missing.
// A concurrent first identify of the same ID loses the insert race with
// store.ErrCustomerAlreadyExists and falls back to a second lookup.
func (c *customerService) Identify(ctx context.Context, req models.IdentifyRequest) (models.Customer, error) {
	log := logger.FromContext(ctx)

	if req.AppUserID == "" {
		log.Error().Msg("empty app user id provided")
		return models.Customer{}, ErrInvalidDataProvided
	}

	customer, err := c.customerRepository.FindCustomerByAppUserID(ctx, req.AppUserID)
	if err == nil {
		return customer, nil
	}
	if !errors.Is(err, store.ErrNoCustomerWasFound) {
		log.Err(err).Str("app_user_id", req.AppUserID).Msg("customer search failed")
		return models.Customer{}, fmt.Errorf("customer search failed: %w", err)
	}

	customer, err = c.customerRepository.CreateCustomer(ctx, req.AppUserID)
	if errors.Is(err, store.ErrCustomerAlreadyExists) {
		customer, err = c.customerRepository.FindCustomerByAppUserID(ctx, req.AppUserID)
	}
	if err != nil {
		log.Err(err).Str("app_user_id", req.AppUserID).Msg("customer creation ended with error")
		return models.Customer{}, fmt.Errorf("customer creation ended with error: %w", err)
	}

	log.Info().Int64("customer_id", customer.CustomerID).Msg("new customer created")
	return customer, nil
}

// CreateToken issues a signed JWT whose subject is the customer ID.
func (c *customerService) CreateToken(ctx context.Context, customer models.Customer) (models.Token, error) {
	token, err := utils.GenerateJWTToken(c.tokenIssuer, customer.CustomerID, c.tokenDuration, c.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates signature and issuer. Every failure is reported as
// ErrTokenIsExpiredOrInvalid.
func (c *customerService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, c.tokenSignKey, c.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

// DeleteCustomer removes the customer; grants go with it by cascade.
func (c *customerService) DeleteCustomer(ctx context.Context, customerID int64) error {
	if customerID <= 0 {
		return ErrNoCustomerID
	}

	err := c.customerRepository.DeleteCustomer(ctx, customerID)
	if errors.Is(err, store.ErrNoCustomerWasFound) {
		return fmt.Errorf("%w: %w", ErrCustomerNotFound, err)
	}
	if err != nil {
		return fmt.Errorf("customer deletion failed: %w", err)
	}

	logger.FromContext(ctx).Info().Int64("customer_id", customerID).Msg("customer deleted")
	return nil
}
