// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrInvalidDataProvided     = errors.New("invalid data provided")
	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrVersionIsNotSpecified   = errors.New("app version is not specified")
	ErrHealthCheckFailed       = errors.New("database health check failed")

	ErrNoCustomerID     = errors.New("no customer ID provided")
	ErrCustomerNotFound = errors.New("customer not found")
	ErrPackageNotFound  = errors.New("package not found")
	ErrHashMismatch     = errors.New("request hash mismatch")

	// ErrPurchaseCancelled is returned when the player declines the
	// confirmation. Callers treat it as a no-op, not a failure.
	ErrPurchaseCancelled = errors.New("purchase cancelled")
	ErrNotInitialized    = errors.New("purchases are not initialized")
	ErrServerUnavailable = errors.New("purchase server unavailable")
)
