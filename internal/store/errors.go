// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repositories. Match with [errors.Is].
var (
	ErrCustomerAlreadyExists = errors.New("customer already exists")
	ErrNoCustomerWasFound    = errors.New("no customer was found")
	ErrPackageNotFound       = errors.New("package was not found")
	ErrIdentityNotFound      = errors.New("device identity value was not found")
)

// Low-level database operation errors.
var (
	ErrBuildingSQLQuery = errors.New("error building sql query")
	ErrExecutingQuery   = errors.New("error executing sql query")
	ErrScanningRow      = errors.New("failed to scan row")
	ErrScanningRows     = errors.New("failed to scan rows")
)
