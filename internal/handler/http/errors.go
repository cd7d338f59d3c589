// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors of the auth middleware when parsing the "Authorization"
// header.
var (
	ErrEmptyAuthorizationHeader   = errors.New("empty `Authorization` header")
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")
	ErrEmptyToken                 = errors.New("empty token in `Authorization` header")

	// ErrNoCustomerInContext means a protected handler ran without the auth
	// middleware in front of it.
	ErrNoCustomerInContext = errors.New("no customer in request context")
)
