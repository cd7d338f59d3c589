// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidAppUserID  = errors.New("app user ID must be a UUID")
	ErrInvalidPackageID  = errors.New("package ID must be positive")
	ErrInvalidCustomerID = errors.New("invalid customer ID")
)
