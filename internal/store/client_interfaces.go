// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "context"

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// Keys of the device identity table.
const (
	KeyAppUserID = "app_user_id"
	KeyToken     = "token"
)

// DeviceIdentityRepository is a small key/value table on the device holding
// the anonymous app user ID and the current bearer token.
type DeviceIdentityRepository interface {
	// Get returns [ErrIdentityNotFound] for a missing key.
	Get(ctx context.Context, key string) (string, error)
	Save(ctx context.Context, key, value string) error
	// ClearAll wipes every stored value.
	ClearAll(ctx context.Context) error
}
