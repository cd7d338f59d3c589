// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-gambit/internal/logger"
)

type deviceIdentityRepository struct {
	*DB
	logger *logger.Logger
	now    func() time.Time
}

func NewDeviceIdentityRepository(db *DB, logger *logger.Logger) DeviceIdentityRepository {
	return &deviceIdentityRepository{
		DB:     db,
		logger: logger,
		now:    time.Now,
	}
}

func (r *deviceIdentityRepository) Get(ctx context.Context, key string) (string, error) {
	var value string
	if err := r.DB.QueryRowContext(ctx, getIdentityValue, key).Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrIdentityNotFound
		}
		logger.FromContext(ctx).Err(err).Str("func", "deviceIdentityRepository.Get").Str("key", key).Msg("failed to read identity value")
		return "", fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	return value, nil
}

func (r *deviceIdentityRepository) Save(ctx context.Context, key, value string) error {
	if _, err := r.DB.ExecContext(ctx, saveIdentityValue, key, value, r.now().UTC()); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "deviceIdentityRepository.Save").Str("key", key).Msg("failed to save identity value")
		return fmt.Errorf("failed to save %s: %w", key, err)
	}
	return nil
}

func (r *deviceIdentityRepository) ClearAll(ctx context.Context) error {
	if _, err := r.DB.ExecContext(ctx, clearIdentity); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "deviceIdentityRepository.ClearAll").Msg("failed to clear identity")
		return fmt.Errorf("failed to clear device identity: %w", err)
	}
	return nil
}
