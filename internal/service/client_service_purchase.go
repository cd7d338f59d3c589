// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-gambit/internal/adapter"
	"github.com/MKhiriev/go-gambit/internal/logger"
	"github.com/MKhiriev/go-gambit/internal/store"
	"github.com/MKhiriev/go-gambit/models"
)

type clientPurchaseService struct {
	identity      store.DeviceIdentityRepository
	serverAdapter adapter.ServerAdapter
	ids           IDGenerator

	mu        sync.Mutex
	appUserID string

	logger *logger.Logger
}

// NewClientPurchaseService builds the purchase service over the device
// identity table and the server adapter.
func NewClientPurchaseService(identity store.DeviceIdentityRepository, serverAdapter adapter.ServerAdapter, ids IDGenerator, logger *logger.Logger) ClientPurchaseService {
	return &clientPurchaseService{
		identity:      identity,
		serverAdapter: serverAdapter,
		ids:           ids,
		logger:        logger,
	}
}

// Initialize implements ClientPurchaseService.
func (s *clientPurchaseService) Initialize(ctx context.Context) error {
	appUserID, err := s.loadOrCreateAppUserID(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.appUserID = appUserID
	s.mu.Unlock()

	if cached, err := s.identity.Get(ctx, store.KeyToken); err == nil {
		s.serverAdapter.SetToken(cached)
	}

	return s.identify(ctx, appUserID)
}

func (s *clientPurchaseService) loadOrCreateAppUserID(ctx context.Context) (string, error) {
	appUserID, err := s.identity.Get(ctx, store.KeyAppUserID)
	if err == nil {
		return appUserID, nil
	}
	if !errors.Is(err, store.ErrIdentityNotFound) {
		return "", fmt.Errorf("load app user id: %w", err)
	}

	appUserID = s.ids.Generate()
	if err = s.identity.Save(ctx, store.KeyAppUserID, appUserID); err != nil {
		return "", fmt.Errorf("save app user id: %w", err)
	}
	s.logger.Info().Str("app_user_id", appUserID).Msg("new anonymous app user id created")

	return appUserID, nil
}

func (s *clientPurchaseService) identify(ctx context.Context, appUserID string) error {
	token, err := s.serverAdapter.Identify(ctx, appUserID)
	if err != nil {
		s.logger.Err(err).Msg("identify failed")
		return mapAdapterError(err)
	}

	if err = s.identity.Save(ctx, store.KeyToken, token); err != nil {
		s.logger.Err(err).Msg("caching token failed")
	}
	return nil
}

// Offerings implements ClientPurchaseService.
func (s *clientPurchaseService) Offerings(ctx context.Context) ([]models.Package, error) {
	var packages []models.Package
	err := s.authed(ctx, func() error {
		var err error
		packages, err = s.serverAdapter.Offerings(ctx)
		return err
	})
	return packages, err
}

// Purchase implements ClientPurchaseService.
func (s *clientPurchaseService) Purchase(ctx context.Context, pkg models.Package, confirmed bool) (models.EntitlementSnapshot, error) {
	if !confirmed {
		return models.EntitlementSnapshot{}, ErrPurchaseCancelled
	}

	var snap models.EntitlementSnapshot
	err := s.authed(ctx, func() error {
		var err error
		snap, err = s.serverAdapter.Purchase(ctx, pkg.ID)
		return err
	})
	if err == nil {
		s.logger.Info().Str("package", pkg.Identifier).Msg("purchase completed")
	}
	return snap, err
}

// Restore implements ClientPurchaseService.
func (s *clientPurchaseService) Restore(ctx context.Context) (models.EntitlementSnapshot, error) {
	var snap models.EntitlementSnapshot
	err := s.authed(ctx, func() error {
		var err error
		snap, err = s.serverAdapter.Restore(ctx)
		return err
	})
	return snap, err
}

// Entitlements implements ClientPurchaseService.
func (s *clientPurchaseService) Entitlements(ctx context.Context) (models.EntitlementSnapshot, error) {
	var snap models.EntitlementSnapshot
	err := s.authed(ctx, func() error {
		var err error
		snap, err = s.serverAdapter.Entitlements(ctx)
		return err
	})
	return snap, err
}

// Listen implements ClientPurchaseService. A slow reader blocks the stream
// reader rather than losing updates.
func (s *clientPurchaseService) Listen(ctx context.Context) <-chan models.EntitlementSnapshot {
	out := make(chan models.EntitlementSnapshot, 1)

	go func() {
		defer close(out)

		err := s.serverAdapter.StreamEntitlements(ctx, func(snap models.EntitlementSnapshot) {
			select {
			case out <- snap:
			case <-ctx.Done():
			}
		})
		if err != nil && ctx.Err() == nil {
			s.logger.Warn().Err(err).Msg("entitlement stream ended")
		}
	}()

	return out
}

// DeleteAccount implements ClientPurchaseService.
func (s *clientPurchaseService) DeleteAccount(ctx context.Context) error {
	err := s.authed(ctx, func() error {
		return s.serverAdapter.DeleteCustomer(ctx)
	})
	if err != nil {
		return err
	}

	if err = s.identity.ClearAll(ctx); err != nil {
		return fmt.Errorf("clear device identity: %w", err)
	}

	s.serverAdapter.SetToken("")

	// the next authed call identifies as a new anonymous customer
	appUserID, err := s.loadOrCreateAppUserID(ctx)
	s.mu.Lock()
	s.appUserID = appUserID
	s.mu.Unlock()
	if err != nil {
		return fmt.Errorf("account deleted, new identity failed: %w", err)
	}

	s.logger.Info().Str("app_user_id", appUserID).Msg("account deleted")
	return nil
}

// authed runs call with the current token. When the token has expired the
// device identifies again and call runs one more time.
func (s *clientPurchaseService) authed(ctx context.Context, call func() error) error {
	s.mu.Lock()
	appUserID := s.appUserID
	s.mu.Unlock()

	if appUserID == "" {
		return ErrNotInitialized
	}

	err := call()
	if !errors.Is(err, adapter.ErrUnauthorized) && !errors.Is(err, adapter.ErrNoToken) {
		return mapAdapterError(err)
	}

	s.logger.Debug().Msg("token rejected, identifying again")
	if err = s.identify(ctx, appUserID); err != nil {
		return err
	}

	return mapAdapterError(call())
}
