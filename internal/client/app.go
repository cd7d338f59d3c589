// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-gambit/internal/config"
	"github.com/MKhiriev/go-gambit/internal/entitlement"
	"github.com/MKhiriev/go-gambit/internal/logger"
	"github.com/MKhiriev/go-gambit/internal/service"
	"github.com/MKhiriev/go-gambit/internal/workers"
)

type App struct {
	services *service.ClientServices
	state    *entitlement.State
	ui       UI
	cfg      config.ClientWorkers

	logger *logger.Logger
}

func NewApp(services *service.ClientServices, state *entitlement.State, ui UI, cfg config.ClientWorkers, logger *logger.Logger) (*App, error) {
	if services == nil || state == nil || ui == nil {
		return nil, ErrMissingDependency
	}

	return &App{
		services: services,
		state:    state,
		ui:       ui,
		cfg:      cfg,
		logger:   logger.WithComponent("client"),
	}, nil
}

// Run identifies the device, starts the entitlement workers and blocks in
// the UI. The game stays playable when the purchase server is down: store
// calls then fail with a retry banner.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	purchases := a.services.PurchaseService

	if err := purchases.Initialize(ctx); err != nil {
		a.logger.Warn().Err(err).Bool("offline", errors.Is(err, service.ErrServerUnavailable)).
			Msg("purchase initialization failed, store calls will report it")
	} else if snap, err := purchases.Entitlements(ctx); err != nil {
		a.logger.Warn().Err(err).Msg("initial entitlement fetch failed")
	} else {
		a.state.Apply(snap)
	}

	w := workers.NewWorkers(a.logger,
		workers.NewStreamWorker(purchases, a.state, a.logger),
		workers.NewRefreshWorker(a.services.RefreshJob, a.cfg.RefreshInterval),
	)
	w.Start(ctx)

	err := a.ui.Run(ctx)

	cancel()
	w.Wait()

	if err != nil {
		return fmt.Errorf("ui: %w", err)
	}
	return nil
}
