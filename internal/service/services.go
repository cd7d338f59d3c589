// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/go-gambit/internal/config"
	"github.com/MKhiriev/go-gambit/internal/logger"
	"github.com/MKhiriev/go-gambit/internal/store"
)

type Services struct {
	CustomerService CustomerService
	OfferingService OfferingService
	PurchaseService PurchaseService
	AppInfoService  AppInfoService
}

func NewServices(storages *store.Storages, notifier Notifier, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, storages.HealthChecker, logger)
	if err != nil {
		return nil, fmt.Errorf("app info service: %w", err)
	}

	purchaseService := NewPurchaseValidationService().
		Wrap(NewPurchaseService(storages.OfferingRepository, storages.GrantRepository, notifier, logger))

	return &Services{
		CustomerService: NewCustomerValidationService(NewCustomerService(storages.CustomerRepository, cfg.App, logger)),
		OfferingService: NewOfferingService(storages.OfferingRepository, logger),
		PurchaseService: purchaseService,
		AppInfoService:  appInfoService,
	}, nil
}
