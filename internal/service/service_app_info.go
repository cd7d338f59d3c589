// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-gambit/internal/config"
	"github.com/MKhiriev/go-gambit/internal/logger"
	"github.com/MKhiriev/go-gambit/internal/store"
)

type appInfoService struct {
	appVersion string

	healthChecker store.HealthChecker

	logger *logger.Logger
}

func NewAppInfoService(cfg config.App, healthChecker store.HealthChecker, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		appVersion:    cfg.Version,
		healthChecker: healthChecker,
		logger:        logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}

func (s *appInfoService) CheckHealth(ctx context.Context) error {
	if s.healthChecker == nil {
		return nil
	}
	if err := s.healthChecker.PingContext(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrHealthCheckFailed, err)
	}
	return nil
}
