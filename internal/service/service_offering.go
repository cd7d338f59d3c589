// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-gambit/internal/logger"
	"github.com/MKhiriev/go-gambit/internal/store"
	"github.com/MKhiriev/go-gambit/models"
)

type offeringService struct {
	offeringRepository store.OfferingRepository
	logger             *logger.Logger
}

func NewOfferingService(offeringRepository store.OfferingRepository, logger *logger.Logger) OfferingService {
	return &offeringService{offeringRepository: offeringRepository, logger: logger}
}

// GetOfferings returns the catalog, cheapest first. An empty catalog is a
// valid answer and yields an empty, non-nil slice.
func (o *offeringService) GetOfferings(ctx context.Context) ([]models.Package, error) {
	packages, err := o.offeringRepository.GetPackages(ctx)
	if err != nil {
		return nil, fmt.Errorf("offerings lookup failed: %w", err)
	}
	if packages == nil {
		packages = []models.Package{}
	}

	return packages, nil
}
