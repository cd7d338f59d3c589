// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-gambit/internal/adapter"
	"github.com/MKhiriev/go-gambit/internal/logger"
	"github.com/MKhiriev/go-gambit/internal/store"
	"github.com/MKhiriev/go-gambit/internal/utils"
)

type ClientServices struct {
	PurchaseService ClientPurchaseService
	RefreshJob      ClientRefreshJob
}

// NewClientServices wires the client services. Refreshed snapshots are
// applied to applier.
func NewClientServices(storages *store.ClientStorages, serverAdapter adapter.ServerAdapter, applier SnapshotApplier, logger *logger.Logger) *ClientServices {
	purchases := NewClientPurchaseService(storages.IdentityRepository, serverAdapter, utils.NewUUIDGenerator(), logger)

	return &ClientServices{
		PurchaseService: purchases,
		RefreshJob:      NewClientRefreshJob(purchases, applier, logger),
	}
}
