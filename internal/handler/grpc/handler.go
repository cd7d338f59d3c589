// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package grpc exposes the purchase server's health over the standard gRPC
// health checking protocol so orchestrators can probe it.
package grpc

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/MKhiriev/go-gambit/internal/logger"
	"github.com/MKhiriev/go-gambit/internal/service"
)

// PurchasesServiceName is the health service name reported next to the
// overall ("") status.
const PurchasesServiceName = "gambit.purchases"

// DefaultProbeInterval is how often Watch re-checks the database.
const DefaultProbeInterval = 10 * time.Second

// Handler keeps the gRPC health status in step with
// [service.AppInfoService.CheckHealth].
type Handler struct {
	services *service.Services
	health   *health.Server

	probeInterval time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")

	h := &Handler{
		services:      services,
		health:        health.NewServer(),
		probeInterval: DefaultProbeInterval,
		logger:        logger,
	}
	h.setStatus(healthpb.HealthCheckResponse_NOT_SERVING)

	return h
}

// Register attaches the health service to s.
func (h *Handler) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, h.health)
}

// Probe checks the database once and publishes the result.
func (h *Handler) Probe(ctx context.Context) healthpb.HealthCheckResponse_ServingStatus {
	status := healthpb.HealthCheckResponse_SERVING
	if err := h.services.AppInfoService.CheckHealth(ctx); err != nil {
		h.logger.Warn().Err(err).Msg("health probe failed")
		status = healthpb.HealthCheckResponse_NOT_SERVING
	}

	h.setStatus(status)
	return status
}

// Watch probes immediately and then every probe interval until ctx is done.
// On return every service reports NOT_SERVING.
func (h *Handler) Watch(ctx context.Context) {
	ticker := time.NewTicker(h.probeInterval)
	defer ticker.Stop()

	h.Probe(ctx)
	for {
		select {
		case <-ctx.Done():
			h.health.Shutdown()
			return
		case <-ticker.C:
			h.Probe(ctx)
		}
	}
}

func (h *Handler) setStatus(status healthpb.HealthCheckResponse_ServingStatus) {
	h.health.SetServingStatus("", status)
	h.health.SetServingStatus(PurchasesServiceName, status)
}
