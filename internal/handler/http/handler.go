// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"time"

	"github.com/MKhiriev/go-gambit/internal/config"
	"github.com/MKhiriev/go-gambit/internal/logger"
	"github.com/MKhiriev/go-gambit/internal/service"
	"github.com/MKhiriev/go-gambit/internal/utils"
)

const (
	defaultRequestTimeout  = 15 * time.Second
	defaultStreamKeepAlive = 15 * time.Second
)

type Handler struct {
	services *service.Services

	// hasher is nil when no hash key is configured; purchase bodies are then
	// accepted unsigned.
	hasher *utils.Hasher

	requestTimeout  time.Duration
	streamKeepAlive time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg *config.StructuredConfig, logger *logger.Logger) *Handler {
	h := &Handler{
		services:        services,
		requestTimeout:  cfg.Server.RequestTimeout,
		streamKeepAlive: defaultStreamKeepAlive,
		logger:          logger,
	}
	if h.requestTimeout <= 0 {
		h.requestTimeout = defaultRequestTimeout
	}
	if cfg.App.HashKey != "" {
		h.hasher = utils.NewHasher(cfg.App.HashKey)
	}

	logger.Info().Bool("signed_purchases", h.hasher != nil).Msg("http handler created")
	return h
}
