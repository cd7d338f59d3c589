// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/MKhiriev/go-gambit/internal/app"
	"github.com/MKhiriev/go-gambit/internal/logger"
	"github.com/MKhiriev/go-gambit/internal/utils"
	"github.com/MKhiriev/go-gambit/models"
)

// streamEntitlements serves the customer's entitlement changes as
// server-sent events. The current snapshot is sent first so a reconnecting
// client never misses a change made while it was away.
func (h *Handler) streamEntitlements(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	customerID, ok := h.customerID(w, r)
	if !ok {
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		log.Error().Msg("response writer does not support flushing")
		http.Error(w, app.MsgStreamingUnsupported, http.StatusInternalServerError)
		return
	}

	// subscribe before reading the snapshot so no publish falls in between
	updates, unsubscribe := h.services.PurchaseService.Subscribe(customerID)
	defer unsubscribe()

	snap, err := h.services.PurchaseService.Entitlements(ctx, customerID)
	if err != nil {
		log.Err(err).Msg("initial entitlement snapshot failed")
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)

	if err = utils.WriteSSE(w, models.EntitlementsEvent, snap); err != nil {
		log.Err(err).Send()
		return
	}

	log.Info().Int64("customer_id", customerID).Msg("entitlement stream opened")
	defer log.Info().Int64("customer_id", customerID).Msg("entitlement stream closed")

	keepAlive := time.NewTicker(h.streamKeepAlive)
	defer keepAlive.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case snap, ok := <-updates:
			if !ok {
				return
			}
			if err = utils.WriteSSE(w, models.EntitlementsEvent, snap); err != nil {
				log.Err(err).Send()
				return
			}
		case <-keepAlive.C:
			if _, err = fmt.Fprint(w, ": keepalive\n\n"); err != nil {
				return
			}
			flusher.Flush()
		}
	}
}
