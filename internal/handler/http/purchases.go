// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-gambit/internal/app"
	"github.com/MKhiriev/go-gambit/internal/logger"
	"github.com/MKhiriev/go-gambit/internal/utils"
	"github.com/MKhiriev/go-gambit/models"
)

func (h *Handler) purchase(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	customerID, ok := h.customerID(w, r)
	if !ok {
		return
	}

	var req models.PurchaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	snap, err := h.services.PurchaseService.Purchase(ctx, customerID, req)
	if err != nil {
		log.Err(err).Int64("package_id", req.PackageID).Msg("purchase failed")
		writeError(w, err)
		return
	}

	h.writeSnapshot(w, r, snap)
}

func (h *Handler) restore(w http.ResponseWriter, r *http.Request) {
	customerID, ok := h.customerID(w, r)
	if !ok {
		return
	}

	snap, err := h.services.PurchaseService.Restore(r.Context(), customerID)
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("restore failed")
		writeError(w, err)
		return
	}

	h.writeSnapshot(w, r, snap)
}

func (h *Handler) getEntitlements(w http.ResponseWriter, r *http.Request) {
	customerID, ok := h.customerID(w, r)
	if !ok {
		return
	}

	snap, err := h.services.PurchaseService.Entitlements(r.Context(), customerID)
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("get entitlements failed")
		writeError(w, err)
		return
	}

	h.writeSnapshot(w, r, snap)
}

func (h *Handler) writeSnapshot(w http.ResponseWriter, r *http.Request, snap models.EntitlementSnapshot) {
	if _, err := utils.WriteJSON(w, snap, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("writing entitlement snapshot failed")
	}
}

// customerID reads the ID stored by the auth middleware and answers 401 when
// it is missing.
func (h *Handler) customerID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	customerID, ok := utils.GetCustomerIDFromContext(r.Context())
	if !ok {
		logger.FromRequest(r).Err(ErrNoCustomerInContext).Send()
		http.Error(w, app.MsgNoCustomerIDProvided, http.StatusUnauthorized)
	}
	return customerID, ok
}
