// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-gambit/internal/logger"
	"github.com/MKhiriev/go-gambit/internal/utils"
)

func (h *Handler) getOfferings(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	packages, err := h.services.OfferingService.GetOfferings(r.Context())
	if err != nil {
		log.Err(err).Msg("get offerings failed")
		writeError(w, err)
		return
	}

	if _, err = utils.WriteJSON(w, packages, http.StatusOK); err != nil {
		log.Err(err).Msg("writing offerings failed")
	}
}
