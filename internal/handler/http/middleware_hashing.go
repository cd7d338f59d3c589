// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"io"
	"net/http"

	"github.com/MKhiriev/go-gambit/internal/app"
	"github.com/MKhiriev/go-gambit/internal/logger"
	"github.com/MKhiriev/go-gambit/internal/utils"
)

// purchaseHashing checks the HashSHA256 header against an HMAC of the raw
// body. It is a pass-through when the server has no hash key.
func (h *Handler) purchaseHashing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.hasher == nil {
			next.ServeHTTP(w, r)
			return
		}

		log := logger.FromRequest(r)

		body, err := io.ReadAll(r.Body)
		if err != nil {
			log.Err(err).Msg("failed to read request body")
			http.Error(w, app.MsgInternalServerError, http.StatusInternalServerError)
			return
		}
		r.Body = io.NopCloser(bytes.NewReader(body))

		hashFromRequest := r.Header.Get(utils.HashHeader)
		if !h.hasher.Verify(body, hashFromRequest) {
			log.Error().
				Str("hash from request", hashFromRequest).
				Msg("hashes are not equal")
			http.Error(w, app.MsgHashMismatch, http.StatusBadRequest)
			return
		}

		next.ServeHTTP(w, r)
	})
}
