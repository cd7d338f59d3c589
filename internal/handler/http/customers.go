// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-gambit/internal/app"
	"github.com/MKhiriev/go-gambit/internal/logger"
	"github.com/MKhiriev/go-gambit/internal/utils"
	"github.com/MKhiriev/go-gambit/models"
)

// identify registers the device on first contact and returns a bearer token
// both in the Authorization header and in the JSON body.
func (h *Handler) identify(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.IdentifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	customer, err := h.services.CustomerService.Identify(ctx, req)
	if err != nil {
		log.Err(err).Str("app_user_id", req.AppUserID).Msg("identify failed")
		writeError(w, err)
		return
	}

	token, err := h.services.CustomerService.CreateToken(ctx, customer)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		writeError(w, err)
		return
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	if _, err = utils.WriteJSON(w, models.IdentifyResponse{
		AppUserID: customer.AppUserID,
		Token:     token.SignedString,
	}, http.StatusOK); err != nil {
		log.Err(err).Msg("writing identify response failed")
	}
}

func (h *Handler) deleteCustomer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	customerID, ok := utils.GetCustomerIDFromContext(ctx)
	if !ok {
		log.Err(ErrNoCustomerInContext).Send()
		http.Error(w, app.MsgNoCustomerIDProvided, http.StatusUnauthorized)
		return
	}

	if err := h.services.CustomerService.DeleteCustomer(ctx, customerID); err != nil {
		log.Err(err).Int64("customer_id", customerID).Msg("delete customer failed")
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
