// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-gambit/internal/app"
	"github.com/MKhiriev/go-gambit/internal/service"
	"github.com/MKhiriev/go-gambit/internal/store"
)

type errorResponse struct {
	status  int
	message string
}

// errorResponses is ordered: the first matching target wins.
var errorResponses = []struct {
	target error
	errorResponse
}{
	{service.ErrInvalidDataProvided, errorResponse{http.StatusBadRequest, app.MsgInvalidDataProvided}},
	{service.ErrNoCustomerID, errorResponse{http.StatusBadRequest, app.MsgNoCustomerIDProvided}},
	{service.ErrHashMismatch, errorResponse{http.StatusBadRequest, app.MsgHashMismatch}},
	{service.ErrVersionIsNotSpecified, errorResponse{http.StatusBadRequest, app.MsgVersionIsNotSpecified}},
	{service.ErrTokenIsExpiredOrInvalid, errorResponse{http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid}},
	{service.ErrCustomerNotFound, errorResponse{http.StatusNotFound, app.MsgCustomerNotFound}},
	{service.ErrPackageNotFound, errorResponse{http.StatusNotFound, app.MsgPackageNotFound}},
	{service.ErrTokenCreationFailed, errorResponse{http.StatusInternalServerError, app.MsgIdentifyFailed}},
	{service.ErrHealthCheckFailed, errorResponse{http.StatusServiceUnavailable, http.StatusText(http.StatusServiceUnavailable)}},

	{store.ErrNoCustomerWasFound, errorResponse{http.StatusNotFound, app.MsgCustomerNotFound}},
	{store.ErrPackageNotFound, errorResponse{http.StatusNotFound, app.MsgPackageNotFound}},
	{store.ErrCustomerAlreadyExists, errorResponse{http.StatusConflict, http.StatusText(http.StatusConflict)}},
}

func responseFromError(err error) errorResponse {
	for _, r := range errorResponses {
		if errors.Is(err, r.target) {
			return r.errorResponse
		}
	}
	return errorResponse{http.StatusInternalServerError, app.MsgInternalServerError}
}

func statusFromError(err error) int {
	return responseFromError(err).status
}

// writeError answers with the status and plain-text message mapped from err.
func writeError(w http.ResponseWriter, err error) {
	resp := responseFromError(err)
	http.Error(w, resp.message, resp.status)
}
