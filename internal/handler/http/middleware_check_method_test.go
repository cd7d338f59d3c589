// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

func TestCheckHTTPMethod(t *testing.T) {
	router := chi.NewRouter()
	ok := func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) }
	router.Get("/api/entitlements", ok)
	router.Post("/api/purchases", ok)
	router.Post("/api/purchases/restore", ok)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	tests := []struct {
		method     string
		path       string
		wantStatus int
	}{
		{http.MethodGet, "/api/entitlements", http.StatusOK},
		{http.MethodPost, "/api/purchases", http.StatusOK},
		{http.MethodPost, "/api/entitlements", http.StatusNotFound},
		{http.MethodGet, "/api/purchases", http.StatusNotFound},
		{http.MethodDelete, "/api/purchases/restore", http.StatusNotFound},
		{http.MethodGet, "/api/missing", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}
