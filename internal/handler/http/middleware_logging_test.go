// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-gambit/internal/logger"
	"github.com/MKhiriev/go-gambit/internal/service"
)

func TestWithLogging(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		path       string
		status     int
		body       string
		wantStatus float64
		wantSize   float64
	}{
		{name: "ok with body", method: http.MethodGet, path: "/api/offerings", status: http.StatusOK, body: "[]", wantStatus: 200, wantSize: 2},
		{name: "not found", method: http.MethodPost, path: "/api/purchases", status: http.StatusNotFound, body: "package not found", wantStatus: 404, wantSize: 17},
		{name: "no content", method: http.MethodDelete, path: "/api/customers/me", status: http.StatusNoContent, wantStatus: 204},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			h := NewHandler(&service.Services{}, testConfig(), logger.Nop())

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				if tt.body != "" {
					w.Write([]byte(tt.body))
				}
			})

			req := httptest.NewRequest(tt.method, tt.path, nil)
			req = req.WithContext(zerolog.New(&buf).WithContext(req.Context()))
			h.withLogging(next).ServeHTTP(httptest.NewRecorder(), req)

			var entry map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
			assert.Equal(t, tt.method, entry["method"])
			assert.Equal(t, tt.path, entry["uri"])
			assert.Equal(t, tt.wantStatus, entry["status"])
			assert.Equal(t, tt.wantSize, entry["size"])
			assert.Contains(t, entry, "duration")
		})
	}
}

func TestWithLogging_PanicNotSuppressed(t *testing.T) {
	h := NewHandler(&service.Services{}, testConfig(), logger.Nop())
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { panic("boom") })

	assert.Panics(t, func() {
		h.withLogging(next).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	})
}
