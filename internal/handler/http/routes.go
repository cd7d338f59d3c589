// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withTraceID, h.withLogging)

	router.Group(func(r chi.Router) {
		r.Use(withGZip, middleware.Timeout(h.requestTimeout))

		// routes without authorization
		r.Post("/api/customers/identify", h.identify)
		r.Get("/api/version/", h.getServerVersion)
		r.Get("/api/health", h.checkHealth)

		r.Group(func(r chi.Router) {
			r.Use(h.auth)

			r.Get("/api/offerings", h.getOfferings)
			r.With(h.purchaseHashing).Post("/api/purchases", h.purchase)
			r.Post("/api/purchases/restore", h.restore)
			r.Get("/api/entitlements", h.getEntitlements)
			r.Delete("/api/customers/me", h.deleteCustomer)
		})
	})

	// long-lived stream: no compression, no request timeout
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Get("/api/entitlements/stream", h.streamEntitlements)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
