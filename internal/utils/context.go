// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils holds small helpers shared across the application:
// typed context keys, HMAC hashing, JSON and SSE response writing,
// the HTTP client, JWT handling and UUID generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
type contextKey string

func (c contextKey) String() string {
	return string(c)
}

// CustomerIDCtxKey stores the authenticated internal customer ID (int64).
var CustomerIDCtxKey = contextKey("customerID")

// WithCustomerID returns a copy of ctx carrying customerID.
func WithCustomerID(ctx context.Context, customerID int64) context.Context {
	return context.WithValue(ctx, CustomerIDCtxKey, customerID)
}

// GetCustomerIDFromContext returns the customer ID stored by the auth
// middleware. ok is false when it is missing or has the wrong type.
func GetCustomerIDFromContext(ctx context.Context) (int64, bool) {
	customerID, ok := ctx.Value(CustomerIDCtxKey).(int64)
	return customerID, ok
}
