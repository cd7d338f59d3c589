// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the REST transport of the purchase server.
//
// It wires the chi router, the request handlers for customers, offerings,
// purchases and entitlements, and the middleware chain: trace IDs, access
// logging, gzip, bearer authentication and HashSHA256 body verification.
// The entitlement stream is served as server-sent events outside the gzip
// and timeout middleware.
package http
