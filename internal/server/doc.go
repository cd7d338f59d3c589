// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the purchase server's transports.
//
// It starts the HTTP API and the gRPC health endpoint, waits for SIGTERM,
// SIGINT or SIGQUIT and shuts both down gracefully. Open entitlement streams
// are cancelled before the HTTP server drains its connections.
package server
