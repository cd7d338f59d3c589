// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter talks to the go-gambit purchase server.
//
// [ServerAdapter] hides the transport from the client services. The HTTP
// implementation ([NewHTTPServerAdapter]) uses resty, attaches the bearer
// token issued by identify, and signs purchase bodies with the HashSHA256
// integrity header.
//
// Non-2xx responses are mapped by mapHTTPError to the sentinels in errors.go
// so callers can use [errors.Is] (e.g. [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-gambit/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter is the client's view of the purchase server.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to authenticated requests.
	SetToken(token string)

	// Token returns the stored bearer token, or "" when none is set.
	Token() string

	// Identify registers (or recognises) the anonymous appUserID and returns
	// the issued bearer token. The token is also stored via SetToken.
	Identify(ctx context.Context, appUserID string) (string, error)

	// Offerings lists the purchasable packages, cheapest first.
	Offerings(ctx context.Context) ([]models.Package, error)

	// Purchase buys the package and returns the resulting snapshot.
	Purchase(ctx context.Context, packageID int64) (models.EntitlementSnapshot, error)

	// Restore asks the server to re-send the customer's entitlements.
	Restore(ctx context.Context) (models.EntitlementSnapshot, error)

	// Entitlements fetches the current snapshot.
	Entitlements(ctx context.Context) (models.EntitlementSnapshot, error)

	// StreamEntitlements opens the server-sent event stream and calls handle
	// for every snapshot received. It blocks until ctx is cancelled or the
	// stream ends; a stream closed by the server yields [ErrStreamClosed].
	StreamEntitlements(ctx context.Context, handle func(models.EntitlementSnapshot)) error

	// DeleteCustomer removes the customer and their grants on the server.
	DeleteCustomer(ctx context.Context) error
}
