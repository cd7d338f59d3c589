// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-gambit/internal/adapter"
	"github.com/MKhiriev/go-gambit/internal/app"
)

// mapAdapterError translates the adapter's transport error into a service business error
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	msg := extractBody(err)

	switch {
	case errors.Is(err, adapter.ErrBadRequest):
		switch msg {
		case app.MsgInvalidDataProvided:
			return ErrInvalidDataProvided
		case app.MsgHashMismatch:
			return ErrHashMismatch
		case app.MsgNoCustomerIDProvided:
			return ErrNoCustomerID
		}
		return err

	case errors.Is(err, adapter.ErrUnauthorized):
		return ErrTokenIsExpiredOrInvalid

	case errors.Is(err, adapter.ErrNotFound):
		switch msg {
		case app.MsgPackageNotFound:
			return ErrPackageNotFound
		case app.MsgCustomerNotFound:
			return ErrCustomerNotFound
		}
		return err

	case errors.Is(err, adapter.ErrNoToken):
		return ErrNotInitialized

	case errors.Is(err, adapter.ErrForbidden), errors.Is(err, adapter.ErrConflict):
		return err
	}

	// 5xx, connection refused, DNS, stream closed...
	return fmt.Errorf("%w: %w", ErrServerUnavailable, err)
}

// extractBody extracts the body from a message of the form "bad request: <body>"
func extractBody(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx != -1 {
		return msg[idx+2:]
	}
	return msg
}
