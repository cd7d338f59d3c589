// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-gambit/internal/game"
	"github.com/MKhiriev/go-gambit/internal/service"
)

const serverUnavailableText = "No network connection or the store is unavailable"

func humanizeServerUnavailableError(err error) string {
	if err == nil {
		return ""
	}

	s := strings.ToLower(err.Error())
	if errors.Is(err, service.ErrServerUnavailable) ||
		strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return serverUnavailableText
	}

	return err.Error()
}

// validationMessage returns the alert text for input errors of the
// session, or "" when err is not one.
func validationMessage(err error) string {
	switch {
	case errors.Is(err, game.ErrEmptyPlayerName):
		return "Enter a name"
	case errors.Is(err, game.ErrDuplicatePlayer):
		return "That name is already playing"
	case errors.Is(err, game.ErrNotEnoughPlayers):
		return "Need at least 2 players"
	case errors.Is(err, game.ErrEmptyPrompt):
		return "Type a prompt first"
	default:
		return ""
	}
}

// storeMessage turns a purchase-service error into banner text.
func storeMessage(err error) string {
	switch {
	case errors.Is(err, service.ErrNotInitialized):
		return "The store is not ready yet"
	case errors.Is(err, service.ErrPackageNotFound):
		return "That package is no longer offered"
	case errors.Is(err, service.ErrTokenIsExpiredOrInvalid):
		return "Your store session expired"
	default:
		return humanizeServerUnavailableError(err)
	}
}
