// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-gambit/internal/game"
	"github.com/MKhiriev/go-gambit/internal/service"
)

func TestHumanizeServerUnavailableError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: ""},
		{name: "sentinel", err: fmt.Errorf("offerings: %w", service.ErrServerUnavailable), want: serverUnavailableText},
		{name: "dial", err: errors.New("dial tcp 127.0.0.1:8080: connect: connection refused"), want: serverUnavailableText},
		{name: "timeout", err: errors.New("context deadline exceeded"), want: serverUnavailableText},
		{name: "other", err: errors.New("boom"), want: "boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, humanizeServerUnavailableError(tt.err))
		})
	}
}

func TestValidationMessage(t *testing.T) {
	assert.Equal(t, "Enter a name", validationMessage(game.ErrEmptyPlayerName))
	assert.Equal(t, "That name is already playing", validationMessage(fmt.Errorf("%w: ann", game.ErrDuplicatePlayer)))
	assert.Empty(t, validationMessage(errors.New("other")))
}

func TestStoreMessage(t *testing.T) {
	assert.Equal(t, "That package is no longer offered", storeMessage(service.ErrPackageNotFound))
	assert.Equal(t, serverUnavailableText, storeMessage(service.ErrServerUnavailable))
}
