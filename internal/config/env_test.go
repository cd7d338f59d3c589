// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv(t *testing.T) {
	t.Setenv("STORAGE_DB_DATABASE_URI", "postgres://env")
	t.Setenv("APP_TOKEN_DURATION", "45m")
	t.Setenv("WORKERS_REFRESH_INTERVAL", "10s")
	t.Setenv("GAME_MUTE", "true")
	t.Setenv("ADAPTER_ADDRESS", "localhost:9999")

	var cfg StructuredConfig
	require.NoError(t, parseEnv(&cfg))

	assert.Equal(t, "postgres://env", cfg.Storage.DB.DSN)
	assert.Equal(t, 45*time.Minute, cfg.App.TokenDuration)
	assert.Equal(t, 10*time.Second, cfg.Workers.RefreshInterval)
	assert.True(t, cfg.Game.Mute)
	assert.Equal(t, "localhost:9999", cfg.Adapter.HTTPAddress)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	t.Setenv("SERVER_REQUEST_TIMEOUT", "forever")

	var cfg StructuredConfig
	assert.Error(t, parseEnv(&cfg))
}
