// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetAddress_String(t *testing.T) {
	assert.Equal(t, "", (&NetAddress{}).String())
	assert.Equal(t, "localhost:8080", (&NetAddress{Host: "localhost", Port: 8080}).String())
	assert.Equal(t, ":8080", (&NetAddress{Port: 8080}).String())
}

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    NetAddress
		wantErr bool
	}{
		{"localhost", "localhost:8080", NetAddress{Host: "localhost", Port: 8080}, false},
		{"ipv4", "127.0.0.1:9090", NetAddress{Host: "127.0.0.1", Port: 9090}, false},
		{"missing port", "localhost", NetAddress{}, true},
		{"bad port", "localhost:abc", NetAddress{}, true},
		{"zero port", "localhost:0", NetAddress{}, true},
		{"port too big", "localhost:70000", NetAddress{}, true},
		{"hostname", "example.com:80", NetAddress{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a NetAddress
			err := a.Set(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, a)
		})
	}
}

func TestParseFlags(t *testing.T) {
	cfg, err := ParseFlags([]string{
		"-a", "localhost:8000",
		"-grpc-address", "127.0.0.1:9000",
		"-d", "postgres://db",
		"-token-duration", "3h",
		"-request-timeout", "5s",
		"-refresh-interval", "20s",
		"-theme", "sexy",
		"-config", "/tmp/c.json",
	})
	require.NoError(t, err)

	assert.Equal(t, "localhost:8000", cfg.Server.HTTPAddress)
	assert.Equal(t, "127.0.0.1:9000", cfg.Server.GRPCAddress)
	assert.Equal(t, "postgres://db", cfg.Storage.DB.DSN)
	assert.Equal(t, 3*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, 5*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, 5*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, 20*time.Second, cfg.Workers.RefreshInterval)
	assert.Equal(t, "sexy", cfg.Game.Theme)
	assert.Equal(t, "/tmp/c.json", cfg.JSONFilePath)
}

func TestParseFlags_Unknown(t *testing.T) {
	_, err := ParseFlags([]string{"-nope"})
	assert.Error(t, err)
}
