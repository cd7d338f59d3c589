// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-gambit/models"
)

// DefaultClientDSN is the SQLite file used when no DSN is configured.
const DefaultClientDSN = "gambit.db"

// ClientApp holds client-side application settings.
type ClientApp struct {
	// HashKey signs purchase requests.
	HashKey string
}

// ClientAdapter holds the purchase server endpoint.
type ClientAdapter struct {
	HTTPAddress    string
	RequestTimeout time.Duration
}

// ClientDB holds the local SQLite settings.
type ClientDB struct {
	DSN string
}

// ClientStorage groups client storage settings.
type ClientStorage struct {
	DB ClientDB
}

// ClientWorkers holds client background job settings.
type ClientWorkers struct {
	RefreshInterval time.Duration
}

// ClientGame holds gameplay preferences.
type ClientGame struct {
	Theme   models.ThemePack
	Mute    bool
	LogFile string
}

// ClientConfig is the client view of [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
	Workers ClientWorkers
	Game    ClientGame
}

// GetClientConfig loads the shared configuration, maps the client fields
// and validates them.
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	dsn := cfg.Storage.DB.DSN
	if dsn == "" {
		dsn = DefaultClientDSN
	}

	return &ClientConfig{
		App: ClientApp{
			HashKey: cfg.App.HashKey,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{DSN: dsn},
		},
		Workers: ClientWorkers{RefreshInterval: cfg.Workers.RefreshInterval},
		Game: ClientGame{
			Theme:   models.ThemePack(cfg.Game.Theme),
			Mute:    cfg.Game.Mute,
			LogFile: cfg.Game.LogFile,
		},
	}
}
