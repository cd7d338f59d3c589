// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the shared configuration container of the server and
// the client. Each binary reads the groups it needs.
type StructuredConfig struct {
	App     App     `envPrefix:"APP_"`
	Storage Storage `envPrefix:"STORAGE_"`
	Server  Server  `envPrefix:"SERVER_"`
	Adapter Adapter `envPrefix:"ADAPTER_"`
	Workers Workers `envPrefix:"WORKERS_"`
	Game    Game    `envPrefix:"GAME_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Env: CONFIG, flags: -c / -config
	JSONFilePath string `env:"CONFIG"`
}

// App holds token and request-signing settings.
type App struct {
	// TokenSignKey signs customer JWTs. Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`
	// TokenIssuer is the "iss" claim of issued tokens. Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`
	// TokenDuration is the lifetime of an issued token. Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`
	// HashKey is the HMAC key for the HashSHA256 header on purchase requests.
	// Env: APP_HASH_KEY
	HashKey string `env:"HASH_KEY"`
	// Version is reported by /api/version/. Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups persistence settings.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// DB holds the database connection string: a PostgreSQL DSN on the server
// and a SQLite file path on the client.
type DB struct {
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Server holds listener settings of the purchase server.
type Server struct {
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`
	// RequestTimeout bounds regular API requests; streams are exempt.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds the client's view of the purchase server.
type Adapter struct {
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds background job settings of the client.
type Workers struct {
	// RefreshInterval is how often entitlements are polled.
	// Env: WORKERS_REFRESH_INTERVAL
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL"`
}

// Game holds local gameplay preferences.
type Game struct {
	// Theme is the initially selected theme. Env: GAME_THEME
	Theme string `env:"THEME"`
	// Mute disables sound effects. Env: GAME_MUTE
	Mute bool `env:"MUTE"`
	// LogFile overrides the client log location. Env: GAME_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   "go-gambit",
			TokenDuration: 24 * time.Hour,
			Version:       "1.0.0",
		},
		Server: Server{
			HTTPAddress:    "localhost:8080",
			GRPCAddress:    "localhost:9090",
			RequestTimeout: 15 * time.Second,
		},
		Adapter: Adapter{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: 10 * time.Second,
		},
		Workers: Workers{
			RefreshInterval: time.Minute,
		},
		Game: Game{
			Theme: "chill",
		},
	}
}

// GetStructuredConfig loads and merges configuration from all sources.
// args are the command-line arguments without the program name.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}

// GetServerConfig loads configuration and checks the server requirements.
func GetServerConfig(args []string) (*StructuredConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, err
	}
	return cfg, cfg.validate()
}
