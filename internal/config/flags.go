// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds a host and port. It implements flag.Value.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses command-line arguments into a partial config.
//
// Flags:
//
//	-a server HTTP address host:port
//	-grpc-address server gRPC address host:port
//	-d database DSN (PostgreSQL on the server, SQLite path on the client)
//	-c/-config JSON config file path
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token lifetime (e.g. "24h")
//	-request-timeout request timeout (e.g. "15s")
//	-hash-key HMAC key for signed purchase requests
//	-server purchase server address used by the client
//	-refresh-interval entitlement polling interval
//	-theme initial theme (chill, drinking, sexy)
//	-mute disable sound effects
//	-log-file client log file path
func ParseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("gambit", flag.ContinueOnError)

	var serverAddress, grpcServerAddress, adapterAddress NetAddress
	var databaseDSN, jsonConfigPath string
	var tokenSignKey, tokenIssuer, hashKey string
	var tokenDuration, requestTimeout, refreshInterval time.Duration
	var theme, logFile string
	var mute bool

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.Var(&grpcServerAddress, "grpc-address", "Net grpc server address host:port")
	fs.Var(&adapterAddress, "server", "Purchase server address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 24h)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 15s)")
	fs.StringVar(&hashKey, "hash-key", "", "Request signing key")
	fs.DurationVar(&refreshInterval, "refresh-interval", 0, "Entitlement refresh interval (e.g., 1m)")
	fs.StringVar(&theme, "theme", "", "Initial theme: chill, drinking or sexy")
	fs.BoolVar(&mute, "mute", false, "Disable sound effects")
	fs.StringVar(&logFile, "log-file", "", "Client log file path")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
			HashKey:       hashKey,
		},
		Storage: Storage{
			DB: DB{DSN: databaseDSN},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			GRPCAddress:    grpcServerAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    adapterAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Workers: Workers{RefreshInterval: refreshInterval},
		Game: Game{
			Theme:   theme,
			Mute:    mute,
			LogFile: logFile,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns host:port, or an empty string for an unset address.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses host:port. The host must be "localhost" or an IP address.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1..65535")
	}

	if host != "localhost" && net.ParseIP(host) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host = host
	a.Port = port
	return nil
}
