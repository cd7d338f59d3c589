// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-gambit/internal/adapter"
	"github.com/MKhiriev/go-gambit/internal/audio"
	"github.com/MKhiriev/go-gambit/internal/client"
	"github.com/MKhiriev/go-gambit/internal/config"
	"github.com/MKhiriev/go-gambit/internal/content"
	"github.com/MKhiriev/go-gambit/internal/entitlement"
	"github.com/MKhiriev/go-gambit/internal/game"
	"github.com/MKhiriev/go-gambit/internal/logger"
	"github.com/MKhiriev/go-gambit/internal/service"
	"github.com/MKhiriev/go-gambit/internal/store"
	"github.com/MKhiriev/go-gambit/internal/tui"
	"github.com/MKhiriev/go-gambit/internal/utils"
	"github.com/MKhiriev/go-gambit/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	if len(os.Args) > 1 && (os.Args[1] == "-version" || os.Args[1] == "--version") {
		printBuildInfo()
		return
	}

	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewClientLogger("gambit-client", cfg.Game.LogFile)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	library, err := content.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load prompt catalog")
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, cfg.App, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	localStorage, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}
	defer localStorage.Close()

	state := entitlement.NewState(models.EntitlementSnapshot{})
	services := service.NewClientServices(localStorage, serverAdapter, state, log)

	// the bell and the renderer share one serialised stdout
	terminal := audio.NewTerminal(os.Stdout)
	player := audio.Nop()
	if !cfg.Game.Mute {
		player = audio.NewTerminalBell(terminal)
	}

	ui := tui.New(tui.Deps{
		Session: game.NewSession(library, entitlement.NewGate(state, library.PremiumPacks()), cfg.Game.Theme,
			game.WithIDGenerator(utils.NewUUIDGenerator())),
		Purchases: services.PurchaseService,
		State:     state,
		Audio:     player,
		BuildInfo: models.NewAppBuildInfo(buildVersion, buildDate, buildCommit),
		Logger:    log,
	}, tea.WithOutput(terminal))

	app, err := client.NewApp(services, state, ui, cfg.Workers, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(ctx); err != nil {
		log.Error().Err(err).Msg("client run error")
		stop()
		os.Exit(1)
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
