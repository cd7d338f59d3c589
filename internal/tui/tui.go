// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-gambit/internal/audio"
	"github.com/MKhiriev/go-gambit/internal/entitlement"
	"github.com/MKhiriev/go-gambit/internal/game"
	"github.com/MKhiriev/go-gambit/internal/logger"
	"github.com/MKhiriev/go-gambit/internal/service"
	"github.com/MKhiriev/go-gambit/models"
)

// Deps are the collaborators the UI drives.
type Deps struct {
	Session   *game.Session
	Purchases service.ClientPurchaseService
	State     *entitlement.State
	Audio     audio.Player
	BuildInfo models.AppBuildInfo
	Logger    *logger.Logger
}

type TUI struct {
	deps Deps
	opts []tea.ProgramOption
}

func New(deps Deps, opts ...tea.ProgramOption) *TUI {
	return &TUI{deps: deps, opts: opts}
}

// Run shows the UI until the player quits or ctx is cancelled.
func (t *TUI) Run(ctx context.Context) error {
	updates, unsubscribe := t.deps.State.Subscribe()
	defer unsubscribe()

	model := newAppModel(ctx, t.deps, updates)

	opts := append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, t.opts...)
	if _, err := tea.NewProgram(model, opts...).Run(); err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
