// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-gambit/internal/service"
	"github.com/MKhiriev/go-gambit/models"
)

const statusLifetime = 2 * time.Second

// clipboardWrite is swapped in tests; headless CI has no clipboard.
var clipboardWrite = clipboard.WriteAll

func loadOfferingsCmd(ctx context.Context, purchases service.ClientPurchaseService) tea.Cmd {
	return func() tea.Msg {
		packages, err := purchases.Offerings(ctx)
		return offeringsLoadedMsg{packages: packages, err: err}
	}
}

func purchaseCmd(ctx context.Context, purchases service.ClientPurchaseService, pkg models.Package, confirmed bool) tea.Cmd {
	return func() tea.Msg {
		snap, err := purchases.Purchase(ctx, pkg, confirmed)
		return purchaseDoneMsg{pkg: pkg, snap: snap, err: err}
	}
}

func restoreCmd(ctx context.Context, purchases service.ClientPurchaseService) tea.Cmd {
	return func() tea.Msg {
		snap, err := purchases.Restore(ctx)
		return restoreDoneMsg{snap: snap, err: err}
	}
}

func deleteAccountCmd(ctx context.Context, purchases service.ClientPurchaseService) tea.Cmd {
	return func() tea.Msg {
		return accountDeletedMsg{err: purchases.DeleteAccount(ctx)}
	}
}

// waitForEntitlements blocks on the next snapshot from the state
// subscription. It is re-issued after every delivery.
func waitForEntitlements(updates <-chan models.EntitlementSnapshot) tea.Cmd {
	if updates == nil {
		return nil
	}
	return func() tea.Msg {
		snap, ok := <-updates
		if !ok {
			return nil
		}
		return entitlementsChangedMsg{snap: snap}
	}
}

func copyCmd(text string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{err: clipboardWrite(text)}
	}
}

func clearStatusAfter(seq int) tea.Cmd {
	return tea.Tick(statusLifetime, func(time.Time) tea.Msg {
		return clearStatusMsg{seq: seq}
	})
}
