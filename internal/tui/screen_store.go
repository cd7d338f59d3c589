// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m appModel) updateStore(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.loading {
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.esc), key.Matches(msg, keys.quit):
		m.screen = screenSetup
		return m.setFocus(m.focus)
	case key.Matches(msg, keys.up):
		if m.storeCursor > 0 {
			m.storeCursor--
		}
	case key.Matches(msg, keys.down):
		if m.storeCursor < len(m.packages)-1 {
			m.storeCursor++
		}
	case key.Matches(msg, keys.enter):
		if len(m.packages) == 0 {
			return m, nil
		}
		m.pending = m.packages[m.storeCursor]
		m.confirm = confirmModel{
			message: fmt.Sprintf("Buy %s for %s?", m.pending.Title, m.pending.DisplayPrice()),
			action:  confirmPurchase,
		}
	case key.Matches(msg, keys.restore):
		m.loading = true
		return m, tea.Batch(m.spinner.Tick, restoreCmd(m.ctx, m.purchases))
	case key.Matches(msg, keys.deleteAcc):
		m.confirm = confirmModel{
			message: "Delete your store account and forget this device?",
			action:  confirmDeleteAccount,
		}
	}
	return m, nil
}

func (m appModel) viewStore() string {
	var b strings.Builder

	if m.pro {
		b.WriteString(proBadgeStyle.Render("Pro is active. Thanks for the support!"))
		b.WriteString("\n\n")
	}

	switch {
	case m.loading:
		b.WriteString(m.spinner.View() + " Talking to the store...")
	case !m.offered:
		b.WriteString(helpStyle.Render("Offerings are not loaded"))
	case len(m.packages) == 0:
		b.WriteString(helpStyle.Render("Nothing is on sale right now. Check back later."))
	default:
		for i, p := range m.packages {
			line := fmt.Sprintf("%-28s %12s", fitText(p.Title, 28), p.DisplayPrice())
			if i == m.storeCursor {
				b.WriteString(selectedStyle.Render("> " + line))
			} else {
				b.WriteString("  " + line)
			}
			b.WriteString("\n")
		}
	}

	return renderPage("STORE", b.String(), "↑/↓: select • enter: buy • r: restore • x: delete account • esc: back")
}
