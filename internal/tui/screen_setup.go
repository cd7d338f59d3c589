// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-gambit/internal/audio"
	"github.com/MKhiriev/go-gambit/models"
)

func (m appModel) updateSetup(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.tab):
		return m.setFocus((m.focus + 1) % focusCount)
	case key.Matches(msg, keys.backtab):
		return m.setFocus((m.focus + focusCount - 1) % focusCount)
	}

	if m.focus != focusRoster && key.Matches(msg, keys.esc) {
		return m.setFocus(focusRoster)
	}

	switch m.focus {
	case focusName:
		if key.Matches(msg, keys.enter) {
			if _, err := m.session.AddPlayer(m.nameInput.Value()); err != nil {
				return m.showAlert(err)
			}
			m.nameInput.Reset()
			m.rosterCursor = len(m.session.Players()) - 1
			return m, nil
		}
		return m.updateInputs(msg)

	case focusCustom:
		if key.Matches(msg, keys.enter) {
			return m.submitCustomPrompt()
		}
		return m.updateInputs(msg)
	}

	players := m.session.Players()
	switch {
	case key.Matches(msg, keys.quit), key.Matches(msg, keys.esc):
		return m, tea.Quit
	case key.Matches(msg, keys.up):
		if m.rosterCursor > 0 {
			m.rosterCursor--
		}
	case key.Matches(msg, keys.down):
		if m.rosterCursor < len(players)-1 {
			m.rosterCursor++
		}
	case key.Matches(msg, keys.remove):
		if len(players) == 0 {
			return m, nil
		}
		if err := m.session.RemovePlayer(players[m.rosterCursor].ID); err != nil {
			return m.showAlert(err)
		}
		m.rosterCursor = min(m.rosterCursor, max(len(players)-2, 0))
	case key.Matches(msg, keys.theme):
		if err := m.session.SelectTheme(nextTheme(m.session.Theme())); err != nil {
			return m.showAlert(err)
		}
	case key.Matches(msg, keys.start), key.Matches(msg, keys.enter):
		return m.startGame()
	case key.Matches(msg, keys.store):
		return m.openStore()
	}
	return m, nil
}

func (m appModel) setFocus(focus setupFocus) (tea.Model, tea.Cmd) {
	m.focus = focus
	m.nameInput.Blur()
	m.customInput.Blur()

	switch focus {
	case focusName:
		return m, m.nameInput.Focus()
	case focusCustom:
		return m, m.customInput.Focus()
	}
	return m, nil
}

func (m appModel) startGame() (tea.Model, tea.Cmd) {
	if err := m.session.Start(); err != nil {
		return m.showAlert(err)
	}
	m.screen = screenPlaying
	m.hasCard, m.deckEmpty, m.addingCustom = false, false, false
	m.nameInput.Blur()
	m.customInput.Blur()
	m.audio.PlayEffect(audio.EffectStart)
	return m.drawCard()
}

func (m appModel) submitCustomPrompt() (tea.Model, tea.Cmd) {
	if err := m.session.AddCustomPrompt(m.customInput.Value()); err != nil {
		return m.showAlert(err)
	}
	m.customInput.Reset()
	return m.setStatus("Prompt added")
}

func nextTheme(current models.ThemePack) models.ThemePack {
	themes := models.Themes()
	i := slices.Index(themes, current)
	return themes[(i+1)%len(themes)]
}

func (m appModel) viewSetup() string {
	var b strings.Builder

	theme := m.session.Theme().Title()
	if m.pro {
		theme += "  " + proBadgeStyle.Render("PRO")
	}
	fmt.Fprintf(&b, "Theme: %s\n", theme)
	fmt.Fprintf(&b, "Cards in deck: %d\n\n", m.session.DeckSize())

	b.WriteString(m.nameInput.View())
	b.WriteString("\n\n")

	players := m.session.Players()
	if len(players) == 0 {
		b.WriteString(helpStyle.Render("No players yet. Add at least 2 to start."))
		b.WriteString("\n")
	}
	for i, p := range players {
		line := "  " + renderAvatar(p)
		if m.focus == focusRoster && i == m.rosterCursor {
			line = selectedStyle.Render("> ") + renderAvatar(p)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.customInput.View())
	if n := len(m.session.CustomPrompts()); n > 0 {
		fmt.Fprintf(&b, "\n%s", helpStyle.Render(fmt.Sprintf("%d custom prompts", n)))
	}

	hotKeys := "tab: switch field • enter: add"
	if m.focus == focusRoster {
		hotKeys = "tab: switch field • ↑/↓: select • d: remove • t: theme • s: start • p: store • v: about • q: quit"
	}
	return renderPage("GO GAMBIT", b.String(), hotKeys)
}
