// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-gambit/internal/audio"
	"github.com/MKhiriev/go-gambit/internal/game"
)

func (m appModel) updatePlaying(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.addingCustom {
		switch {
		case key.Matches(msg, keys.enter):
			model, cmd := m.submitCustomPrompt()
			if next, ok := model.(appModel); ok && next.alert == nil {
				next.addingCustom = false
				next.customInput.Blur()
				return next, cmd
			}
			return model, cmd
		case key.Matches(msg, keys.esc):
			m.addingCustom = false
			m.customInput.Reset()
			m.customInput.Blur()
			return m, nil
		}
		return m.updateInputs(msg)
	}

	switch {
	case key.Matches(msg, keys.next):
		return m.drawCard()
	case key.Matches(msg, keys.custom):
		m.addingCustom = true
		return m, m.customInput.Focus()
	case key.Matches(msg, keys.copy):
		if !m.hasCard || m.deckEmpty {
			return m, nil
		}
		return m, copyCmd(m.card.Text)
	case key.Matches(msg, keys.esc), key.Matches(msg, keys.quit):
		if err := m.session.Exit(); err != nil {
			return m.showAlert(err)
		}
		m.screen = screenSetup
		m.hasCard, m.deckEmpty = false, false
		return m.setFocus(focusRoster)
	}
	return m, nil
}

func (m appModel) drawCard() (tea.Model, tea.Cmd) {
	card, ok, err := m.session.Next()
	if err != nil {
		return m.showAlert(err)
	}
	m.card = card
	m.hasCard = true
	m.deckEmpty = !ok
	if ok {
		m.audio.PlayEffect(audio.EffectCard)
	}
	return m, nil
}

func (m appModel) viewPlaying() string {
	var b strings.Builder

	switch {
	case !m.hasCard:
		b.WriteString(helpStyle.Render("Press space to draw a card"))
	case m.deckEmpty:
		b.WriteString(cardStyle.Render(game.NoPromptsText))
	default:
		b.WriteString(cardStyle.Render(m.card.Text))
		b.WriteString("\n")
		meta := string(m.card.Prompt.Type)
		if m.card.Prompt.Timer != nil {
			meta += fmt.Sprintf(" • %ds", *m.card.Prompt.Timer)
		}
		if m.card.Prompt.Premium {
			meta += " • " + proBadgeStyle.Render("PRO")
		}
		b.WriteString(helpStyle.Render(meta))
	}
	fmt.Fprintf(&b, "\n\nCards left: %d", m.session.DeckSize())

	if m.addingCustom {
		b.WriteString("\n\n")
		b.WriteString(m.customInput.View())
		return renderPage("PLAYING • "+m.session.Theme().Title(), b.String(), "enter: add prompt • esc: cancel")
	}
	return renderPage("PLAYING • "+m.session.Theme().Title(), b.String(),
		"space/n: next • a: add prompt • c: copy • v: about • esc: back to setup")
}
