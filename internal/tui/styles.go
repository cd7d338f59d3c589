// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/go-gambit/models"
)

var (
	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#C77DFF"))
	helpStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF6B6B"))
	statusStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#6BCB77"))
	proBadgeStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFD93D"))
	selectedStyle   = lipgloss.NewStyle().Bold(true)
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
	bannerStyle     = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("#FF9F1C")).Padding(0, 1)
	cardStyle       = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(lipgloss.Color("#4D96FF")).
			Padding(1, 3).
			Width(56).
			Align(lipgloss.Center)
)

func renderAvatar(p models.Player) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(p.Avatar.Color)).Render(p.Avatar.Glyph + " " + p.Name)
}
