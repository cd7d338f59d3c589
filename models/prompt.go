// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// Placeholder tokens recognised inside prompt templates.
const (
	// PlayerToken is replaced with the name of a randomly chosen player.
	PlayerToken = "{player}"
	// SecondPlayerToken is replaced with the name of a second, distinct player.
	SecondPlayerToken = "{player2}"
)

// ThemePack identifies one of the built-in content themes.
type ThemePack string

const (
	ThemeDrinking ThemePack = "drinking"
	ThemeChill    ThemePack = "chill"
	ThemeSexy     ThemePack = "sexy"
)

// DefaultTheme is selected when no theme has been configured.
const DefaultTheme = ThemeChill

// Themes returns all built-in themes in display order.
func Themes() []ThemePack {
	return []ThemePack{ThemeChill, ThemeDrinking, ThemeSexy}
}

// Valid reports whether t is one of the built-in themes.
func (t ThemePack) Valid() bool {
	switch t {
	case ThemeDrinking, ThemeChill, ThemeSexy:
		return true
	default:
		return false
	}
}

// Title returns a human-readable name of the theme.
func (t ThemePack) Title() string {
	switch t {
	case ThemeDrinking:
		return "Drinking"
	case ThemeChill:
		return "Chill"
	case ThemeSexy:
		return "Sexy"
	default:
		return string(t)
	}
}

// PromptType classifies what a prompt asks the players to do.
type PromptType string

const (
	PromptDare      PromptType = "dare"
	PromptTruth     PromptType = "truth"
	PromptRule      PromptType = "rule"
	PromptVote      PromptType = "vote"
	PromptChallenge PromptType = "challenge"
	PromptCustom    PromptType = "custom"
)

// Prompt is a single card template.
//
// Text may contain [PlayerToken] and [SecondPlayerToken]; they are resolved
// to player names at draw time. Chaos ranges from 1 (mild) to 5 (wild).
// Timer, when set, is the suggested number of seconds for the task.
type Prompt struct {
	Text     string     `json:"text"`
	Category string     `json:"category"`
	Chaos    int        `json:"chaos"`
	Type     PromptType `json:"type"`
	Timer    *int       `json:"timer,omitempty"`
	Premium  bool       `json:"premium,omitempty"`
}

// IsTemplate reports whether the prompt text references any player placeholder.
func (p Prompt) IsTemplate() bool {
	return strings.Contains(p.Text, PlayerToken) || strings.Contains(p.Text, SecondPlayerToken)
}

// Pack is a named collection of premium prompts.
type Pack struct {
	ID      string   `json:"id"`
	Title   string   `json:"title"`
	Prompts []Prompt `json:"prompts"`
}

// Card is a prompt drawn from a deck with its placeholders resolved.
type Card struct {
	// Text is the resolved, display-ready string.
	Text string
	// Prompt is the template the card was drawn from.
	Prompt Prompt
}
