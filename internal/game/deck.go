// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package game

import (
	"slices"

	"github.com/MKhiriev/go-gambit/models"
)

// NoPromptsText is shown when the deck has run out of cards.
const NoPromptsText = "No more prompts! Exit to setup to reshuffle the deck."

// CustomCategory is the category assigned to prompts typed in by players.
const CustomCategory = "custom"

// Deck is a shuffled, draw-without-replacement pile of prompts.
// A Deck is not safe for concurrent use.
type Deck struct {
	prompts []models.Prompt
	rnd     Source
}

// BuildDeck returns a new deck holding a shuffled copy of prompts.
// A nil rnd uses the process-wide generator.
func BuildDeck(prompts []models.Prompt, rnd Source) *Deck {
	if rnd == nil {
		rnd = globalSource{}
	}
	cards := slices.Clone(prompts)
	shuffle(cards, rnd)
	return &Deck{prompts: cards, rnd: rnd}
}

// Len returns the number of cards left.
func (d *Deck) Len() int {
	return len(d.prompts)
}

// Remaining returns a copy of the cards left in the deck.
func (d *Deck) Remaining() []models.Prompt {
	return slices.Clone(d.prompts)
}

// Next removes a random card from the deck and resolves it for players.
// On an empty deck it returns a card with [NoPromptsText] and false.
func (d *Deck) Next(players []models.Player) (models.Card, bool) {
	if len(d.prompts) == 0 {
		return models.Card{Text: NoPromptsText}, false
	}

	i := d.rnd.IntN(len(d.prompts))
	p := d.prompts[i]
	d.prompts = slices.Delete(d.prompts, i, i+1)

	if p.Type == models.PromptCustom {
		return models.Card{Text: p.Text, Prompt: p}, true
	}
	return models.Card{Text: Resolve(p.Text, players, d.rnd), Prompt: p}, true
}

// AddCustom inserts a custom prompt at a random position.
// Custom text is never treated as a template.
func (d *Deck) AddCustom(text string) models.Prompt {
	p := NewCustomPrompt(text)
	i := d.rnd.IntN(len(d.prompts) + 1)
	d.prompts = slices.Insert(d.prompts, i, p)
	return p
}

// NewCustomPrompt wraps free text typed in by players.
func NewCustomPrompt(text string) models.Prompt {
	return models.Prompt{
		Text:     text,
		Category: CustomCategory,
		Chaos:    1,
		Type:     models.PromptCustom,
	}
}
