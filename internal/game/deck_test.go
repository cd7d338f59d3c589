// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package game

import (
	"fmt"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-gambit/models"
)

func plainPrompts(n int) []models.Prompt {
	out := make([]models.Prompt, n)
	for i := range out {
		out[i] = models.Prompt{Text: fmt.Sprintf("prompt %d", i), Type: models.PromptDare, Chaos: 1 + i%5}
	}
	return out
}

func texts(prompts []models.Prompt) []string {
	out := make([]string, len(prompts))
	for i, p := range prompts {
		out[i] = p.Text
	}
	slices.Sort(out)
	return out
}

// ── BuildDeck ────────────────────────────────────────────────────────────────

func TestBuildDeck_KeepsEveryPrompt(t *testing.T) {
	src := plainPrompts(25)
	deck := BuildDeck(src, NewSeededSource(1))

	require.Equal(t, len(src), deck.Len())
	if diff := cmp.Diff(texts(src), texts(deck.Remaining())); diff != "" {
		t.Errorf("deck content mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildDeck_DoesNotMutateInput(t *testing.T) {
	src := plainPrompts(10)
	orig := slices.Clone(src)

	_ = BuildDeck(src, NewSeededSource(7))

	assert.Equal(t, orig, src)
}

func TestBuildDeck_Empty(t *testing.T) {
	deck := BuildDeck(nil, NewSeededSource(1))
	assert.Equal(t, 0, deck.Len())
}

func TestBuildDeck_SameSeedSameOrder(t *testing.T) {
	a := BuildDeck(plainPrompts(20), NewSeededSource(42))
	b := BuildDeck(plainPrompts(20), NewSeededSource(42))
	assert.Equal(t, a.Remaining(), b.Remaining())
}

// ── Next ─────────────────────────────────────────────────────────────────────

func TestDeck_Next_DrawsEveryCardExactlyOnce(t *testing.T) {
	src := plainPrompts(30)
	deck := BuildDeck(src, NewSeededSource(3))

	var drawn []models.Prompt
	for range len(src) {
		before := deck.Len()
		card, ok := deck.Next(nil)
		require.True(t, ok)
		require.Equal(t, before-1, deck.Len())
		drawn = append(drawn, card.Prompt)
	}

	if diff := cmp.Diff(texts(src), texts(drawn)); diff != "" {
		t.Errorf("drawn cards mismatch (-want +got):\n%s", diff)
	}
}

func TestDeck_Next_EmptyDeck(t *testing.T) {
	deck := BuildDeck(plainPrompts(1), NewSeededSource(3))
	_, ok := deck.Next(nil)
	require.True(t, ok)

	card, ok := deck.Next(nil)
	assert.False(t, ok)
	assert.Equal(t, NoPromptsText, card.Text)
	assert.Equal(t, 0, deck.Len())

	// stays exhausted
	card, ok = deck.Next(nil)
	assert.False(t, ok)
	assert.Equal(t, NoPromptsText, card.Text)
}

func TestDeck_Next_ResolvesTemplates(t *testing.T) {
	players := []models.Player{{Name: "Ann"}, {Name: "Bob"}}
	deck := BuildDeck([]models.Prompt{{Text: "{player} dares {player2}"}}, NewSeededSource(5))

	card, ok := deck.Next(players)
	require.True(t, ok)

	assert.NotContains(t, card.Text, models.PlayerToken)
	assert.NotContains(t, card.Text, models.SecondPlayerToken)
	assert.Contains(t, []string{"Ann dares Bob", "Bob dares Ann"}, card.Text)
	assert.Equal(t, "{player} dares {player2}", card.Prompt.Text)
}

// ── AddCustom ────────────────────────────────────────────────────────────────

func TestDeck_AddCustom_GrowsByOne(t *testing.T) {
	deck := BuildDeck(plainPrompts(5), NewSeededSource(9))

	p := deck.AddCustom("everyone swaps seats")

	assert.Equal(t, 6, deck.Len())
	assert.Equal(t, models.PromptCustom, p.Type)
	assert.Contains(t, texts(deck.Remaining()), "everyone swaps seats")
}

func TestDeck_AddCustom_IntoEmptyDeck(t *testing.T) {
	deck := BuildDeck(nil, NewSeededSource(9))
	deck.AddCustom("only card")

	card, ok := deck.Next([]models.Player{{Name: "Ann"}})
	require.True(t, ok)
	assert.Equal(t, "only card", card.Text)
}

func TestDeck_AddCustom_TextIsNotTemplated(t *testing.T) {
	deck := BuildDeck(nil, NewSeededSource(9))
	deck.AddCustom("{player} stays literal")

	card, ok := deck.Next([]models.Player{{Name: "Ann"}, {Name: "Bob"}})
	require.True(t, ok)
	assert.Equal(t, "{player} stays literal", card.Text)
}
