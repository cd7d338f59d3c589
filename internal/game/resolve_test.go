// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package game

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-gambit/models"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name     string
		template string
		players  []models.Player
		want     []string
	}{
		{
			name:     "no placeholders",
			template: "everyone drinks",
			players:  []models.Player{{Name: "Ann"}},
			want:     []string{"everyone drinks"},
		},
		{
			name:     "no players falls back",
			template: "{player} and {player2}",
			want:     []string{"Someone and Someone else"},
		},
		{
			name:     "single player",
			template: "{player} and {player2}",
			players:  []models.Player{{Name: "Ann"}},
			want:     []string{"Ann and Someone else"},
		},
		{
			name:     "duplicate names count once",
			template: "{player} and {player2}",
			players:  []models.Player{{Name: "Ann"}, {Name: "Ann"}},
			want:     []string{"Ann and Someone else"},
		},
		{
			name:     "two players are distinct",
			template: "{player} hugs {player2}",
			players:  []models.Player{{Name: "Ann"}, {Name: "Bob"}},
			want:     []string{"Ann hugs Bob", "Bob hugs Ann"},
		},
		{
			name:     "repeated token uses same player",
			template: "{player}, yes {player}",
			players:  []models.Player{{Name: "Ann"}},
			want:     []string{"Ann, yes Ann"},
		},
		{
			name:     "placeholder-like name is not expanded",
			template: "{player} waves",
			players:  []models.Player{{Name: "{player2}"}},
			want:     []string{"{player2} waves"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(tt.template, tt.players, NewSeededSource(11))
			assert.Contains(t, tt.want, got)
		})
	}
}

func TestResolve_NeverPicksSamePlayerTwice(t *testing.T) {
	players := []models.Player{{Name: "Ann"}, {Name: "Bob"}, {Name: "Cid"}}
	rnd := NewSeededSource(123)
	for range 200 {
		got := Resolve("{player}|{player2}", players, rnd)
		var a, b string
		for i := range got {
			if got[i] == '|' {
				a, b = got[:i], got[i+1:]
				break
			}
		}
		assert.NotEqual(t, a, b)
	}
}

func TestAvatarFor_IsStableAndCaseInsensitive(t *testing.T) {
	assert.Equal(t, AvatarFor("Ann"), AvatarFor("ann"))
	assert.NotEmpty(t, AvatarFor("Bob").Glyph)
	assert.NotEmpty(t, AvatarFor("Bob").Color)
}
