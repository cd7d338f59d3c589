// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package game

import (
	"strings"

	"github.com/MKhiriev/go-gambit/models"
)

// Labels used when there are not enough players to fill a template.
const (
	FallbackPlayer       = "Someone"
	FallbackSecondPlayer = "Someone else"
)

// Resolve substitutes player placeholders in template.
//
// [models.PlayerToken] gets a random player and [models.SecondPlayerToken]
// a different one. Names are substituted in a single pass so a name that
// itself looks like a placeholder is left untouched.
func Resolve(template string, players []models.Player, rnd Source) string {
	if !strings.Contains(template, models.PlayerToken) && !strings.Contains(template, models.SecondPlayerToken) {
		return template
	}
	if rnd == nil {
		rnd = globalSource{}
	}

	names := distinctNames(players)
	first, second := FallbackPlayer, FallbackSecondPlayer
	if len(names) > 0 {
		fi := rnd.IntN(len(names))
		first = names[fi]
		if len(names) > 1 {
			si := rnd.IntN(len(names) - 1)
			if si >= fi {
				si++
			}
			second = names[si]
		}
	}

	return strings.NewReplacer(
		models.SecondPlayerToken, second,
		models.PlayerToken, first,
	).Replace(template)
}

func distinctNames(players []models.Player) []string {
	seen := make(map[string]struct{}, len(players))
	names := make([]string, 0, len(players))
	for _, p := range players {
		if p.Name == "" {
			continue
		}
		if _, ok := seen[p.Name]; ok {
			continue
		}
		seen[p.Name] = struct{}{}
		names = append(names, p.Name)
	}
	return names
}
