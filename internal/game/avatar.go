// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package game

import (
	"hash/fnv"
	"strings"

	"github.com/MKhiriev/go-gambit/models"
)

var avatarGlyphs = []string{"🦊", "🐙", "🦄", "🐸", "🐼", "🦁", "🐧", "🐢", "🦉", "🐝", "🐳", "🦖"}

var avatarColors = []string{"#FF6B6B", "#FFD93D", "#6BCB77", "#4D96FF", "#C77DFF", "#FF9F1C", "#2EC4B6", "#E71D36"}

// AvatarFor derives a stable avatar from a player name.
// The same name always maps to the same avatar, regardless of case.
func AvatarFor(name string) models.Avatar {
	h := fnv.New32a()
	_, _ = h.Write([]byte(strings.ToLower(name)))
	sum := h.Sum32()
	return models.Avatar{
		Glyph: avatarGlyphs[sum%uint32(len(avatarGlyphs))],
		Color: avatarColors[(sum/uint32(len(avatarGlyphs)))%uint32(len(avatarColors))],
	}
}
