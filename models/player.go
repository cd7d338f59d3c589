// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Avatar is the visual token shown next to a player's name.
type Avatar struct {
	Glyph string
	Color string
}

// Player is a participant of a local game session.
//
// ID is generated when the player joins and is used to remove them again.
// Name is trimmed and unique within a session, compared case-insensitively.
type Player struct {
	ID     string
	Name   string
	Avatar Avatar
}
