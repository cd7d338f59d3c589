// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package game

import "errors"

var (
	ErrEmptyPlayerName  = errors.New("player name is empty")
	ErrDuplicatePlayer  = errors.New("player with this name already exists")
	ErrPlayerNotFound   = errors.New("player not found")
	ErrNotEnoughPlayers = errors.New("not enough players to start")
	ErrEmptyPrompt      = errors.New("prompt text is empty")
	ErrUnknownTheme     = errors.New("unknown theme")
	ErrNotInSetup       = errors.New("action is only allowed during setup")
	ErrNotPlaying       = errors.New("game is not running")
)
