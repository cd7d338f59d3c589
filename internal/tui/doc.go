// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the bubbletea front end of the game: player setup, the
// card screen and the in-app store.
//
// Store errors are shown in a banner the player can retry from; nothing is
// retried automatically. Input errors are dismissible alerts.
package tui
