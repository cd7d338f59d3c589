// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package game implements the local party game: the prompt deck and the
// Setup/Playing session state machine.
//
// Nothing in this package talks to the network or the terminal. Randomness
// is injected through [Source] so tests can use a seeded generator.
package game
