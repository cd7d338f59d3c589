// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It identifies the device with the purchase server, seeds the local
// entitlement state, starts the background entitlement workers and runs
// the terminal UI until the player quits.
package client
