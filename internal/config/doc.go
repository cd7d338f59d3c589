// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config loads, merges and validates configuration for the
// gambit server and client.
//
// Configuration is assembled from the following sources, later sources
// overriding earlier non-zero fields:
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags
//  4. JSON config file
//
// The entry points are [GetServerConfig] and [GetClientConfig].
package config
