// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package audio

import (
	"os"
	"sync"
)

// Terminal is a terminal file shared by the bell and the UI renderer.
// Writes are serialised, so a bell never lands inside a rendered frame.
// It still exposes the file descriptor for size and raw-mode detection.
type Terminal struct {
	*os.File
	mu sync.Mutex
}

// NewTerminal wraps f, usually os.Stdout.
func NewTerminal(f *os.File) *Terminal {
	return &Terminal{File: f}
}

func (t *Terminal) Write(p []byte) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.File.Write(p)
}

// WriteString shadows the method promoted from *os.File, which would bypass the lock.
func (t *Terminal) WriteString(s string) (int, error) {
	return t.Write([]byte(s))
}
