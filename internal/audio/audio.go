// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package audio provides the sound-effect service used by the game UI.
package audio

import (
	"io"
	"strings"
	"sync"
)

// Effect is a sound cue triggered by the UI.
type Effect int

const (
	EffectCard Effect = iota
	EffectStart
	EffectError
	EffectPurchase
)

func (e Effect) String() string {
	switch e {
	case EffectCard:
		return "card"
	case EffectStart:
		return "start"
	case EffectError:
		return "error"
	case EffectPurchase:
		return "purchase"
	default:
		return "unknown"
	}
}

// Player plays sound effects. Implementations must not block the caller.
type Player interface {
	PlayEffect(effect Effect)
}

type nopPlayer struct{}

func (nopPlayer) PlayEffect(Effect) {}

// Nop returns a player that stays silent.
func Nop() Player {
	return nopPlayer{}
}

// bell rings the terminal bell a different number of times per effect.
var bellPattern = map[Effect]int{
	EffectCard:     1,
	EffectStart:    2,
	EffectError:    1,
	EffectPurchase: 3,
}

type terminalBell struct {
	mu sync.Mutex
	w  io.Writer
}

// NewTerminalBell returns a player that writes BEL characters to w.
// A nil writer yields [Nop].
func NewTerminalBell(w io.Writer) Player {
	if w == nil {
		return Nop()
	}
	return &terminalBell{w: w}
}

func (b *terminalBell) PlayEffect(effect Effect) {
	n, ok := bellPattern[effect]
	if !ok {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	// errors are ignored, sound is best-effort
	_, _ = io.WriteString(b.w, strings.Repeat("\a", n))
}

// Recorder remembers played effects. Useful in tests.
type Recorder struct {
	mu      sync.Mutex
	effects []Effect
}

func (r *Recorder) PlayEffect(effect Effect) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.effects = append(r.effects, effect)
}

// Effects returns the effects played so far.
func (r *Recorder) Effects() []Effect {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Effect, len(r.effects))
	copy(out, r.effects)
	return out
}
