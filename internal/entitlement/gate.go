// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package entitlement decides which premium content is unlocked and keeps
// the client's current entitlement snapshot.
package entitlement

import (
	"time"

	"github.com/MKhiriev/go-gambit/models"
)

// UnlockedPrompts returns the premium prompts available to a customer
// holding snap at now.
//
// Without an active [models.ProEntitlement] the result is empty. Otherwise
// it is the concatenation of all pack prompts in pack order, with later
// prompts whose text was already seen dropped. The result is never nil.
func UnlockedPrompts(snap models.EntitlementSnapshot, now time.Time, packs []models.Pack) []models.Prompt {
	if !snap.HasPro(now) {
		return []models.Prompt{}
	}

	seen := make(map[string]struct{})
	out := make([]models.Prompt, 0)
	for _, pack := range packs {
		for _, p := range pack.Prompts {
			if _, dup := seen[p.Text]; dup {
				continue
			}
			seen[p.Text] = struct{}{}
			p.Premium = true
			out = append(out, p)
		}
	}
	return out
}

// Gate binds [UnlockedPrompts] to a live [State] and a fixed set of packs.
type Gate struct {
	state *State
	packs []models.Pack
	now   func() time.Time
}

// NewGate creates a gate over state and packs.
func NewGate(state *State, packs []models.Pack) *Gate {
	return &Gate{state: state, packs: packs, now: time.Now}
}

// UnlockedPrompts evaluates the current snapshot.
func (g *Gate) UnlockedPrompts() []models.Prompt {
	return UnlockedPrompts(g.state.Current(), g.now(), g.packs)
}

// Active reports whether premium content is currently unlocked.
func (g *Gate) Active() bool {
	return g.state.Current().HasPro(g.now())
}
