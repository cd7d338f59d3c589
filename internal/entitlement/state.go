// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package entitlement

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-gambit/models"
)

// State holds the latest entitlement snapshot known to the client and
// fans changes out to subscribers.
//
// Every subscriber channel has a buffer of one and always holds the most
// recent snapshot: a slow reader skips intermediate updates but never
// blocks [State.Apply].
type State struct {
	mu       sync.RWMutex
	snapshot models.EntitlementSnapshot
	subs     map[int]chan models.EntitlementSnapshot
	nextID   int
}

// NewState creates a state seeded with initial.
func NewState(initial models.EntitlementSnapshot) *State {
	return &State{
		snapshot: initial.Clone(),
		subs:     make(map[int]chan models.EntitlementSnapshot),
	}
}

// Current returns a copy of the latest snapshot.
func (s *State) Current() models.EntitlementSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot.Clone()
}

// Apply replaces the snapshot wholesale and notifies subscribers.
func (s *State) Apply(snap models.EntitlementSnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot = snap.Clone()
	for _, ch := range s.subs {
		deliverLatest(ch, s.snapshot.Clone())
	}
}

// Subscribe returns a channel receiving every applied snapshot and a
// function that cancels the subscription and closes the channel.
func (s *State) Subscribe() (<-chan models.EntitlementSnapshot, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	ch := make(chan models.EntitlementSnapshot, 1)
	s.subs[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			delete(s.subs, id)
			close(ch)
		})
	}
}

// Run applies snapshots from updates until ctx is done or updates is closed.
func (s *State) Run(ctx context.Context, updates <-chan models.EntitlementSnapshot) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case snap, ok := <-updates:
			if !ok {
				return nil
			}
			s.Apply(snap)
		}
	}
}

func deliverLatest(ch chan models.EntitlementSnapshot, snap models.EntitlementSnapshot) {
	select {
	case ch <- snap:
		return
	default:
	}
	// drop the stale value and retry once
	select {
	case <-ch:
	default:
	}
	select {
	case ch <- snap:
	default:
	}
}
