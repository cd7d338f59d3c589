// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package notify fans entitlement changes out to the open event streams of
// a customer.
package notify

import (
	"sync"
	"time"

	"github.com/MKhiriev/go-gambit/internal/logger"
	"github.com/MKhiriev/go-gambit/models"
)

const (
	// SubscriberBuffer is the channel capacity of every subscriber.
	SubscriberBuffer = 10
	// DefaultSendTimeout is how long Publish waits on a full subscriber.
	DefaultSendTimeout = time.Second
)

type subscriber chan models.EntitlementSnapshot

// Hub keeps the subscribers of every customer.
//
// Publish never holds the lock while sending; a subscriber that stays full
// for longer than the send timeout misses the update.
type Hub struct {
	mu          sync.RWMutex
	subs        map[int64]map[subscriber]struct{}
	sendTimeout time.Duration
	logger      *logger.Logger
}

func NewHub(logger *logger.Logger) *Hub {
	return &Hub{
		subs:        make(map[int64]map[subscriber]struct{}),
		sendTimeout: DefaultSendTimeout,
		logger:      logger,
	}
}

// Subscribe registers a stream for customerID. The returned function
// unregisters it; the channel is not closed, readers stop on their own
// context.
func (h *Hub) Subscribe(customerID int64) (<-chan models.EntitlementSnapshot, func()) {
	ch := make(subscriber, SubscriberBuffer)

	h.mu.Lock()
	if h.subs[customerID] == nil {
		h.subs[customerID] = make(map[subscriber]struct{})
	}
	h.subs[customerID][ch] = struct{}{}
	count := len(h.subs[customerID])
	h.mu.Unlock()

	if count > 1 {
		h.logger.Debug().Int64("customer_id", customerID).Int("streams", count).Msg("customer has several open streams")
	}

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()
			delete(h.subs[customerID], ch)
			if len(h.subs[customerID]) == 0 {
				delete(h.subs, customerID)
			}
		})
	}
}

// Publish delivers snap to every stream of customerID and returns how many
// received it.
func (h *Hub) Publish(customerID int64, snap models.EntitlementSnapshot) int {
	h.mu.RLock()
	targets := make([]subscriber, 0, len(h.subs[customerID]))
	for ch := range h.subs[customerID] {
		targets = append(targets, ch)
	}
	h.mu.RUnlock()

	delivered := 0
	for _, ch := range targets {
		timer := time.NewTimer(h.sendTimeout)
		select {
		case ch <- snap.Clone():
			delivered++
		case <-timer.C:
			h.logger.Warn().Int64("customer_id", customerID).Msg("dropping entitlement update for slow stream")
		}
		timer.Stop()
	}
	return delivered
}

// Subscribers returns the number of open streams of customerID.
func (h *Hub) Subscribers(customerID int64) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs[customerID])
}
