// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package notify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/MKhiriev/go-gambit/internal/logger"
	"github.com/MKhiriev/go-gambit/models"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestHub_PublishReachesOnlyThatCustomer(t *testing.T) {
	h := NewHub(logger.Nop())
	a, cancelA := h.Subscribe(1)
	defer cancelA()
	b, cancelB := h.Subscribe(2)
	defer cancelB()

	snap := models.EntitlementSnapshot{FetchedAt: time.Unix(10, 0)}
	assert.Equal(t, 1, h.Publish(1, snap))

	select {
	case got := <-a:
		assert.Equal(t, snap.FetchedAt, got.FetchedAt)
	default:
		t.Fatal("subscriber of customer 1 got nothing")
	}
	select {
	case <-b:
		t.Fatal("subscriber of customer 2 must not receive")
	default:
	}
}

func TestHub_MultipleStreamsPerCustomer(t *testing.T) {
	h := NewHub(logger.Nop())
	_, c1 := h.Subscribe(1)
	_, c2 := h.Subscribe(1)

	assert.Equal(t, 2, h.Subscribers(1))
	assert.Equal(t, 2, h.Publish(1, models.EntitlementSnapshot{}))

	c1()
	c1()
	assert.Equal(t, 1, h.Subscribers(1))
	c2()
	assert.Equal(t, 0, h.Subscribers(1))
	assert.Equal(t, 0, h.Publish(1, models.EntitlementSnapshot{}))
}

func TestHub_SlowSubscriberIsSkipped(t *testing.T) {
	h := NewHub(logger.Nop())
	h.sendTimeout = 10 * time.Millisecond
	ch, cancel := h.Subscribe(1)
	defer cancel()

	for range SubscriberBuffer {
		require.Equal(t, 1, h.Publish(1, models.EntitlementSnapshot{}))
	}

	start := time.Now()
	assert.Equal(t, 0, h.Publish(1, models.EntitlementSnapshot{}))
	assert.Less(t, time.Since(start), time.Second)
	assert.Len(t, ch, SubscriberBuffer)
}
