// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package entitlement

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-gambit/models"
)

func proSnapshot(expiresAt *time.Time) models.EntitlementSnapshot {
	return models.EntitlementSnapshot{Entitlements: map[string]models.Entitlement{
		models.ProEntitlement: {Identifier: models.ProEntitlement, ExpiresAt: expiresAt},
	}}
}

func testPacks() []models.Pack {
	return []models.Pack{
		{ID: "a", Prompts: []models.Prompt{{Text: "one"}, {Text: "two"}, {Text: "one"}}},
		{ID: "b", Prompts: []models.Prompt{{Text: "three"}, {Text: "two"}}},
		{ID: "empty"},
	}
}

func TestUnlockedPrompts_Inactive(t *testing.T) {
	now := time.Now()
	past := now.Add(-time.Minute)

	for name, snap := range map[string]models.EntitlementSnapshot{
		"zero":    {},
		"expired": proSnapshot(&past),
		"other":   {Entitlements: map[string]models.Entitlement{"ads_free": {}}},
	} {
		t.Run(name, func(t *testing.T) {
			got := UnlockedPrompts(snap, now, testPacks())
			require.NotNil(t, got)
			assert.Empty(t, got)
		})
	}
}

func TestUnlockedPrompts_ActiveDedupsInFirstSeenOrder(t *testing.T) {
	got := UnlockedPrompts(proSnapshot(nil), time.Now(), testPacks())

	want := []models.Prompt{
		{Text: "one", Premium: true},
		{Text: "two", Premium: true},
		{Text: "three", Premium: true},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unlocked prompts mismatch (-want +got):\n%s", diff)
	}
}

func TestUnlockedPrompts_NoPacks(t *testing.T) {
	got := UnlockedPrompts(proSnapshot(nil), time.Now(), nil)
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestGate_FollowsStateChanges(t *testing.T) {
	state := NewState(models.EntitlementSnapshot{})
	gate := NewGate(state, testPacks())

	assert.False(t, gate.Active())
	assert.Empty(t, gate.UnlockedPrompts())

	state.Apply(proSnapshot(nil))
	assert.True(t, gate.Active())
	assert.Len(t, gate.UnlockedPrompts(), 3)

	state.Apply(models.EntitlementSnapshot{})
	assert.Empty(t, gate.UnlockedPrompts())
}

func TestGate_ExpiryIsEvaluatedAtCallTime(t *testing.T) {
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	exp := base.Add(time.Hour)
	gate := NewGate(NewState(proSnapshot(&exp)), testPacks())

	gate.now = func() time.Time { return base }
	assert.True(t, gate.Active())

	gate.now = func() time.Time { return exp }
	assert.False(t, gate.Active())
}
