// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// ProEntitlement is the entitlement that unlocks every premium pack.
const ProEntitlement = "pro"

// Entitlement is a single access right granted to a customer.
//
// ExpiresAt is nil for lifetime grants.
type Entitlement struct {
	Identifier string     `json:"identifier"`
	PackageID  int64      `json:"package_id"`
	GrantedAt  time.Time  `json:"granted_at"`
	ExpiresAt  *time.Time `json:"expires_at,omitempty"`
}

// ActiveAt reports whether the entitlement is in effect at the given moment.
func (e Entitlement) ActiveAt(now time.Time) bool {
	return e.ExpiresAt == nil || e.ExpiresAt.After(now)
}

// EntitlementSnapshot is the complete entitlement state of a customer at a
// point in time. Snapshots are always applied wholesale, never merged.
type EntitlementSnapshot struct {
	Entitlements map[string]Entitlement `json:"entitlements"`
	FetchedAt    time.Time              `json:"fetched_at"`
}

// IsActive reports whether the named entitlement is present and unexpired.
func (s EntitlementSnapshot) IsActive(identifier string, now time.Time) bool {
	e, ok := s.Entitlements[identifier]
	return ok && e.ActiveAt(now)
}

// HasPro reports whether the [ProEntitlement] is active.
func (s EntitlementSnapshot) HasPro(now time.Time) bool {
	return s.IsActive(ProEntitlement, now)
}

// Clone returns a deep copy of the snapshot.
func (s EntitlementSnapshot) Clone() EntitlementSnapshot {
	out := EntitlementSnapshot{FetchedAt: s.FetchedAt}
	if s.Entitlements == nil {
		return out
	}
	out.Entitlements = make(map[string]Entitlement, len(s.Entitlements))
	for id, e := range s.Entitlements {
		if e.ExpiresAt != nil {
			expiresAt := *e.ExpiresAt
			e.ExpiresAt = &expiresAt
		}
		out.Entitlements[id] = e
	}
	return out
}

// SnapshotFromGrants builds a snapshot keyed by entitlement identifier.
func SnapshotFromGrants(grants []Grant, now time.Time) EntitlementSnapshot {
	snap := EntitlementSnapshot{
		Entitlements: make(map[string]Entitlement, len(grants)),
		FetchedAt:    now,
	}
	for _, g := range grants {
		snap.Entitlements[g.Entitlement] = Entitlement{
			Identifier: g.Entitlement,
			PackageID:  g.PackageID,
			GrantedAt:  g.GrantedAt,
			ExpiresAt:  g.ExpiresAt,
		}
	}
	return snap
}
