// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/MKhiriev/go-gambit/models"
)

type offeringsLoadedMsg struct {
	packages []models.Package
	err      error
}

type purchaseDoneMsg struct {
	pkg  models.Package
	snap models.EntitlementSnapshot
	err  error
}

type restoreDoneMsg struct {
	snap models.EntitlementSnapshot
	err  error
}

type accountDeletedMsg struct {
	err error
}

// entitlementsChangedMsg carries a snapshot applied to the shared state by
// a purchase, a restore, the refresher or a push notification.
type entitlementsChangedMsg struct {
	snap models.EntitlementSnapshot
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct {
	seq int
}
