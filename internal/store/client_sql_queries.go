// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

const (
	getIdentityValue = `SELECT value FROM device_identity WHERE key = ?;`

	saveIdentityValue = `
		INSERT INTO device_identity (key, value, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT (key) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at;`

	clearIdentity = `DELETE FROM device_identity;`
)
