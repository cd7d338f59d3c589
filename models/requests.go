// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// IdentifyRequest is sent by a device to register or look up its anonymous customer.
type IdentifyRequest struct {
	AppUserID string `json:"app_user_id"`
}

// IdentifyResponse carries the bearer token issued for the customer.
type IdentifyResponse struct {
	AppUserID string `json:"app_user_id"`
	Token     string `json:"token"`
}

// PurchaseRequest asks the server to buy a package for the calling customer.
type PurchaseRequest struct {
	PackageID int64 `json:"package_id"`
}

// VersionResponse is returned by the version endpoint.
type VersionResponse struct {
	Version string `json:"version"`
}

// EntitlementsEvent is the server-sent event name that carries a JSON
// [EntitlementSnapshot] on the entitlement stream.
const EntitlementsEvent = "entitlements"
