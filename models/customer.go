// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Customer is an anonymous purchaser known to the server.
//
// AppUserID is the identifier generated on the device; CustomerID is the
// internal key and is never exposed over JSON.
type Customer struct {
	CustomerID int64     `json:"-"`
	AppUserID  string    `json:"app_user_id"`
	CreatedAt  time.Time `json:"created_at"`
}

// TableName returns the name of the database table for customers.
func (c Customer) TableName() string {
	return "customers"
}

// Grant is a stored entitlement of a customer. A customer holds at most one
// grant per entitlement identifier.
type Grant struct {
	CustomerID  int64
	Entitlement string
	PackageID   int64
	GrantedAt   time.Time
	ExpiresAt   *time.Time
}

// TableName returns the name of the database table for grants.
func (g Grant) TableName() string {
	return "grants"
}
