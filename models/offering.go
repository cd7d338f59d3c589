// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"time"
)

// Period is the billing period of a purchasable package.
type Period string

const (
	PeriodMonthly  Period = "monthly"
	PeriodAnnual   Period = "annual"
	PeriodLifetime Period = "lifetime"
)

// ExpiresAt returns the expiry of a grant bought at from, or nil for lifetime packages.
func (p Period) ExpiresAt(from time.Time) *time.Time {
	var t time.Time
	switch p {
	case PeriodMonthly:
		t = from.AddDate(0, 1, 0)
	case PeriodAnnual:
		t = from.AddDate(1, 0, 0)
	default:
		return nil
	}
	return &t
}

// Package is a purchasable offering.
//
// PriceMicros holds the price in millionths of the currency unit,
// e.g. 4990000 for 4.99.
type Package struct {
	ID          int64  `json:"id"`
	Identifier  string `json:"identifier"`
	Title       string `json:"title"`
	PriceMicros int64  `json:"price_micros"`
	Currency    string `json:"currency"`
	Period      Period `json:"period"`
	Entitlement string `json:"entitlement"`
}

// TableName returns the name of the database table for packages.
func (p Package) TableName() string {
	return "packages"
}

var currencySymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
}

// DisplayPrice formats the price for humans, e.g. "$4.99" or "4.99 CHF".
func (p Package) DisplayPrice() string {
	whole := p.PriceMicros / 1_000_000
	cents := (p.PriceMicros % 1_000_000) / 10_000
	amount := fmt.Sprintf("%d.%02d", whole, cents)
	if sym, ok := currencySymbols[p.Currency]; ok {
		return sym + amount
	}
	return amount + " " + p.Currency
}
