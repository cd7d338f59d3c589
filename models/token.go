// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a JWT issued to an anonymous customer.
//
// The "sub" claim holds the internal customer ID; CustomerID caches it
// after parsing.
type Token struct {
	*jwt.Token `json:"-"`
	jwt.RegisteredClaims

	SignedString string `json:"-"`
	CustomerID   int64  `json:"-"`
}

// GetCustomerID parses the subject claim as the internal customer ID.
func (t *Token) GetCustomerID() (int64, error) {
	subject, err := t.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("error extracting customer ID from token: %w", err)
	}

	customerID, err := strconv.ParseInt(subject, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error converting customer ID from token to int64: %w", err)
	}

	return customerID, nil
}

// String returns the compact signed form of the token.
func (t *Token) String() string {
	return t.SignedString
}
