// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app holds the response messages shared by the purchase server
// handlers and the client error mapper.
//
// Handlers write a Msg* string as the plain-text body of an error response and
// the client matches on the same string to recover the service sentinel, so
// both sides must import them from here.
package app

const (
	// MsgInvalidDataProvided: the body could not be decoded or failed
	// validation.
	MsgInvalidDataProvided = "invalid data provided"

	MsgInternalServerError = "internal server error"

	// MsgTokenIsExpiredOrInvalid: bearer token missing, expired or signed
	// with a different key.
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	MsgNoCustomerIDProvided = "no customer ID provided"

	MsgCustomerNotFound = "customer not found"

	// MsgPackageNotFound: the purchase referenced a package ID that is not in
	// the catalog.
	MsgPackageNotFound = "package not found"

	// MsgHashMismatch: the HashSHA256 header does not match the body.
	MsgHashMismatch = "request hash mismatch"

	MsgVersionIsNotSpecified = "app version is not specified"

	MsgIdentifyFailed = "customer identification failed"

	MsgStreamingUnsupported = "streaming unsupported"
)
