// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// AgreementKeeper server handlers and the client error mapper.
//
// All Msg* constants are the response bodies the ledger server writes for a
// failed request. The client matches on them to recover the precise cause
// behind a status code, so the wording is part of the wire contract.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails validation.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgTokenIsExpiredOrInvalid is returned when a JWT bearer token is
	// either expired or cannot be verified.
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgTokenCreationFailed is returned when the server could not sign a
	// session token after a successful login.
	MsgTokenCreationFailed = "token creation failed"

	// MsgInvalidLoginSignature is returned when the login signature does not
	// recover to the claimed address.
	MsgInvalidLoginSignature = "invalid login signature"

	// MsgLoginMessageExpired is returned when the issued time of a login
	// message falls outside the accepted clock skew.
	MsgLoginMessageExpired = "login message expired"

	// MsgNoAddressProvided is returned when a route requires an address
	// path parameter and it is empty or malformed.
	MsgNoAddressProvided = "no valid address provided"

	// MsgNoSuchSlot is returned when a signature names a slot the agreement
	// does not have.
	MsgNoSuchSlot = "no such slot"

	// MsgWrongSigner is returned when the caller is not the signer bound to
	// the requested slot.
	MsgWrongSigner = "wrong signer for slot"

	// MsgExhaustedSlot is returned when the requested slot has no uses left.
	MsgExhaustedSlot = "slot exhausted"

	// MsgAgreementNotFound is returned when no agreement exists at the given
	// owner and index.
	MsgAgreementNotFound = "agreement not found"

	// MsgAgreementExists is returned when the owner already has an agreement
	// with the same identifier.
	MsgAgreementExists = "agreement already exists"

	// MsgBlobNotFound is returned by the gateway for an unknown content
	// identifier.
	MsgBlobNotFound = "blob not found"

	// MsgHashMismatch is returned when the X-Hash header of an upload does
	// not match its body.
	MsgHashMismatch = "hash mismatch"

	MsgVersionIsNotSpecified = "app version is not specified"
)
