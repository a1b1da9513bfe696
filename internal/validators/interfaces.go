// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks agreement and signature records before they reach
// the ledger, and evaluates slot constraints against an incoming signer.
package validators

import "context"

// Validator checks obj. Passing field names limits the check to those fields;
// an unknown name yields [ErrUnknownField].
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
