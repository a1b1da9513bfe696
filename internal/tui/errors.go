// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-agreement-keeper/internal/service"
	"github.com/MKhiriev/go-agreement-keeper/internal/validators"
)

var (
	// ErrUserQuit is returned by Browse when the user leaves with ctrl+c.
	ErrUserQuit = errors.New("user quit")

	errNothingSelected = errors.New("nothing selected")
	errEmptyPath       = errors.New("file path is empty")
	errEmptySlot       = errors.New("slot identifier is empty")
)

func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, validators.ErrWrongSigner):
		return "You are not the signer of this slot"
	case errors.Is(err, validators.ErrExhaustedSlot):
		return "This slot has no uses left"
	case errors.Is(err, validators.ErrNoSuchSlot):
		return "The agreement has no such slot"
	case errors.Is(err, service.ErrContentMismatch):
		return "Decrypted document does not match its content identifier"
	case errors.Is(err, service.ErrUpstreamUnavailable):
		return "No network or the ledger is unavailable"
	case errors.Is(err, service.ErrUnauthorized):
		return "Session expired, restart the client to log in again"
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "No network or the ledger is unavailable"
	}

	return err.Error()
}
