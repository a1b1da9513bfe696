// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-agreement-keeper/internal/adapter"
	"github.com/MKhiriev/go-agreement-keeper/internal/app"
	"github.com/MKhiriev/go-agreement-keeper/internal/store"
	"github.com/MKhiriev/go-agreement-keeper/internal/validators"
)

// mapAdapterError translates the adapter's transport error into a service business error
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	msg := extractBody(err)

	switch {
	case errors.Is(err, adapter.ErrBadRequest):
		return errors.Join(ErrInvalidDataProvided, err)

	case errors.Is(err, adapter.ErrUnauthorized):
		switch msg {
		case app.MsgInvalidLoginSignature:
			return ErrInvalidLoginSignature
		case app.MsgLoginMessageExpired:
			return ErrLoginMessageExpired
		case app.MsgTokenIsExpiredOrInvalid:
			return ErrTokenIsExpiredOrInvalid
		}
		return errors.Join(ErrUnauthorized, err)

	case errors.Is(err, adapter.ErrForbidden):
		return validators.ErrWrongSigner

	case errors.Is(err, adapter.ErrNotFound):
		switch msg {
		case app.MsgNoSuchSlot:
			return validators.ErrNoSuchSlot
		case app.MsgAgreementNotFound:
			return errors.Join(ErrNotFound, store.ErrAgreementNotFound)
		}
		return errors.Join(ErrNotFound, err)

	case errors.Is(err, adapter.ErrConflict):
		switch msg {
		case app.MsgExhaustedSlot:
			return validators.ErrExhaustedSlot
		case app.MsgAgreementExists:
			return store.ErrAgreementExists
		}

	case errors.Is(err, adapter.ErrUpstreamUnavailable), errors.Is(err, adapter.ErrBadGateway):
		return errors.Join(ErrUpstreamUnavailable, err)

	case errors.Is(err, adapter.ErrInternalServerError):
		if msg == app.MsgTokenCreationFailed {
			return ErrTokenCreationFailed
		}
	}

	return err
}

// extractBody extracts the body from a message of the form "bad request: <body>"
func extractBody(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx != -1 {
		return msg[idx+2:]
	}
	return msg
}
