// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-agreement-keeper/internal/config"
	"github.com/MKhiriev/go-agreement-keeper/internal/logger"
	"github.com/MKhiriev/go-agreement-keeper/internal/utils"
	"github.com/MKhiriev/go-agreement-keeper/models"
	"github.com/go-resty/resty/v2"
)

type httpLedger struct {
	client  *utils.HTTPClient
	session *Session

	logger *logger.Logger
}

// NewHTTPLedger constructs an HTTP/REST implementation of [Ledger] bound to
// adapterCfg.LedgerAddress. The session is shared with the blob store so that
// one login authorises both.
//
// Returns an error if the ledger address is empty or cannot be parsed as a
// valid URL.
func NewHTTPLedger(adapterCfg config.ClientAdapter, session *Session, logger *logger.Logger) (Ledger, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.LedgerAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: ledger: %w", ErrInvalidAddress, err)
	}
	if session == nil {
		session = NewSession()
	}

	return &httpLedger{
		client:  utils.NewHTTPClientFor(baseURL, adapterCfg.RequestTimeout),
		session: session,
		logger:  logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Login implements [Ledger]. It POSTs the signed login message to
// POST /api/auth/login, extracts the bearer token from the Authorization
// response header and stores it in the session.
func (h *httpLedger) Login(ctx context.Context, req models.LoginRequest) (models.Token, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/auth/login")
	if err != nil {
		return models.Token{}, mapTransportError("login request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Token{}, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: login parse bearer token: %w", ErrInvalidResponse, err)
	}

	h.session.SetToken(token)
	return models.Token{SignedString: token, Address: req.Address}, nil
}

// SubmitAgreement implements [Ledger] via POST /api/agreements.
func (h *httpLedger) SubmitAgreement(ctx context.Context, record models.AgreementRecord) (models.Receipt, error) {
	var receipt models.Receipt

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(record).
		SetResult(&receipt).
		Post("/api/agreements")
	if err != nil {
		return models.Receipt{}, mapTransportError("submit agreement request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Receipt{}, err
	}

	return receipt, nil
}

// SubmitSignature implements [Ledger] via POST /api/signatures.
func (h *httpLedger) SubmitSignature(ctx context.Context, record models.SignatureRecord) (models.Receipt, error) {
	var receipt models.Receipt

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(record).
		SetResult(&receipt).
		Post("/api/signatures")
	if err != nil {
		return models.Receipt{}, mapTransportError("submit signature request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Receipt{}, err
	}

	return receipt, nil
}

// ListAgreements implements [Ledger] via GET /api/agreements/{address}.
func (h *httpLedger) ListAgreements(ctx context.Context, address string, page models.Page) ([]models.Agreement, error) {
	var result models.AgreementsResponse

	resp, err := h.pagedRequest(ctx, page).
		SetPathParam("address", address).
		SetResult(&result).
		Get("/api/agreements/{address}")
	if err != nil {
		return nil, mapTransportError("list agreements request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return result.Agreements, nil
}

// GetAgreement implements [Ledger] via GET /api/agreements/{address}/{index}.
func (h *httpLedger) GetAgreement(ctx context.Context, owner string, index uint64) (models.Agreement, error) {
	var agreement models.Agreement

	resp, err := h.authedRequest(ctx).
		SetPathParams(map[string]string{
			"address": owner,
			"index":   strconv.FormatUint(index, 10),
		}).
		SetResult(&agreement).
		Get("/api/agreements/{address}/{index}")
	if err != nil {
		return models.Agreement{}, mapTransportError("get agreement request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Agreement{}, err
	}

	return agreement, nil
}

// ListSignatures implements [Ledger] via GET /api/signatures/{address}.
func (h *httpLedger) ListSignatures(ctx context.Context, address string, page models.Page) ([]models.SignaturePacket, error) {
	var result models.SignaturesResponse

	resp, err := h.pagedRequest(ctx, page).
		SetPathParam("address", address).
		SetResult(&result).
		Get("/api/signatures/{address}")
	if err != nil {
		return nil, mapTransportError("list signatures request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return result.Signatures, nil
}

// GetProfile implements [Ledger] via GET /api/profiles/{address}.
func (h *httpLedger) GetProfile(ctx context.Context, address string) (models.Profile, error) {
	var profile models.Profile

	resp, err := h.authedRequest(ctx).
		SetPathParam("address", address).
		SetResult(&profile).
		Get("/api/profiles/{address}")
	if err != nil {
		return models.Profile{}, mapTransportError("get profile request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Profile{}, err
	}

	return profile, nil
}

func (h *httpLedger) pagedRequest(ctx context.Context, page models.Page) *resty.Request {
	return h.authedRequest(ctx).
		SetQueryParam("offset", strconv.FormatUint(page.Offset, 10)).
		SetQueryParam("limit", strconv.FormatUint(page.Limit, 10))
}

func (h *httpLedger) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.session.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
