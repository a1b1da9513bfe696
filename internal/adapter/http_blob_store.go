// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-agreement-keeper/internal/config"
	"github.com/MKhiriev/go-agreement-keeper/internal/crypto"
	"github.com/MKhiriev/go-agreement-keeper/internal/logger"
	"github.com/MKhiriev/go-agreement-keeper/internal/utils"
	"github.com/MKhiriev/go-agreement-keeper/models"
)

// HashHeader carries the HMAC of an uploaded blob.
const HashHeader = "X-Hash"

type httpBlobStore struct {
	pinClient     *utils.HTTPClient
	gatewayClient *utils.HTTPClient

	session  *Session
	pinToken string
	hashKey  string

	logger *logger.Logger
}

// Gateway fetches are content-addressed GETs and safe to repeat.
const (
	gatewayRetries      = 2
	gatewayRetryWait    = 200 * time.Millisecond
	gatewayRetryMaxWait = 2 * time.Second
)

// NewHTTPBlobStore constructs a [BlobStore] that pins through the pinning API
// at adapterCfg.PinAddress and fetches through the gateway at
// adapterCfg.GatewayAddress. A configured PinToken takes precedence over the
// session token for pinning.
func NewHTTPBlobStore(adapterCfg config.ClientAdapter, session *Session, logger *logger.Logger) (BlobStore, error) {
	pinURL, err := normalizeBaseURL(adapterCfg.PinAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: pin: %w", ErrInvalidAddress, err)
	}
	gatewayURL, err := normalizeBaseURL(adapterCfg.GatewayAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: gateway: %w", ErrInvalidAddress, err)
	}
	if session == nil {
		session = NewSession()
	}

	return &httpBlobStore{
		pinClient:     utils.NewHTTPClientFor(pinURL, adapterCfg.RequestTimeout),
		gatewayClient: utils.NewHTTPClientFor(gatewayURL, adapterCfg.RequestTimeout,
			utils.WithRetries(gatewayRetries, gatewayRetryWait, gatewayRetryMaxWait)),
		session:       session,
		pinToken:      adapterCfg.PinToken,
		hashKey:       adapterCfg.HashKey,
		logger:        logger,
	}, nil
}

// Pin implements [BlobStore]. It uploads data as the multipart field "file"
// to POST /pinning/pinFileToIPFS together with the "name" form field.
func (s *httpBlobStore) Pin(ctx context.Context, data []byte, name string) (models.PinResult, error) {
	var result models.PinResult

	req := s.pinClient.R().
		SetContext(ctx).
		SetFileReader("file", name, bytes.NewReader(data)).
		SetFormData(map[string]string{"name": name}).
		SetResult(&result)

	if token := s.token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	if s.hashKey != "" {
		req.SetHeader(HashHeader, utils.HashBytes(data, s.hashKey))
	}

	resp, err := req.Post("/pinning/pinFileToIPFS")
	if err != nil {
		return models.PinResult{}, mapTransportError("pin request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.PinResult{}, err
	}
	if result.IpfsHash == "" {
		return models.PinResult{}, fmt.Errorf("%w: pin response without IpfsHash", ErrInvalidResponse)
	}

	return result, nil
}

// Fetch implements [BlobStore] via GET /ipfs/{cid}.
func (s *httpBlobStore) Fetch(ctx context.Context, contentIdentifier string) ([]byte, error) {
	c, err := crypto.ParseContentIdentifier(contentIdentifier)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadRequest, err)
	}

	resp, err := s.gatewayClient.R().
		SetContext(ctx).
		SetPathParam("cid", c.String()).
		Get("/ipfs/{cid}")
	if err != nil {
		return nil, mapTransportError("fetch request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return resp.Body(), nil
}

func (s *httpBlobStore) token() string {
	if s.pinToken != "" {
		return s.pinToken
	}
	return s.session.Token()
}
