// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-agreement-keeper/internal/logger"
	"github.com/MKhiriev/go-agreement-keeper/internal/service"
	"github.com/MKhiriev/go-agreement-keeper/models"
	"github.com/stretchr/testify/require"
)

const (
	testOwner  = "0x2c7536e3605d9c16a7a3d7b1898e529396a65c23"
	testSigner = "0x00000000000000000000000000000000000000aa"
	testToken  = "signed.jwt.token"
)

// ─────────────────────────────────────────────
// Fake services
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService. Each method field can be
// overridden per test case.
type mockAuthService struct {
	loginFn      func(ctx context.Context, request models.LoginRequest) (models.Token, error)
	parseTokenFn func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) Login(ctx context.Context, request models.LoginRequest) (models.Token, error) {
	return m.loginFn(ctx, request)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if m.parseTokenFn == nil {
		if tokenString != testToken {
			return models.Token{}, service.ErrTokenIsExpiredOrInvalid
		}
		return models.Token{SignedString: tokenString, Address: testOwner}, nil
	}
	return m.parseTokenFn(ctx, tokenString)
}

// mockLedgerService implements service.LedgerService.
type mockLedgerService struct {
	createAgreementFn func(ctx context.Context, owner string, record models.AgreementRecord) (models.Agreement, models.Receipt, error)
	createSignatureFn func(ctx context.Context, signer string, record models.SignatureRecord) (models.SignaturePacket, models.Receipt, error)
	getAgreementFn    func(ctx context.Context, owner string, index uint64) (models.Agreement, error)
	listAgreementsFn  func(ctx context.Context, owner string, page models.Page) ([]models.Agreement, error)
	listSignaturesFn  func(ctx context.Context, signer string, page models.Page) ([]models.SignaturePacket, error)
	getProfileFn      func(ctx context.Context, address string) (models.Profile, error)
}

func (m *mockLedgerService) CreateAgreement(ctx context.Context, owner string, record models.AgreementRecord) (models.Agreement, models.Receipt, error) {
	return m.createAgreementFn(ctx, owner, record)
}

func (m *mockLedgerService) CreateSignature(ctx context.Context, signer string, record models.SignatureRecord) (models.SignaturePacket, models.Receipt, error) {
	return m.createSignatureFn(ctx, signer, record)
}

func (m *mockLedgerService) GetAgreement(ctx context.Context, owner string, index uint64) (models.Agreement, error) {
	return m.getAgreementFn(ctx, owner, index)
}

func (m *mockLedgerService) ListAgreements(ctx context.Context, owner string, page models.Page) ([]models.Agreement, error) {
	return m.listAgreementsFn(ctx, owner, page)
}

func (m *mockLedgerService) ListSignatures(ctx context.Context, signer string, page models.Page) ([]models.SignaturePacket, error) {
	return m.listSignaturesFn(ctx, signer, page)
}

func (m *mockLedgerService) GetProfile(ctx context.Context, address string) (models.Profile, error) {
	return m.getProfileFn(ctx, address)
}

// mockBlobService implements service.BlobService.
type mockBlobService struct {
	pinFn   func(ctx context.Context, data []byte, name string) (models.PinResult, error)
	fetchFn func(ctx context.Context, contentIdentifier string) ([]byte, error)
}

func (m *mockBlobService) Pin(ctx context.Context, data []byte, name string) (models.PinResult, error) {
	return m.pinFn(ctx, data, name)
}

func (m *mockBlobService) Fetch(ctx context.Context, contentIdentifier string) ([]byte, error) {
	return m.fetchFn(ctx, contentIdentifier)
}

// mockAppInfoService implements service.AppInfoService.
type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}

func (m *mockAppInfoService) GetServerInfo(_ context.Context) models.ServerInfo {
	return models.ServerInfo{
		Version:          m.version,
		ChainID:          1,
		DefaultKeyScheme: models.DefaultKeyScheme,
		KeySchemes:       []models.KeyScheme{models.KeySchemeTypedDataV1},
		MaxPageLimit:     100,
	}
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// testServices returns a service container whose unset services are safe
// defaults. Callers override the fields they exercise.
func testServices() *service.Services {
	return &service.Services{
		AuthService:    &mockAuthService{},
		LedgerService:  &mockLedgerService{},
		BlobService:    &mockBlobService{},
		AppInfoService: &mockAppInfoService{version: "test-version"},
	}
}

func newTestHandler(t *testing.T, services *service.Services, hashKey string) *Handler {
	t.Helper()
	return NewHandler(services, hashKey, logger.Nop())
}

// serve runs req through the full router.
func serve(t *testing.T, h *Handler, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)
	return rec
}

func jsonBody(t *testing.T, v any) io.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(b)
}

func authed(req *http.Request) *http.Request {
	req.Header.Set("Authorization", "Bearer "+testToken)
	return req
}

// multipartUpload builds a pinFileToIPFS request body.
func multipartUpload(t *testing.T, data []byte, filename, name string) (io.Reader, string) {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	part, err := mw.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)

	if name != "" {
		require.NoError(t, mw.WriteField("name", name))
	}
	require.NoError(t, mw.Close())

	return &buf, mw.FormDataContentType()
}

func bodyString(rec *httptest.ResponseRecorder) string {
	return string(bytes.TrimSpace(rec.Body.Bytes()))
}
