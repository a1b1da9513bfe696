package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-agreement-keeper/internal/app"
	"github.com/MKhiriev/go-agreement-keeper/internal/service"
	"github.com/MKhiriev/go-agreement-keeper/internal/store"
	"github.com/MKhiriev/go-agreement-keeper/internal/validators"
	"github.com/MKhiriev/go-agreement-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testRecord = models.AgreementRecord{
	Identifier:                   "supply-contract",
	ContentIdentifier:            "bafybeigdyrzt5sfp7udm7hu76uh7y26nf3efuylqabf3oclgtqy55fbzdi",
	EncryptedContentIdentifier:   "bafybeigdyrzt5sfp7udm7hu76uh7y26nf3efuylqabf3oclgtqy55fbzdi",
	DescriptionContentIdentifier: "bafybeigdyrzt5sfp7udm7hu76uh7y26nf3efuylqabf3oclgtqy55fbzdi",
	Constraints:                  []models.SignatureConstraint{{Identifier: "buyer", Signer: "*", AllowedToUse: 1}},
}

func TestCreateAgreement_Success(t *testing.T) {
	created := time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC)
	services := testServices()
	services.LedgerService = &mockLedgerService{
		createAgreementFn: func(_ context.Context, owner string, record models.AgreementRecord) (models.Agreement, models.Receipt, error) {
			assert.Equal(t, testOwner, owner)
			assert.Equal(t, testRecord, record)
			return models.Agreement{Owner: owner, Index: 3, Identifier: record.Identifier},
				models.Receipt{Index: 3, BlockNumber: 42, Timestamp: created}, nil
		},
	}
	h := newTestHandler(t, services, "")

	req := authed(httptest.NewRequest(http.MethodPost, "/api/agreements", jsonBody(t, testRecord)))
	rec := serve(t, h, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	var receipt models.Receipt
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &receipt))
	assert.Equal(t, models.Receipt{Index: 3, BlockNumber: 42, Timestamp: created}, receipt)
}

func TestCreateAgreement_RequiresToken(t *testing.T) {
	h := newTestHandler(t, testServices(), "")

	rec := serve(t, h, httptest.NewRequest(http.MethodPost, "/api/agreements", jsonBody(t, testRecord)))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCreateAgreement_InvalidJSON(t *testing.T) {
	h := newTestHandler(t, testServices(), "")

	rec := serve(t, h, authed(httptest.NewRequest(http.MethodPost, "/api/agreements", strings.NewReader("[]"))))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, app.MsgInvalidDataProvided, bodyString(rec))
}

func TestCreateAgreement_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{"duplicate identifier", fmt.Errorf("error creating agreement: %w", store.ErrAgreementExists), http.StatusConflict, app.MsgAgreementExists},
		{"invalid record", fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrEmptySlots), http.StatusBadRequest, app.MsgInvalidDataProvided},
		{"database failure", fmt.Errorf("error creating agreement: %w", store.ErrExecutingQuery), http.StatusInternalServerError, app.MsgInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			services := testServices()
			services.LedgerService = &mockLedgerService{
				createAgreementFn: func(context.Context, string, models.AgreementRecord) (models.Agreement, models.Receipt, error) {
					return models.Agreement{}, models.Receipt{}, tt.err
				},
			}
			h := newTestHandler(t, services, "")

			rec := serve(t, h, authed(httptest.NewRequest(http.MethodPost, "/api/agreements", jsonBody(t, testRecord))))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantBody, bodyString(rec))
		})
	}
}

func TestGetAgreement(t *testing.T) {
	services := testServices()
	services.LedgerService = &mockLedgerService{
		getAgreementFn: func(_ context.Context, owner string, index uint64) (models.Agreement, error) {
			if index != 7 {
				return models.Agreement{}, store.ErrAgreementNotFound
			}
			return models.Agreement{Owner: owner, Index: index, Identifier: "lease"}, nil
		},
	}
	h := newTestHandler(t, services, "")

	rec := serve(t, h, httptest.NewRequest(http.MethodGet, "/api/agreements/"+testOwner+"/7", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var agreement models.Agreement
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &agreement))
	assert.Equal(t, "lease", agreement.Identifier)
	assert.Equal(t, uint64(7), agreement.Index)

	rec = serve(t, h, httptest.NewRequest(http.MethodGet, "/api/agreements/"+testOwner+"/8", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, app.MsgAgreementNotFound, bodyString(rec))
}

func TestGetAgreement_BadPath(t *testing.T) {
	h := newTestHandler(t, testServices(), "")

	rec := serve(t, h, httptest.NewRequest(http.MethodGet, "/api/agreements/alice/1", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, app.MsgNoAddressProvided, bodyString(rec))

	rec = serve(t, h, httptest.NewRequest(http.MethodGet, "/api/agreements/"+testOwner+"/first", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, app.MsgInvalidDataProvided, bodyString(rec))
}

func TestListAgreements(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		wantPage   models.Page
		wantStatus int
	}{
		{"explicit page", "?offset=20&limit=10", models.Page{Offset: 20, Limit: 10}, http.StatusOK},
		{"default page", "", models.Page{Offset: 0, Limit: validators.MaxPageLimit}, http.StatusOK},
		{"bad offset", "?offset=-1", models.Page{}, http.StatusBadRequest},
		{"bad limit", "?limit=ten", models.Page{}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			services := testServices()
			services.LedgerService = &mockLedgerService{
				listAgreementsFn: func(_ context.Context, owner string, page models.Page) ([]models.Agreement, error) {
					assert.Equal(t, testOwner, owner)
					assert.Equal(t, tt.wantPage, page)
					return []models.Agreement{{Owner: owner, Index: 0}, {Owner: owner, Index: 1}}, nil
				},
			}
			h := newTestHandler(t, services, "")

			rec := serve(t, h, httptest.NewRequest(http.MethodGet, "/api/agreements/"+testOwner+tt.query, nil))

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus != http.StatusOK {
				return
			}
			var response models.AgreementsResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
			assert.Equal(t, 2, response.Length)
			assert.Len(t, response.Agreements, 2)
		})
	}
}

func TestListAgreements_EmptyIsArray(t *testing.T) {
	services := testServices()
	services.LedgerService = &mockLedgerService{
		listAgreementsFn: func(context.Context, string, models.Page) ([]models.Agreement, error) {
			return nil, nil
		},
	}
	h := newTestHandler(t, services, "")

	rec := serve(t, h, httptest.NewRequest(http.MethodGet, "/api/agreements/"+testOwner, nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"agreements":[],"length":0}`, rec.Body.String())
}

func TestListAgreements_LimitRejectedByService(t *testing.T) {
	services := testServices()
	services.LedgerService = &mockLedgerService{
		listAgreementsFn: func(context.Context, string, models.Page) ([]models.Agreement, error) {
			return nil, fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrInvalidLimit)
		},
	}
	h := newTestHandler(t, services, "")

	rec := serve(t, h, httptest.NewRequest(http.MethodGet, "/api/agreements/"+testOwner+"?limit=1000", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetProfile(t *testing.T) {
	services := testServices()
	services.LedgerService = &mockLedgerService{
		getProfileFn: func(_ context.Context, address string) (models.Profile, error) {
			return models.Profile{Address: address, AgreementCount: 2, SignatureCount: 5}, nil
		},
	}
	h := newTestHandler(t, services, "")

	rec := serve(t, h, httptest.NewRequest(http.MethodGet, "/api/profiles/"+testSigner, nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var profile models.Profile
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &profile))
	assert.Equal(t, models.Profile{Address: testSigner, AgreementCount: 2, SignatureCount: 5}, profile)
}
