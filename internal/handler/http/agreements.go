// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-agreement-keeper/internal/app"
	"github.com/MKhiriev/go-agreement-keeper/internal/logger"
	"github.com/MKhiriev/go-agreement-keeper/internal/utils"
	"github.com/MKhiriev/go-agreement-keeper/internal/validators"
	"github.com/MKhiriev/go-agreement-keeper/models"
	"github.com/go-chi/chi/v5"
)

var errInvalidQuery = errors.New("invalid query parameter")

// createAgreement registers an agreement owned by the authenticated address
// and answers with the ledger receipt.
func (h *Handler) createAgreement(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	owner, ok := utils.GetAddressFromContext(ctx)
	if !ok {
		log.Error().Str("func", "*Handler.createAgreement").Msg("no address in context")
		http.Error(w, app.MsgTokenIsExpiredOrInvalid, http.StatusUnauthorized)
		return
	}

	var record models.AgreementRecord
	if err := utils.DecodeJSON(r, &record); err != nil {
		log.Err(err).Str("func", "*Handler.createAgreement").Msg("invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	agreement, receipt, err := h.services.LedgerService.CreateAgreement(ctx, owner, record)
	if err != nil {
		writeError(w, r, "*Handler.createAgreement", err)
		return
	}

	log.Info().
		Str("owner", agreement.Owner).
		Uint64("index", agreement.Index).
		Str("identifier", agreement.Identifier).
		Uint64("block", receipt.BlockNumber).
		Msg("agreement created")

	utils.WriteJSON(w, receipt, http.StatusCreated)
}

func (h *Handler) getAgreement(w http.ResponseWriter, r *http.Request) {
	owner, ok := addressParam(w, r)
	if !ok {
		return
	}

	index, err := strconv.ParseUint(chi.URLParam(r, "index"), 10, 64)
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.getAgreement").Msg("invalid index")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	agreement, err := h.services.LedgerService.GetAgreement(r.Context(), owner, index)
	if err != nil {
		writeError(w, r, "*Handler.getAgreement", err)
		return
	}

	utils.WriteJSON(w, agreement, http.StatusOK)
}

func (h *Handler) listAgreements(w http.ResponseWriter, r *http.Request) {
	owner, ok := addressParam(w, r)
	if !ok {
		return
	}

	page, err := pageFromQuery(r)
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.listAgreements").Msg("invalid page")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	agreements, err := h.services.LedgerService.ListAgreements(r.Context(), owner, page)
	if err != nil {
		writeError(w, r, "*Handler.listAgreements", err)
		return
	}
	if agreements == nil {
		agreements = []models.Agreement{}
	}

	utils.WriteJSON(w, models.AgreementsResponse{Agreements: agreements, Length: len(agreements)}, http.StatusOK)
}

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	address, ok := addressParam(w, r)
	if !ok {
		return
	}

	profile, err := h.services.LedgerService.GetProfile(r.Context(), address)
	if err != nil {
		writeError(w, r, "*Handler.getProfile", err)
		return
	}

	utils.WriteJSON(w, profile, http.StatusOK)
}

// addressParam reads the {address} path parameter and answers 400 itself
// when it is not an address.
func addressParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	address := chi.URLParam(r, "address")
	if !validators.IsAddress(address) {
		logger.FromRequest(r).Warn().Str("address", address).Msg("invalid address path parameter")
		http.Error(w, app.MsgNoAddressProvided, http.StatusBadRequest)
		return "", false
	}
	return address, true
}

// pageFromQuery reads offset and limit. A missing limit means the largest
// allowed page.
func pageFromQuery(r *http.Request) (models.Page, error) {
	page := models.Page{Limit: validators.MaxPageLimit}
	query := r.URL.Query()

	var err error
	if raw := query.Get("offset"); raw != "" {
		if page.Offset, err = strconv.ParseUint(raw, 10, 64); err != nil {
			return models.Page{}, errors.Join(errInvalidQuery, err)
		}
	}
	if raw := query.Get("limit"); raw != "" {
		if page.Limit, err = strconv.ParseUint(raw, 10, 64); err != nil {
			return models.Page{}, errors.Join(errInvalidQuery, err)
		}
	}

	return page, nil
}
