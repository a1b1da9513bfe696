package http

import (
	"net/http"

	"github.com/MKhiriev/go-agreement-keeper/internal/app"
	"github.com/MKhiriev/go-agreement-keeper/internal/logger"
	"github.com/MKhiriev/go-agreement-keeper/internal/utils"
	"github.com/MKhiriev/go-agreement-keeper/models"
)

// createSignature records a signature packet for the authenticated address.
// Slot denials come back as 403, 404 or 409 through errorResponses.
func (h *Handler) createSignature(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	signer, ok := utils.GetAddressFromContext(ctx)
	if !ok {
		log.Error().Str("func", "*Handler.createSignature").Msg("no address in context")
		http.Error(w, app.MsgTokenIsExpiredOrInvalid, http.StatusUnauthorized)
		return
	}

	var record models.SignatureRecord
	if err := utils.DecodeJSON(r, &record); err != nil {
		log.Err(err).Str("func", "*Handler.createSignature").Msg("invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	packet, receipt, err := h.services.LedgerService.CreateSignature(ctx, signer, record)
	if err != nil {
		writeError(w, r, "*Handler.createSignature", err)
		return
	}

	log.Info().
		Str("signer", signer).
		Str("owner", packet.AgreementOwner).
		Uint64("agreement_index", packet.AgreementIndex).
		Str("slot", packet.Identifier).
		Uint64("block", receipt.BlockNumber).
		Msg("signature recorded")

	utils.WriteJSON(w, receipt, http.StatusCreated)
}

func (h *Handler) listSignatures(w http.ResponseWriter, r *http.Request) {
	signer, ok := addressParam(w, r)
	if !ok {
		return
	}

	page, err := pageFromQuery(r)
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.listSignatures").Msg("invalid page")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	packets, err := h.services.LedgerService.ListSignatures(r.Context(), signer, page)
	if err != nil {
		writeError(w, r, "*Handler.listSignatures", err)
		return
	}
	if packets == nil {
		packets = []models.SignaturePacket{}
	}

	utils.WriteJSON(w, models.SignaturesResponse{Signatures: packets, Length: len(packets)}, http.StatusOK)
}
