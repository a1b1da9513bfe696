package http

import (
	"io"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-agreement-keeper/internal/app"
	"github.com/MKhiriev/go-agreement-keeper/internal/crypto"
	"github.com/MKhiriev/go-agreement-keeper/internal/logger"
	"github.com/MKhiriev/go-agreement-keeper/internal/utils"
	"github.com/go-chi/chi/v5"
)

// pin stores the multipart "file" field and answers in the pinning API
// format. The "name" field falls back to the uploaded file name.
func (h *Handler) pin(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	data, filename, err := h.readUpload(w, r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.pin").Msg("invalid upload")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	name := r.FormValue("name")
	if name == "" {
		name = filename
	}

	result, err := h.services.BlobService.Pin(r.Context(), data, name)
	if err != nil {
		writeError(w, r, "*Handler.pin", err)
		return
	}

	log.Info().Str("cid", result.IpfsHash).Int64("size", result.PinSize).Str("name", name).Msg("blob pinned")
	utils.WriteJSON(w, result, http.StatusOK)
}

// fetch serves a pinned blob. Both CIDv0 and CIDv1 spellings resolve to the
// same blob.
func (h *Handler) fetch(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "cid")
	c, err := crypto.ParseContentIdentifier(raw)
	if err != nil {
		logger.FromRequest(r).Warn().Err(err).Str("cid", raw).Msg("invalid content identifier")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	data, err := h.services.BlobService.Fetch(r.Context(), c.String())
	if err != nil {
		writeError(w, r, "*Handler.fetch", err)
		return
	}

	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// readUpload returns the content and file name of the "file" form field.
func (h *Handler) readUpload(w http.ResponseWriter, r *http.Request) ([]byte, string, error) {
	if r.MultipartForm == nil {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		return nil, "", err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, "", err
	}

	return data, header.Filename, nil
}
