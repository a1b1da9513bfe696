package http

import (
	"net/http"

	"github.com/MKhiriev/go-agreement-keeper/internal/app"
)

// hashHeader carries the hex HMAC-SHA256 of an uploaded file.
const hashHeader = "X-Hash"

// uploadHashing rejects a multipart upload whose "file" part does not match
// the X-Hash header. Without a hash key it passes everything through. The
// parsed form stays on the request for the next handler.
func (h *Handler) uploadHashing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.hasher == nil {
			next.ServeHTTP(w, r)
			return
		}
		log := h.logger.With().Str("func", "*Handler.uploadHashing").Logger()

		claimed := r.Header.Get(hashHeader)
		if claimed == "" {
			log.Warn().Msg("upload without hash header")
			http.Error(w, app.MsgHashMismatch, http.StatusBadRequest)
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)
		file, _, err := r.FormFile("file")
		if err != nil {
			log.Err(err).Msg("failed to read upload")
			http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
			return
		}
		sum, err := h.hasher.SumReader(file)
		_ = file.Close()
		if err != nil {
			log.Err(err).Msg("failed to read upload")
			http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
			return
		}

		if !h.hasher.Equal(sum, claimed) {
			log.Warn().Str("claimed", claimed).Hex("computed", sum).Msg("upload hash mismatch")
			http.Error(w, app.MsgHashMismatch, http.StatusBadRequest)
			return
		}

		next.ServeHTTP(w, r)
	})
}
