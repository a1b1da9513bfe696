package http

import (
	"net/http"

	"github.com/MKhiriev/go-agreement-keeper/internal/app"
	"github.com/MKhiriev/go-agreement-keeper/internal/logger"
	"github.com/MKhiriev/go-agreement-keeper/internal/utils"
	"github.com/MKhiriev/go-agreement-keeper/models"
)

// login exchanges a signed login message for a session token. The token is
// returned in the Authorization response header.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.LoginRequest
	if err := utils.DecodeJSON(r, &request); err != nil {
		log.Err(err).Str("func", "*Handler.login").Msg("invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	log.Debug().Str("address", request.Address).Msg("login requested")

	token, err := h.services.AuthService.Login(ctx, request)
	if err != nil {
		writeError(w, r, "*Handler.login", err)
		return
	}

	log.Info().Str("address", token.Address).Msg("address logged in")

	w.Header().Set("Authorization", "Bearer "+token.SignedString)
	w.WriteHeader(http.StatusOK)
}
