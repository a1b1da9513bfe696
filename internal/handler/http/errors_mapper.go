package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-agreement-keeper/internal/app"
	"github.com/MKhiriev/go-agreement-keeper/internal/logger"
	"github.com/MKhiriev/go-agreement-keeper/internal/service"
	"github.com/MKhiriev/go-agreement-keeper/internal/store"
	"github.com/MKhiriev/go-agreement-keeper/internal/validators"
)

// errorResponses is scanned in order and the first target matched with
// errors.Is decides the response. Specific causes come before the generic
// service errors that may wrap them.
var errorResponses = []struct {
	target  error
	status  int
	message string
}{
	{validators.ErrWrongSigner, http.StatusForbidden, app.MsgWrongSigner},
	{validators.ErrNoSuchSlot, http.StatusNotFound, app.MsgNoSuchSlot},
	{validators.ErrExhaustedSlot, http.StatusConflict, app.MsgExhaustedSlot},

	{store.ErrAgreementNotFound, http.StatusNotFound, app.MsgAgreementNotFound},
	{store.ErrAgreementExists, http.StatusConflict, app.MsgAgreementExists},
	{store.ErrBlobNotFound, http.StatusNotFound, app.MsgBlobNotFound},
	{store.ErrInvalidBlobKey, http.StatusBadRequest, app.MsgInvalidDataProvided},

	{service.ErrInvalidLoginSignature, http.StatusUnauthorized, app.MsgInvalidLoginSignature},
	{service.ErrLoginMessageExpired, http.StatusUnauthorized, app.MsgLoginMessageExpired},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid},
	{service.ErrTokenCreationFailed, http.StatusInternalServerError, app.MsgTokenCreationFailed},
	{service.ErrVersionIsNotSpecified, http.StatusBadRequest, app.MsgVersionIsNotSpecified},
	{service.ErrInvalidDataProvided, http.StatusBadRequest, app.MsgInvalidDataProvided},
	{service.ErrNotFound, http.StatusNotFound, http.StatusText(http.StatusNotFound)},
	{service.ErrUnauthorized, http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized)},

	{store.ErrBuildingSQLQuery, http.StatusInternalServerError, app.MsgInternalServerError},
	{store.ErrExecutingQuery, http.StatusInternalServerError, app.MsgInternalServerError},
	{store.ErrBeginningTransaction, http.StatusInternalServerError, app.MsgInternalServerError},
	{store.ErrCommitingTransaction, http.StatusInternalServerError, app.MsgInternalServerError},
	{store.ErrExecutingStatement, http.StatusInternalServerError, app.MsgInternalServerError},
	{store.ErrScanningRow, http.StatusInternalServerError, app.MsgInternalServerError},
	{store.ErrScanningRows, http.StatusInternalServerError, app.MsgInternalServerError},
}

func responseFromError(err error) (int, string) {
	for _, response := range errorResponses {
		if errors.Is(err, response.target) {
			return response.status, response.message
		}
	}
	return http.StatusInternalServerError, app.MsgInternalServerError
}

// writeError logs err under fn and writes the mapped status and message.
func writeError(w http.ResponseWriter, r *http.Request, fn string, err error) {
	status, message := responseFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Str("func", fn).Int("status", status).Msg(message)
	} else {
		log.Warn().Err(err).Str("func", fn).Int("status", status).Msg(message)
	}

	http.Error(w, message, status)
}
