package http

import (
	"net/http"

	"github.com/MKhiriev/go-agreement-keeper/internal/utils"
	"github.com/rs/zerolog"
)

const traceIDHeader = "X-Trace-ID"

// withTraceID tags the request logger with trace_id and echoes the id back.
// A well-formed incoming X-Trace-ID is kept so client and server logs line up.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := utils.TraceIDOrNew(r.Header.Get(traceIDHeader))

		reqLog := h.logger.GetChildLogger()
		reqLog.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", traceID)
		})

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r.WithContext(reqLog.WithContext(r.Context())))
	})
}
