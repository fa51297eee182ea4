package http

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
)

const (
	traceIDHeader = "X-Trace-ID"

	maxTraceIDLength = 128
)

// withTraceID tags the request with a trace id taken from the X-Trace-ID
// header, or a fresh UUIDv7 when the header is absent or unusable. The id is
// echoed in the response, added to the request logger and stored under
// chi's request id key.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(traceIDHeader)
		if !usableTraceID(traceID) {
			traceID = h.traceIDs.Generate()
		}

		l := h.logger.With("trace_id", traceID)

		ctx := context.WithValue(r.Context(), middleware.RequestIDKey, traceID)
		r = r.WithContext(l.WithContext(ctx))

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r)
	})
}

// usableTraceID accepts printable ASCII ids of bounded length.
func usableTraceID(id string) bool {
	if id == "" || len(id) > maxTraceIDLength {
		return false
	}
	for i := 0; i < len(id); i++ {
		if id[i] < 0x21 || id[i] > 0x7e {
			return false
		}
	}
	return true
}
