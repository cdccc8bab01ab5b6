package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"mini-bookmarks/logger"
)

const TraceHeader = "X-Request-ID"

// Trace tags every request with a trace id, reusing the client's X-Request-ID
// when present, and echoes it back in the response header.
func Trace(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(TraceHeader)
		if id == "" || len(id) > 128 {
			id = uuid.NewString()
		}

		w.Header().Set(TraceHeader, id)
		next.ServeHTTP(w, r.WithContext(logger.WithTraceID(r.Context(), id)))
	})
}
