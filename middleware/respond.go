package middleware

import (
	"encoding/json"
	"net/http"

	"mini-bookmarks/logger"
)

type errorBody struct {
	Error   string `json:"error"`
	TraceID string `json:"trace_id,omitempty"`
}

func unauthorized(w http.ResponseWriter, r *http.Request, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(errorBody{
		Error:   message,
		TraceID: logger.TraceID(r.Context()),
	})
}
