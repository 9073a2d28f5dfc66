package search

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"
)

const (
	msgRequired = "Search query is required"
	msgNotFound = "No Wikipedia article found"
	msgFailed   = "Failed to fetch Wikipedia data"
)

type errorBody struct {
	Error string `json:"error"`
}

// Handler serves lookups of s for the q parameter of GET requests.
func Handler(s Searcher, log *slog.Logger) http.Handler {
	if log == nil {
		log = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.Header().Set("allow", http.MethodGet)
			writeJSON(w, http.StatusMethodNotAllowed, errorBody{Error: http.StatusText(http.StatusMethodNotAllowed)})
			return
		}
		query := strings.TrimSpace(r.URL.Query().Get("q"))
		res, err := s.Lookup(r.Context(), query)
		switch {
		case err == nil:
			writeJSON(w, http.StatusOK, res)
		case errors.Is(err, ErrEmptyQuery):
			writeJSON(w, http.StatusBadRequest, errorBody{Error: msgRequired})
		case errors.Is(err, ErrNotFound):
			log.Info("search.not_found", "query", query)
			writeJSON(w, http.StatusNotFound, errorBody{Error: msgNotFound})
		default:
			log.Error("search.failed", "query", query, "err", err)
			writeJSON(w, http.StatusInternalServerError, errorBody{Error: msgFailed})
		}
	})
}

func writeJSON(w http.ResponseWriter, code int, body any) {
	w.Header().Set("content-type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(body)
}
