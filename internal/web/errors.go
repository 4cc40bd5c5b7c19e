package web

// errors.go maps conversion errors onto HTTP responses. Structural and value
// errors are the client's fault and carry enough context to fix the file;
// anything else is a server-side failure.

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/camtraplabs/camtrapdp/internal/camtrap"
)

// ErrorResponse is the JSON body for error responses.
type ErrorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}

// respondConversionError classifies an error from a read/validate/normalize
// call and writes the response. FormatError and ValueError are client
// errors; oversized bodies map to 413; the rest are logged and hidden.
func respondConversionError(w http.ResponseWriter, r *http.Request, err error) {
	var fe *camtrap.FormatError
	var ve *camtrap.ValueError
	var tooLarge *http.MaxBytesError

	switch {
	case errors.As(err, &fe), errors.As(err, &ve):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.As(err, &tooLarge):
		writeError(w, http.StatusRequestEntityTooLarge, "file too large")
	default:
		slog.Error("conversion failed",
			"path", r.URL.Path,
			"error", err.Error(),
			"request_id", middleware.GetReqID(r.Context()),
		)
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}
