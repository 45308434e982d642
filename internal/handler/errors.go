package handler

import (
	"encoding/json"
	"net/http"
	"strings"
)

// errorResponse is the error envelope every endpoint uses: {"detail": "..."}.
type errorResponse struct {
	Detail string `json:"detail"`
}

// writeJSON serializes v as the response body with the given status code.
// encoding/json leaves non-ASCII text (destination names, descriptions)
// unescaped, which the API contract requires.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError writes the {"detail": ...} envelope with the given status code.
func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, errorResponse{Detail: detail})
}

// unwrapMessage extracts the human-readable part from a wrapped sentinel error.
// e.g. "validation error: destination is required" → "destination is required"
func unwrapMessage(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	if rest, ok := strings.CutPrefix(msg, "validation error: "); ok {
		return rest
	}
	return msg
}
