package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// writeJSON sends a JSON response with the given status code and data.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("write JSON response", "error", err)
	}
}

// writeMsg sends a {"msg": ...} response with the given status code.
func writeMsg(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"msg": msg})
}

// writeValidationErrors sends field-level validation messages under the
// errors key: {"errors":[{"msg":"..."}]}.
func writeValidationErrors(w http.ResponseWriter, msgs ...string) {
	errs := make([]map[string]string, len(msgs))
	for i, m := range msgs {
		errs[i] = map[string]string{"msg": m}
	}
	writeJSON(w, http.StatusBadRequest, map[string]any{"errors": errs})
}

// writeServerError logs the failure and sends a generic 500. Internal
// detail stays in the operator log.
func writeServerError(w http.ResponseWriter, op string, err error) {
	slog.Error(op, "error", err)
	writeMsg(w, http.StatusInternalServerError, "Server error")
}

// readJSON decodes the request body into the given destination.
func readJSON(r *http.Request, dst any) error {
	return json.NewDecoder(r.Body).Decode(dst)
}
