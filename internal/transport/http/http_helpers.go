package httptransport

import (
	"encoding/json"
	"net/http"
)

// envelope wraps every coordinator response. Failures carry an empty
// payload and leak nothing about which part of the request was unknown.
type envelope struct {
	Success bool `json:"success"`
	Payload any  `json:"payload"`
}

func writeSuccess(w http.ResponseWriter, payload any) {
	if payload == nil {
		payload = struct{}{}
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(envelope{Success: true, Payload: payload})
}

func writeFailure(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(envelope{Success: false, Payload: struct{}{}})
}

func decodeJSON(r *http.Request, v any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}

func WriteHTTPError(w http.ResponseWriter, status int, code string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{"error": code})
}
