// Package response writes the API's JSON bodies. Every handler goes
// through these helpers so success and error payloads stay uniform.
package response

import (
	"encoding/json"
	"log"
	"net/http"
)

// ErrorResponse is the error body shape for every non-2xx response.
// Details carries optional context such as field-level validation messages.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

// RespondJSON writes data as JSON with the given status. A nil data writes
// the status alone, which is how 204 No Content responses are produced.
// Encoding failures are logged; the status line has already been sent by
// then, so there is nothing else to do.
func RespondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("failed to encode JSON response: %v", err)
	}
}

// RespondError writes an ErrorResponse with the given status. message is
// the short human-readable summary; details may be an error string, a
// field map, or nil.
func RespondError(w http.ResponseWriter, status int, message string, details any) {
	RespondJSON(w, status, ErrorResponse{
		Error:   message,
		Details: details,
	})
}
