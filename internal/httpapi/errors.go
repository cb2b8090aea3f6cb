package httpapi

import (
	"encoding/json"
	"log"
	"net/http"
)

// ErrorBody is the payload of every non-2xx JSON response.
type ErrorBody struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

type APIError struct {
	Error ErrorBody `json:"error"`
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(v)
}

// WriteError sends the error envelope. Server-side failures are logged with
// the request id so a dashboard report can be traced back.
func WriteError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	reqID := RequestIDFrom(r.Context())
	if status >= http.StatusInternalServerError {
		log.Printf("level=error msg=%q request_id=%s path=%s status=%d code=%s", message, reqID, r.URL.Path, status, code)
	}
	WriteJSON(w, status, APIError{Error: ErrorBody{Code: code, Message: message, RequestID: reqID}})
}
