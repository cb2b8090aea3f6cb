package httpapi

import (
	"net/http"
)

type HealthHandler struct{}

func (h HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]any{
		"ok": true,
	})
}

// Root answers only the exact path; "/" is the mux's catch-all.
func (h HealthHandler) Root(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		WriteError(w, r, http.StatusNotFound, "not_found", "not found")
		return
	}
	writeJSON(w, map[string]any{
		"message": "Job Pipeline Engine is running",
	})
}
