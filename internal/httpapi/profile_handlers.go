package httpapi

import (
	"net/http"

	"jobhunt-reconciler/internal/profile"
)

type ProfileHandler struct {
	Profile profile.Profile
}

func (h ProfileHandler) CV(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.Profile)
}
