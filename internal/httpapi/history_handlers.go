package httpapi

import (
	"net/http"

	"jobhunt-reconciler/internal/store"
)

type HistoryHandler struct {
	History *store.HistoryStore
}

func (h HistoryHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.History.Load())
}

func (h HistoryHandler) Stats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.History.Stats())
}
