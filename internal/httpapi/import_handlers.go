package httpapi

import (
	"errors"
	"io"
	"log"
	"net/http"
	"sync/atomic"

	"jobhunt-reconciler/internal/config"
	"jobhunt-reconciler/internal/events"
	"jobhunt-reconciler/internal/importer"
	"jobhunt-reconciler/internal/metrics"
	"jobhunt-reconciler/internal/store"
)

type ImportHandler struct {
	History *store.HistoryStore
	Hub     *events.Hub
	CfgVal  *atomic.Value // stores config.Config
	Metrics metrics.Recorder
}

type importResult struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

// Upload replaces the whole history with the records in the multipart
// "file" field. A rejected file leaves the stored history untouched.
func (h ImportHandler) Upload(w http.ResponseWriter, r *http.Request) {
	cfg := h.CfgVal.Load().(config.Config)
	r.Body = http.MaxBytesReader(w, r.Body, cfg.MaxUploadBytes())

	f, hdr, err := r.FormFile("file")
	if err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			h.Metrics.ImportRejected("too_large")
			WriteError(w, r, http.StatusRequestEntityTooLarge, "upload_too_large", "file exceeds upload limit")
			return
		}
		h.Metrics.ImportRejected("missing_file")
		WriteError(w, r, http.StatusBadRequest, "bad_request", "multipart field \"file\" is required")
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		h.Metrics.ImportRejected("read_failed")
		WriteError(w, r, http.StatusBadRequest, "bad_request", "read upload: "+err.Error())
		return
	}

	records, err := importer.Import(hdr.Filename, data)
	if err != nil {
		var fe *importer.FormatError
		if errors.As(err, &fe) {
			h.Metrics.ImportRejected("format")
			log.Printf("[import] rejected %q: %v", hdr.Filename, err)
			WriteError(w, r, http.StatusBadRequest, "import_format", fe.Error())
			return
		}
		h.Metrics.ImportRejected("internal")
		WriteError(w, r, http.StatusInternalServerError, "import_failed", err.Error())
		return
	}

	if err := h.History.ReplaceAll(records); err != nil {
		h.Metrics.ImportRejected("store")
		log.Printf("level=error msg=\"history replace failed\" err=%v", err)
		WriteError(w, r, http.StatusInternalServerError, "store_failed", "could not save history")
		return
	}

	h.Metrics.ImportSucceeded(len(records))
	log.Printf("[import] %q -> %d records", hdr.Filename, len(records))

	if h.Hub != nil {
		h.Hub.Publish(events.MakeEvent(RequestIDFrom(r.Context()), events.TypeHistoryImported, map[string]any{
			"count": len(records),
		}))
	}
	writeJSON(w, importResult{Status: "success", Count: len(records)})
}
