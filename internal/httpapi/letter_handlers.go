package httpapi

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"
	"sync/atomic"

	"jobhunt-reconciler/internal/config"
	"jobhunt-reconciler/internal/domain"
	"jobhunt-reconciler/internal/letter"
	"jobhunt-reconciler/internal/profile"
	"jobhunt-reconciler/internal/recommend"
	"jobhunt-reconciler/internal/store"
)

const pdfFilename = "Personligt_Brev.pdf"

type LetterHandler struct {
	History *store.HistoryStore
	Profile profile.Profile
	CfgVal  *atomic.Value // stores config.Config

	// Converter is used when set; otherwise export.command from config,
	// falling back to the built-in PDF renderer.
	Converter letter.Converter
}

func (h LetterHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req letter.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, r, http.StatusBadRequest, "bad_request", "invalid JSON: "+err.Error())
		return
	}

	var last *domain.HistoryRecord
	if rec, ok := recommend.Latest(h.History.Load(), req.Company); ok {
		last = &rec
	}

	gen := letter.Generator{Signature: h.signature()}
	out, err := gen.Generate(req, last)
	if err != nil {
		WriteError(w, r, http.StatusInternalServerError, "letter_failed", err.Error())
		return
	}
	writeJSON(w, out)
}

func (h LetterHandler) DownloadPDF(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Letter string `json:"letter"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		WriteError(w, r, http.StatusBadRequest, "bad_request", "invalid JSON: "+err.Error())
		return
	}
	if strings.TrimSpace(body.Letter) == "" {
		WriteError(w, r, http.StatusBadRequest, "bad_request", "letter is required")
		return
	}

	doc, err := h.converter().Convert(r.Context(), body.Letter)
	if errors.Is(err, letter.ErrNoConverter) {
		WriteError(w, r, http.StatusNotImplemented, "export_unavailable", "no document converter configured")
		return
	}
	if err != nil {
		log.Printf("level=error msg=\"export failed\" err=%v", err)
		WriteError(w, r, http.StatusBadGateway, "export_failed", err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="`+pdfFilename+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(doc)))
	_, _ = w.Write(doc)
}

func (h LetterHandler) signature() string {
	cfg := h.CfgVal.Load().(config.Config)
	if cfg.Profile.Signature != "" {
		return cfg.Profile.Signature
	}
	return h.Profile.Contact.Name
}

func (h LetterHandler) converter() letter.Converter {
	if h.Converter != nil {
		return h.Converter
	}
	cfg := h.CfgVal.Load().(config.Config)
	if len(cfg.Export.Command) > 0 {
		return letter.CommandConverter{Command: cfg.Export.Command, Timeout: cfg.ExportTimeout()}
	}
	return letter.PDFConverter{}
}
