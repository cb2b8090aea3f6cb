package httpapi

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"jobhunt-reconciler/internal/catalogue"
	"jobhunt-reconciler/internal/config"
	"jobhunt-reconciler/internal/metrics"
	"jobhunt-reconciler/internal/recommend"
	"jobhunt-reconciler/internal/store"
)

type RecommendHandler struct {
	History   *store.HistoryStore
	Catalogue catalogue.Source
	Selector  *recommend.Selector
	CfgVal    *atomic.Value // stores config.Config
	Metrics   metrics.Recorder
}

// Search returns a fresh shortlist. Limits default to the recommend
// section of the config; max_official, max_speculative, window_days and
// now (YYYY-MM-DD) override them per request.
func (h RecommendHandler) Search(w http.ResponseWriter, r *http.Request) {
	cfg := h.CfgVal.Load().(config.Config)
	opts, err := searchOptions(r.URL.Query(), cfg)
	if err != nil {
		WriteError(w, r, http.StatusBadRequest, "bad_request", err.Error())
		return
	}

	items := h.Selector.Recommend(h.History.Load(), h.Catalogue.Postings(), h.Catalogue.Leads(), opts)
	h.Metrics.Recommended(items)
	writeJSON(w, items)
}

func searchOptions(q url.Values, cfg config.Config) (recommend.Options, error) {
	opts := recommend.Options{
		WindowDays:     cfg.Recommend.WindowDays,
		MaxOfficial:    cfg.Recommend.MaxOfficial,
		MaxSpeculative: cfg.Recommend.MaxSpeculative,
	}

	ints := []struct {
		key string
		dst *int
	}{
		{"window_days", &opts.WindowDays},
		{"max_official", &opts.MaxOfficial},
		{"max_speculative", &opts.MaxSpeculative},
	}
	for _, p := range ints {
		raw := strings.TrimSpace(q.Get(p.key))
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return opts, fmt.Errorf("%s must be a non-negative integer", p.key)
		}
		*p.dst = n
	}

	if raw := strings.TrimSpace(q.Get("now")); raw != "" {
		t, err := time.ParseInLocation("2006-01-02", raw, time.Local)
		if err != nil {
			return opts, fmt.Errorf("now must be YYYY-MM-DD")
		}
		opts.Now = t
	}
	return opts, nil
}
