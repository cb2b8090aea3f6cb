package httpapi

import (
	"net/http"

	"jobhunt-reconciler/internal/config"
)

// NewMux returns the raw mux so main() can still attach /shutdown (needs srv+token).
func NewMux(d Deps) *http.ServeMux {
	mux := http.NewServeMux()
	rec := d.recorder()
	cfg := d.CfgVal.Load().(config.Config)

	// Root + health
	hh := HealthHandler{}
	mux.HandleFunc("/", route(map[string]http.HandlerFunc{
		http.MethodGet: hh.Root,
	}))
	mux.HandleFunc("/health", route(map[string]http.HandlerFunc{
		http.MethodGet: hh.Health,
	}))

	// Recommendations
	rh := RecommendHandler{
		History:   d.History,
		Catalogue: d.Catalogue,
		Selector:  d.Selector,
		CfgVal:    d.CfgVal,
		Metrics:   rec,
	}
	mux.HandleFunc("/api/search", route(map[string]http.HandlerFunc{
		http.MethodGet: rh.Search,
	}))

	// History
	hih := HistoryHandler{History: d.History}
	mux.HandleFunc("/api/history", route(map[string]http.HandlerFunc{
		http.MethodGet: hih.List,
	}))
	mux.HandleFunc("/api/history-stats", route(map[string]http.HandlerFunc{
		http.MethodGet: hih.Stats,
	}))

	// Import (throttled per client)
	ih := ImportHandler{History: d.History, Hub: d.Hub, CfgVal: d.CfgVal, Metrics: rec}
	limiter := NewClientLimiter(cfg.Import.PerMinute, cfg.Import.Burst)
	mux.HandleFunc("/api/upload-notion", route(map[string]http.HandlerFunc{
		http.MethodPost: limiter.Limit(ih.Upload),
	}))

	// Profile + letters
	ph := ProfileHandler{Profile: d.Profile}
	mux.HandleFunc("/api/cv", route(map[string]http.HandlerFunc{
		http.MethodGet: ph.CV,
	}))
	lh := LetterHandler{
		History:   d.History,
		Profile:   d.Profile,
		CfgVal:    d.CfgVal,
		Converter: d.Converter,
	}
	mux.HandleFunc("/api/generate-letter", route(map[string]http.HandlerFunc{
		http.MethodPost: lh.Generate,
	}))
	mux.HandleFunc("/api/download-pdf", route(map[string]http.HandlerFunc{
		http.MethodPost: lh.DownloadPDF,
	}))

	// Config
	ch := ConfigHandler{
		CfgVal:      d.CfgVal,
		UserCfgPath: d.UserCfgPath,
		LoadCfg:     d.LoadCfg,
		Hub:         d.Hub,
	}
	mux.HandleFunc("/config", route(map[string]http.HandlerFunc{
		http.MethodGet: ch.Get,
		http.MethodPut: ch.Put,
	}))
	mux.HandleFunc("/config/path", route(map[string]http.HandlerFunc{
		http.MethodGet: ch.Path,
	}))
	mux.HandleFunc("/config/validate", route(map[string]http.HandlerFunc{
		http.MethodGet: ch.Validate,
	}))

	// SSE events
	if d.Hub != nil {
		eh := EventsHandler{Hub: d.Hub}
		mux.HandleFunc("/events", route(map[string]http.HandlerFunc{
			http.MethodGet: eh.ServeSSE,
		}))
	}

	// Static assets
	if dir := cfg.StaticDir(); dir != "" {
		mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.Dir(dir))))
	}

	if d.MetricsHandler != nil {
		mux.Handle("/metrics", d.MetricsHandler)
	}

	return mux
}
