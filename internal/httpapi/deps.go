package httpapi

import (
	"net/http"
	"sync/atomic"

	"jobhunt-reconciler/internal/catalogue"
	"jobhunt-reconciler/internal/config"
	"jobhunt-reconciler/internal/events"
	"jobhunt-reconciler/internal/letter"
	"jobhunt-reconciler/internal/metrics"
	"jobhunt-reconciler/internal/profile"
	"jobhunt-reconciler/internal/recommend"
	"jobhunt-reconciler/internal/store"
)

type Deps struct {
	History   *store.HistoryStore
	Catalogue catalogue.Source
	Selector  *recommend.Selector
	Profile   profile.Profile

	Hub     *events.Hub
	Metrics metrics.Recorder // nil means metrics.Nop

	// Metrics endpoint; nil leaves /metrics unrouted.
	MetricsHandler http.Handler

	// Converter overrides the export command from config (tests).
	Converter letter.Converter

	// Atomic stores
	CfgVal *atomic.Value // stores config.Config

	// Config persistence
	UserCfgPath string
	LoadCfg     func() (config.Config, error)
}

func (d Deps) recorder() metrics.Recorder {
	if d.Metrics == nil {
		return metrics.Nop{}
	}
	return d.Metrics
}
