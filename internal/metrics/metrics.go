// Package metrics exposes Prometheus counters for imports and
// recommendations.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"jobhunt-reconciler/internal/domain"
)

// Recorder is what handlers report to. Nop discards everything.
type Recorder interface {
	ImportSucceeded(records int)
	ImportRejected(reason string)
	Recommended(items []domain.RecommendationItem)
}

type Collector struct {
	imports         *prometheus.CounterVec
	importedRecords prometheus.Gauge
	recommendations prometheus.Counter
	recommended     *prometheus.CounterVec
}

func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		imports: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "jobhunt_imports_total",
			Help: "History imports by result.",
		}, []string{"result"}),
		importedRecords: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "jobhunt_history_records",
			Help: "Records in the history after the last successful import.",
		}),
		recommendations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "jobhunt_recommendations_total",
			Help: "Recommendation requests served.",
		}),
		recommended: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "jobhunt_recommended_items_total",
			Help: "Recommended items by kind.",
		}, []string{"kind"}),
	}
	reg.MustRegister(c.imports, c.importedRecords, c.recommendations, c.recommended)
	return c
}

func (c *Collector) ImportSucceeded(records int) {
	c.imports.WithLabelValues("ok").Inc()
	c.importedRecords.Set(float64(records))
}

func (c *Collector) ImportRejected(reason string) {
	c.imports.WithLabelValues(reason).Inc()
}

func (c *Collector) Recommended(items []domain.RecommendationItem) {
	c.recommendations.Inc()
	for _, it := range items {
		c.recommended.WithLabelValues(string(it.Kind)).Inc()
	}
}

// Handler serves the registry in the Prometheus text format.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}

type Nop struct{}

func (Nop) ImportSucceeded(int) {}
func (Nop) ImportRejected(string) {}
func (Nop) Recommended([]domain.RecommendationItem) {}
