// Package metrics exports gii-norm parse statistics to Prometheus.
package metrics

import (
	"time"

	"github.com/andaru/gii/giierr"
	"github.com/prometheus/client_golang/prometheus"
)

// Collector counts parse events. It implements parser.Observer.
type Collector struct {
	documents *prometheus.CounterVec
	norms     prometheus.Counter
	anomalies *prometheus.CounterVec
	duration  prometheus.Histogram
}

// NewCollector creates a Collector with its metrics registered to reg.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	c := &Collector{
		documents: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gii_documents_total",
				Help: "Total number of gii-norm documents parsed, by result.",
			},
			[]string{"result"},
		),
		norms: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "gii_norms_total",
			Help: "Total number of norms parsed.",
		}),
		anomalies: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gii_anomalies_total",
				Help: "Total number of parse anomalies, by kind and severity.",
			},
			[]string{"kind", "severity"},
		),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "gii_parse_duration_seconds",
			Help:    "Duration of successful document parses.",
			Buckets: prometheus.ExponentialBuckets(0.001, 4, 8),
		}),
	}
	for _, m := range []prometheus.Collector{c.documents, c.norms, c.anomalies, c.duration} {
		if err := reg.Register(m); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Anomaly counts e. A syntax error also counts a failed document.
func (c *Collector) Anomaly(e *giierr.Error) {
	c.anomalies.WithLabelValues(e.Kind.String(), e.Severity.String()).Inc()
	if e.Kind == giierr.KindSyntax {
		c.documents.WithLabelValues("error").Inc()
	}
}

// Parsed counts a successfully parsed document.
func (c *Collector) Parsed(norms int, elapsed time.Duration) {
	c.documents.WithLabelValues("ok").Inc()
	c.norms.Add(float64(norms))
	c.duration.Observe(elapsed.Seconds())
}
