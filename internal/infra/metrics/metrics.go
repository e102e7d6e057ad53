package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/totegamma/recognizer"
)

type Metrics struct {
	registry *prometheus.Registry
	verdicts *prometheus.CounterVec
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		verdicts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "recognizer",
			Name:      "verdicts_total",
			Help:      "Number of validated candidates by entity and outcome.",
		}, []string{"entity", "mode", "accepted", "cached"}),
	}
	m.registry.MustRegister(
		m.verdicts,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

func (m *Metrics) Observe(verdict recognizer.Verdict, cached bool) {
	m.verdicts.WithLabelValues(
		verdict.Entity,
		verdict.Mode.String(),
		strconv.FormatBool(verdict.Accepted()),
		strconv.FormatBool(cached),
	).Inc()
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
