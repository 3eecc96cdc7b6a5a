package sign

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeValid     = "valid"
	outcomeInvalid   = "invalid"
	outcomeMalformed = "malformed"
)

// Metrics contains the Prometheus collectors updated by UserVerifier.
type Metrics struct {
	Verifications *prometheus.CounterVec
}

// NewMetrics registers the collectors with the default registerer.
func NewMetrics() *Metrics {
	return NewMetricsWithRegistry(nil)
}

// NewMetricsWithRegistry registers the collectors with registry.
func NewMetricsWithRegistry(registry prometheus.Registerer) *Metrics {
	if registry == nil {
		registry = prometheus.DefaultRegisterer
	}
	factory := promauto.With(registry)

	return &Metrics{
		Verifications: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "mxverify_verifications_total",
			Help: "The total number of signature verifications by outcome (valid, invalid, malformed)",
		}, []string{"outcome"}),
	}
}
