package client

import (
	"errors"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const metricsNamespace = "estfor_client"

// instrumentTransport wraps base with request counting and latency
// observation. Collectors already present on reg (a second client sharing a
// registry) are reused.
func instrumentTransport(reg prometheus.Registerer, base http.RoundTripper) (http.RoundTripper, error) {
	requests := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "requests_total",
			Help:      "Requests sent to the Estfor API, by status code and method.",
		},
		[]string{"code", "method"},
	)
	duration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "request_duration_seconds",
			Help:      "Round-trip latency of Estfor API requests.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"code", "method"},
	)

	var err error
	if requests, err = registerOrReuse(reg, requests); err != nil {
		return nil, err
	}
	if duration, err = registerOrReuse(reg, duration); err != nil {
		return nil, err
	}

	rt := promhttp.InstrumentRoundTripperDuration(duration, base)
	return promhttp.InstrumentRoundTripperCounter(requests, rt), nil
}

func registerOrReuse[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		return c, err
	}
	return c, nil
}
