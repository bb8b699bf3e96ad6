package client

import (
	"errors"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

type clientMetrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

func newClientMetrics(reg prometheus.Registerer) *clientMetrics {
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "appwrite",
		Subsystem: "client",
		Name:      "requests_total",
		Help:      "Appwrite API requests by operation, method and status code.",
	}, []string{"operation", "method", "code"})

	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "appwrite",
		Subsystem: "client",
		Name:      "request_duration_seconds",
		Help:      "Appwrite API request latency by operation.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation"})

	return &clientMetrics{
		requests: register(reg, requests),
		duration: register(reg, duration),
	}
}

// register returns the already registered collector when another client
// registered the same metric on reg first.
func register[C prometheus.Collector](reg prometheus.Registerer, c C) C {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing
			}
		}
		panic(err)
	}
	return c
}

func (m *clientMetrics) observe(op, method string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	code := "error"
	if status > 0 {
		code = strconv.Itoa(status)
	}
	m.requests.WithLabelValues(op, method, code).Inc()
	m.duration.WithLabelValues(op).Observe(elapsed.Seconds())
}
