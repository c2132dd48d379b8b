package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	Requests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "listique",
		Name:      "requests_total",
		Help:      "Requests issued against the resource api by outcome code.",
	}, []string{"method", "resource", "code"})

	Retries = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "listique",
		Name:      "request_retries_total",
		Help:      "Request attempts beyond the first one.",
	}, []string{"resource"})

	CacheEvents = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "listique",
		Name:      "cache_events_total",
		Help:      "Page cache lookups by outcome (hit, miss, coalesced).",
	}, []string{"resource", "event"})

	Teardowns = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "listique",
		Name:      "session_teardowns_total",
		Help:      "Sessions torn down after an auth rejection.",
	})
)
