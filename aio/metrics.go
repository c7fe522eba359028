package aio

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "aio_client",
			Name:      "requests_total",
			Help:      "Completed HTTP round trips by method and status code.",
		},
		[]string{"method", "code"},
	)

	requestFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "aio_client",
			Name:      "request_failures_total",
			Help:      "Requests that failed before yielding a decoded response.",
		},
		[]string{"method", "reason"},
	)
)
