// Copyright 2025 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package cdaclient

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var requestCount = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "cda",
		Subsystem: "client",
		Name:      "requests_total",
		Help:      "Requests issued to the CDA, by method and status code",
	},
	[]string{
		"method",
		"status",
	},
)

var requestSeconds = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: "cda",
		Subsystem: "client",
		Name:      "request_seconds",
		Help:      "CDA request wall-clock duration",
	},
	[]string{
		"method",
	},
)

func init() {
	prometheus.MustRegister(requestCount)
	prometheus.MustRegister(requestSeconds)
}

func observeRequest(method, status string, elapsed time.Duration) {
	requestCount.With(prometheus.Labels{"method": method, "status": status}).Inc()
	requestSeconds.With(prometheus.Labels{"method": method}).Observe(elapsed.Seconds())
}
