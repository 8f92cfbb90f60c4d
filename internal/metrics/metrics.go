// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package metrics holds the Prometheus collectors of the server and the
// handler that exposes them at /metrics.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	requestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "reviewpress_http_request_duration_seconds",
			Help:    "Duration of HTTP requests by route pattern and status.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)

	pageCacheLookups = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reviewpress_page_cache_lookups_total",
			Help: "Rendered page cache lookups by result (hit or miss).",
		},
		[]string{"result"},
	)

	navigationBuilds = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "reviewpress_navigation_builds_total",
			Help: "Navigation menus assembled from the database.",
		},
	)
)

func init() {
	prometheus.MustRegister(requestDuration, pageCacheLookups, navigationBuilds)
}

// ObserveRequest records one served request. route is the matched route
// pattern, or "unmatched".
func ObserveRequest(method, route string, status int, elapsed time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	requestDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(elapsed.Seconds())
}

// PageCacheLookup counts a page cache hit or miss.
func PageCacheLookup(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	pageCacheLookups.WithLabelValues(result).Inc()
}

// NavigationBuilt counts a menu assembled from the stores.
func NavigationBuilt() {
	navigationBuilds.Inc()
}

// Handler serves the default registry in the Prometheus text format.
func Handler() http.Handler {
	return promhttp.Handler()
}
