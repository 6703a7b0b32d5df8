package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "onematch_http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "onematch_http_request_duration_seconds",
		Help:    "Duration of HTTP requests",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	loginsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "onematch_logins_total",
		Help: "Count of login attempts by outcome",
	}, []string{"outcome"})

	profileSavesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "onematch_profile_saves_total",
		Help: "Count of profile save operations by result",
	}, []string{"result"})

	interestCatalogSize = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "onematch_interest_catalog_size",
		Help: "Number of interests in the global catalog",
	})
)

// ObserveHTTPRequest records an HTTP request metric
func ObserveHTTPRequest(method, path, status string, duration time.Duration) {
	httpRequestsTotal.WithLabelValues(method, path, status).Inc()
	httpRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

// ObserveLogin increments the login counter for the given outcome.
func ObserveLogin(outcome string) {
	loginsTotal.WithLabelValues(outcome).Inc()
}

// ObserveProfileSave increments the profile save counter for the given result.
func ObserveProfileSave(result string) {
	profileSavesTotal.WithLabelValues(result).Inc()
}

// SetInterestCatalogSize updates the catalog size gauge.
func SetInterestCatalogSize(count int) {
	if count < 0 {
		count = 0
	}
	interestCatalogSize.Set(float64(count))
}
