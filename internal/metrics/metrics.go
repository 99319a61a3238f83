package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	PairsScored = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "roommatch_pairs_scored_total",
			Help: "Total number of profile pairs scored, by tier",
		},
		[]string{"tier"},
	)

	DiscoverDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "roommatch_discover_duration_seconds",
			Help:    "Duration of match discovery over a candidate pool",
			Buckets: prometheus.DefBuckets,
		},
	)

	DiscoverPoolSize = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "roommatch_discover_pool_size",
			Help:    "Number of candidates considered per discovery call",
			Buckets: prometheus.ExponentialBuckets(1, 4, 8),
		},
	)

	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "roommatch_api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "route", "status"},
	)
)

func RecordScore(tier string) {
	PairsScored.WithLabelValues(tier).Inc()
}

func RecordDiscover(poolSize int, d time.Duration) {
	DiscoverPoolSize.Observe(float64(poolSize))
	DiscoverDuration.Observe(d.Seconds())
}

func RecordAPIRequest(method, route string, status int) {
	APIRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
}
