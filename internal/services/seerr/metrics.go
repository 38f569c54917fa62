package seerr

import (
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestsTotal counts outbound API calls.
	// Labels:
	//   - method: HTTP method
	//   - endpoint: path with numeric ids replaced by ":id"
	//   - code: HTTP status code, or "error" for transport failures
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "seerr_client_requests_total",
			Help: "Total number of API requests sent to the media-request server",
		},
		[]string{"method", "endpoint", "code"},
	)

	// RequestDuration measures outbound API call latency.
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "seerr_client_request_duration_seconds",
			Help:    "Duration of API requests to the media-request server in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint"},
	)

	// AggregationsTotal counts enrichment fan-outs.
	// Labels:
	//   - operation: "recently_added", "issues"
	//   - outcome: "success", "failure"
	AggregationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "seerr_client_aggregations_total",
			Help: "Total number of bounded-concurrency enrichment runs",
		},
		[]string{"operation", "outcome"},
	)
)

func observeRequest(method, path, code string, start time.Time) {
	endpoint := endpointLabel(path)
	RequestsTotal.WithLabelValues(method, endpoint, code).Inc()
	RequestDuration.WithLabelValues(method, endpoint).Observe(time.Since(start).Seconds())
}

func observeAggregation(operation string, err error) {
	outcome := "success"
	if err != nil {
		outcome = "failure"
	}
	AggregationsTotal.WithLabelValues(operation, outcome).Inc()
}

// endpointLabel keeps label cardinality bounded: "tv/1399?x=y" -> "tv/:id"
func endpointLabel(path string) string {
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}
	segments := strings.Split(strings.Trim(path, "/"), "/")
	for i, s := range segments {
		if _, err := strconv.Atoi(s); err == nil {
			segments[i] = ":id"
		}
	}
	return strings.Join(segments, "/")
}
