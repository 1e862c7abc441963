// Package metrics exposes Prometheus metrics for judgments, comparisons and
// HTTP requests.
package metrics

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	verdictsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "urljudge_verdicts_total",
			Help: "Total number of URL verdicts by source and result",
		},
		[]string{"source", "valid"},
	)

	judgeDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "urljudge_judge_duration_seconds",
			Help:    "Time spent judging one URL in seconds",
			Buckets: []float64{.000001, .000005, .00001, .00005, .0001, .0005, .001, .005},
		},
		[]string{"source"},
	)

	comparisonsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "urljudge_comparisons_total",
			Help: "Total number of oracle/subject comparisons",
		},
		[]string{"subject"},
	)

	mismatchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "urljudge_mismatches_total",
			Help: "Total number of comparisons where the subject disagreed with the oracle",
		},
		[]string{"subject"},
	)

	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "urljudge_http_requests_total",
			Help: "HTTP requests served by route and status code",
		},
		[]string{"path", "status_code"},
	)
)

// RecordVerdict records one verdict produced by source and how long it took.
func RecordVerdict(source string, valid bool, elapsed time.Duration) {
	verdictsTotal.With(prometheus.Labels{
		"source": source,
		"valid":  strconv.FormatBool(valid),
	}).Inc()
	judgeDuration.With(prometheus.Labels{"source": source}).Observe(elapsed.Seconds())
}

// RecordComparison records one comparison against subject.
func RecordComparison(subject string, mismatch bool) {
	comparisonsTotal.With(prometheus.Labels{"subject": subject}).Inc()
	if mismatch {
		mismatchesTotal.With(prometheus.Labels{"subject": subject}).Inc()
	}
}

// RecordRequest records one served HTTP request. route must come from a
// fixed set of names; raw request paths would grow the series without bound.
func RecordRequest(path string, status int) {
	httpRequestsTotal.With(prometheus.Labels{
		"path":        path,
		"status_code": strconv.Itoa(status),
	}).Inc()
}

// Handler returns the Prometheus scrape handler.
func Handler() http.Handler {
	return promhttp.Handler()
}

// CreateMetricsServer creates an HTTP server exposing /metrics and /health
// on its own port.
func CreateMetricsServer(port int) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", Handler())
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	return &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}
