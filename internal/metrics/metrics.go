// Package metrics holds the Prometheus collectors of the parser engine and
// the HTTP surface.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	ParseTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "addrparse_parse_total",
		Help: "Total parse calls by outcome (matched, unmatched, tie)",
	}, []string{"outcome"})
	ParseDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "addrparse_parse_duration_seconds",
		Help:    "Parse duration in seconds, cache hits excluded",
		Buckets: []float64{.00001, .00005, .0001, .00025, .0005, .001, .0025, .005, .01},
	})
	SearchTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "addrparse_search_total",
		Help: "Total spell searches",
	})
	CacheHitsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "addrparse_cache_hits_total",
		Help: "Total parse cache hits",
	})
	CacheMissesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "addrparse_cache_misses_total",
		Help: "Total parse cache misses",
	})
	BulkLinesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "addrparse_bulk_lines_total",
		Help: "Total lines processed by bulk runs",
	})
	HTTPRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "addrparse_http_requests_total",
		Help: "Total HTTP requests by route and status code",
	}, []string{"route", "code"})
)

func init() {
	prometheus.MustRegister(ParseTotal)
	prometheus.MustRegister(ParseDuration)
	prometheus.MustRegister(SearchTotal)
	prometheus.MustRegister(CacheHitsTotal)
	prometheus.MustRegister(CacheMissesTotal)
	prometheus.MustRegister(BulkLinesTotal)
	prometheus.MustRegister(HTTPRequestsTotal)
}

// Outcome labels for ParseTotal.
const (
	OutcomeMatched   = "matched"
	OutcomeUnmatched = "unmatched"
	OutcomeTie       = "tie"
)

// Outcome maps a result count to its ParseTotal label.
func Outcome(results int) string {
	switch {
	case results == 0:
		return OutcomeUnmatched
	case results > 1:
		return OutcomeTie
	default:
		return OutcomeMatched
	}
}

// Handler serves the default registry for scraping.
func Handler() http.Handler { return promhttp.Handler() }
