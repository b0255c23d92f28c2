package metrics

import (
	"net/http/httptest"
	"strings"
	"testing"
)

func TestOutcome(t *testing.T) {
	tests := []struct {
		results int
		want    string
	}{
		{0, OutcomeUnmatched},
		{1, OutcomeMatched},
		{3, OutcomeTie},
	}
	for _, tt := range tests {
		if got := Outcome(tt.results); got != tt.want {
			t.Errorf("Outcome(%d) = %q, want %q", tt.results, got, tt.want)
		}
	}
}

func TestHandlerExposesCollectors(t *testing.T) {
	SearchTotal.Inc()
	ParseTotal.WithLabelValues(OutcomeMatched).Inc()

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	body := rec.Body.String()
	for _, name := range []string{"addrparse_search_total", "addrparse_parse_total"} {
		if !strings.Contains(body, name) {
			t.Errorf("metrics output lacks %s", name)
		}
	}
}
