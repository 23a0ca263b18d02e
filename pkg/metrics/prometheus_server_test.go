package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"launchdash/pkg/metrics"
)

func TestPrometheusServer(t *testing.T) {
	registry := metrics.NewRegistry()
	counter := prometheus.NewCounter(prometheus.CounterOpts{Name: "launchdash_test_total", Help: "test"})
	registry.MustRegister(counter)
	counter.Inc()

	testCases := []struct {
		name       string
		endpoint   string
		statusCode int
		contains   string
	}{
		{
			name:       "Metrics handler",
			endpoint:   "/metrics",
			statusCode: http.StatusOK,
			contains:   "launchdash_test_total 1",
		},
		{
			name:       "Runtime collectors",
			endpoint:   "/metrics",
			statusCode: http.StatusOK,
			contains:   "go_goroutines",
		},
		{
			name:       "Invalid endpoint",
			endpoint:   "/invalid",
			statusCode: http.StatusNotFound,
			contains:   "404 page not found",
		},
	}

	server := metrics.NewPrometheusServer("", registry)

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			rec := httptest.NewRecorder()
			server.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tc.endpoint, http.NoBody))

			rq.Equal(tc.statusCode, rec.Code)
			rq.Contains(rec.Body.String(), tc.contains)
		})
	}
}
