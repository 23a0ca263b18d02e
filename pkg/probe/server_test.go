package probe_test

import (
	"context"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"launchdash/pkg/probe"
)

func TestServerHandler(t *testing.T) {
	testCases := []struct {
		name       string
		endpoint   string
		ready      bool
		statusCode int
		body       string
	}{
		{
			name:       "Health handler before ready",
			endpoint:   "/healthz",
			statusCode: http.StatusOK,
			body:       `{"name":"launchdash","version":"v0.0.1"}`,
		},
		{
			name:       "Ready handler before ready",
			endpoint:   "/ready",
			statusCode: http.StatusServiceUnavailable,
			body:       "",
		},
		{
			name:       "Ready handler",
			endpoint:   "/ready",
			ready:      true,
			statusCode: http.StatusOK,
			body:       `{"name":"launchdash","version":"v0.0.1"}`,
		},
		{
			name:       "Invalid endpoint",
			endpoint:   "/invalid",
			statusCode: http.StatusNotFound,
			body:       "404 page not found\n",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			probeServer := probe.NewServer("", probe.Options{Name: "launchdash", Version: "v0.0.1"})
			if tc.ready {
				probeServer.SetReady()
			}

			rec := httptest.NewRecorder()
			probeServer.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tc.endpoint, http.NoBody))

			rq.Equal(tc.statusCode, rec.Code)
			rq.Equal(tc.body, rec.Body.String())
		})
	}
}

func TestServerRun(t *testing.T) {
	rq := require.New(t)

	// Reserve a free port, then hand it to the server.
	l, err := net.Listen("tcp", "127.0.0.1:0")
	rq.NoError(err)

	address := l.Addr().String()
	rq.NoError(l.Close())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	probeServer := probe.NewServer(address, probe.Options{Name: "launchdash"})

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return probeServer.Run(ctx)
	})

	rq.Eventually(func() bool {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, "http://"+address+"/healthz", http.NoBody)
		if err != nil {
			return false
		}

		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			return false
		}

		defer resp.Body.Close()

		_, _ = io.Copy(io.Discard, resp.Body)

		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 50*time.Millisecond)

	cancel()

	rq.NoError(g.Wait())
}
