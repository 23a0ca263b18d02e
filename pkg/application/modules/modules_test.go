package modules_test

import (
	"context"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"launchdash/pkg/application/modules"
)

func freeAddress(t *testing.T) string {
	t.Helper()

	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	address := l.Addr().String()
	require.NoError(t, l.Close())

	return address
}

func get(ctx context.Context, url string) (int, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return 0, "", err
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return 0, "", err
	}

	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)

	return resp.StatusCode, string(body), err
}

func TestModulesLifecycle(t *testing.T) {
	rq := require.New(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)

	httpAddress, probeAddress, metricAddress := freeAddress(t), freeAddress(t), freeAddress(t)

	modules.HTTPServer{
		ListenAddress:     httpAddress,
		ShutdownTimeout:   time.Second,
		ReadHeaderTimeout: time.Second,
	}.Run(ctx, g, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("dashboard")) //nolint:errcheck
	}))

	probeServer := modules.ProbeServer{Name: "launchdash", Version: "test", ListenAddress: probeAddress}.Run(ctx, g)

	modules.MetricServer{ListenAddress: metricAddress, Gatherer: prometheus.NewRegistry()}.Run(ctx, g)

	rq.Eventually(func() bool {
		status, body, err := get(ctx, "http://"+httpAddress+"/")

		return err == nil && status == http.StatusOK && body == "dashboard"
	}, 5*time.Second, 50*time.Millisecond)

	rq.Eventually(func() bool {
		status, _, err := get(ctx, "http://"+probeAddress+"/ready")

		return err == nil && status == http.StatusServiceUnavailable
	}, 5*time.Second, 50*time.Millisecond)

	probeServer.SetReady()

	status, _, err := get(ctx, "http://"+probeAddress+"/ready")
	rq.NoError(err)
	rq.Equal(http.StatusOK, status)

	rq.Eventually(func() bool {
		status, _, err := get(ctx, "http://"+metricAddress+"/metrics")

		return err == nil && status == http.StatusOK
	}, 5*time.Second, 50*time.Millisecond)

	cancel()

	rq.NoError(g.Wait())
}
