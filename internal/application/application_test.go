package application

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/caarlos0/env/v10"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"launchdash/internal/config"
)

const launchFile = `,Flight Number,Launch Site,class,Payload Mass (kg),Booster Version,Booster Version Category
0,1,CCAFS LC-40,0,0.0,F9 v1.0  B0003,v1.0
1,2,CCAFS LC-40,0,0.0,F9 v1.0  B0004,v1.0
2,6,VAFB SLC-4E,0,500.0,F9 v1.1  B1003,v1.1
3,19,KSC LC-39A,1,2490.0,F9 FT B1031.1,FT
`

func testConfig(t *testing.T, environment map[string]string) config.Config {
	t.Helper()

	cfg, err := config.Parse(env.Options{Environment: environment})
	require.NoError(t, err)

	return cfg
}

func TestStartupFromFile(t *testing.T) {
	rq := require.New(t)

	path := filepath.Join(t.TempDir(), "spacex_launch_dash.csv")
	rq.NoError(os.WriteFile(path, []byte(launchFile), 0o600))

	cfg := testConfig(t, map[string]string{"DATASET_PATH": path})

	handler, err := startup(context.Background(), cfg, prometheus.NewRegistry())
	rq.NoError(err)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/summary", http.NoBody))

	rq.Equal(http.StatusOK, rec.Code)
	rq.JSONEq(`{"records":4,"sites":3,"payloadMinKg":0,"payloadMaxKg":2490,"slider":{"min":0,"max":10000,"step":1000}}`, rec.Body.String())
}

func TestStartupFromHTTP(t *testing.T) {
	rq := require.New(t)

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(launchFile)) //nolint:errcheck
	}))
	defer ts.Close()

	cfg := testConfig(t, map[string]string{"DATASET_SOURCE": "http", "DATASET_URL": ts.URL})

	handler, err := startup(context.Background(), cfg, prometheus.NewRegistry())
	rq.NoError(err)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/sites", http.NoBody))

	rq.JSONEq(`{"all":"ALL","sites":["CCAFS LC-40","VAFB SLC-4E","KSC LC-39A"]}`, rec.Body.String())
}

func TestStartupMissingFile(t *testing.T) {
	cfg := testConfig(t, map[string]string{"DATASET_PATH": filepath.Join(t.TempDir(), "missing.csv")})

	_, err := startup(context.Background(), cfg, prometheus.NewRegistry())
	require.Error(t, err)
}
