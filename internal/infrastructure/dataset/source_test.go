package dataset_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"launchdash/internal/domain"
	"launchdash/internal/domain/value"
	"launchdash/internal/infrastructure/dataset"
	"launchdash/pkg/errcodes"
	"launchdash/pkg/httpx"
)

const sample = header +
	"0,1,CCAFS LC-40,0,0,F9 v1.0  B0003,v1.0\n" +
	"1,2,KSC LC-39A,1,2490,F9 FT B1031.1,FT\n" +
	"2,3,CCAFS LC-40,1,5000,F9 FT B1021.1,FT\n"

func TestLoadFromFile(t *testing.T) {
	rq := require.New(t)

	path := filepath.Join(t.TempDir(), "spacex_launch_dash.csv")
	rq.NoError(os.WriteFile(path, []byte(sample), 0o600))

	table, err := dataset.Load(context.Background(), dataset.FileSource{Path: path})
	rq.NoError(err)

	rq.Equal(3, table.Len())
	rq.Equal([]value.Site{"CCAFS LC-40", "KSC LC-39A"}, table.Sites())

	low, high := table.PayloadBounds()
	rq.InDelta(0, low, 1e-9)
	rq.InDelta(5000, high, 1e-9)
}

func TestLoadFromMissingFile(t *testing.T) {
	rq := require.New(t)

	_, err := dataset.Load(context.Background(), dataset.FileSource{Path: filepath.Join(t.TempDir(), "absent.csv")})
	rq.ErrorContains(err, "absent.csv")
	rq.ErrorIs(err, os.ErrNotExist)

	code, ok := domain.GetCode(err)
	rq.True(ok)
	rq.Equal(errcodes.DatasetUnavailable, code)
}

func TestLoadFromHTTP(t *testing.T) {
	rq := require.New(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/spacex_launch_dash.csv" {
			w.WriteHeader(http.StatusNotFound)

			return
		}

		w.Header().Set("Content-Type", "text/csv")
		w.Write([]byte(sample))
	}))
	defer server.Close()

	client := &http.Client{
		Transport: httpx.NewLoggingRoundTripper(http.DefaultTransport, httpx.WithResponseBody(false)),
	}

	table, err := dataset.Load(context.Background(), dataset.HTTPSource{
		URL:    server.URL + "/spacex_launch_dash.csv",
		Client: client,
	})
	rq.NoError(err)
	rq.Equal(3, table.Len())

	_, err = dataset.Load(context.Background(), dataset.HTTPSource{URL: server.URL + "/missing.csv"})
	rq.ErrorContains(err, "unexpected status 404 Not Found")

	code, ok := domain.GetCode(err)
	rq.True(ok)
	rq.Equal(errcodes.DatasetUnavailable, code)
}
