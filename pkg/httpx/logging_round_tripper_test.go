package httpx_test

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/require"

	"launchdash/pkg/contextx"
	"launchdash/pkg/httpx"
	"launchdash/pkg/logx"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

type maskerFunc func([]byte) []byte

func (f maskerFunc) Mask(input []byte) []byte {
	return f(input)
}

func TestLoggingRoundTripper(t *testing.T) {
	const testCSV = "Launch Site,Payload Mass (kg),Booster Version Category,class\nCCAFS LC-40,5000,FT,1\n"

	testCases := []struct {
		name         string
		handlerFunc  http.HandlerFunc
		statusCode   int
		responseBody string
		opts         []httpx.Option
		check        func(t *testing.T, req, resp string)
	}{
		{
			name: "Status 200",
			handlerFunc: http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusOK)
			}),
			check: func(t *testing.T, req, resp string) {
				require.Contains(t, req, "GET / HTTP/1.1")
				require.Contains(t, resp, "HTTP/1.1 200 OK")
			},
			statusCode: http.StatusOK,
		},
		{
			name: "Status 404",
			handlerFunc: http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusNotFound)
				w.Write([]byte("no such dataset"))
			}),
			check: func(t *testing.T, req, resp string) {
				require.Contains(t, req, "GET / HTTP/1.1")
				require.Contains(t, resp, "HTTP/1.1 404 Not Found")
				require.Contains(t, resp, "no such dataset")
			},
			statusCode:   http.StatusNotFound,
			responseBody: "no such dataset",
		},
		{
			name: "Status 200 (masked)",
			handlerFunc: http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusOK)
				w.Write([]byte(testCSV))
			}),
			check: func(t *testing.T, _, resp string) {
				require.Contains(t, resp, "HTTP/1.1 200 OK")
				require.Contains(t, resp, "<site>,5000,FT,1")
			},
			statusCode:   http.StatusOK,
			responseBody: testCSV,
			opts: []httpx.Option{
				httpx.WithSensitiveDataMasker(maskerFunc(func(input []byte) []byte {
					return regexp.MustCompile(`CCAFS LC-40`).ReplaceAll(input, []byte("<site>"))
				})),
			},
		},
		{
			name: "Status 200 (with log field size limit)",
			handlerFunc: http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusOK)
				w.Write([]byte(testCSV))
			}),
			check: func(t *testing.T, req, resp string) {
				require.Equal(t, "GET / HTTP", req)
				require.Equal(t, "HTTP/1.1 2", resp)
			},
			statusCode:   http.StatusOK,
			responseBody: testCSV,
			opts:         []httpx.Option{httpx.WithLogFieldMaxLen(10)},
		},
		{
			name: "Status 200 (response body not dumped)",
			handlerFunc: http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusOK)
				w.Write([]byte(testCSV))
			}),
			check: func(t *testing.T, _, resp string) {
				require.Contains(t, resp, "HTTP/1.1 200 OK")
				require.NotContains(t, resp, "CCAFS LC-40")
			},
			statusCode:   http.StatusOK,
			responseBody: testCSV,
			opts:         []httpx.Option{httpx.WithResponseBody(false)},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			httpServer := httptest.NewServer(tc.handlerFunc)
			defer httpServer.Close()

			var buf bytes.Buffer

			logger := slog.New(slog.NewJSONHandler(&buf, nil))
			ctx := contextx.WithLogger(context.Background(), logger)

			client := &http.Client{
				Transport: httpx.NewLoggingRoundTripper(http.DefaultTransport, tc.opts...),
			}

			req, err := http.NewRequestWithContext(ctx, http.MethodGet, httpServer.URL, http.NoBody)
			rq.NoError(err)

			resp, err := client.Do(req)
			rq.NoError(err)

			defer resp.Body.Close()

			logLines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))

			rq.Equal(tc.statusCode, resp.StatusCode)
			rq.Len(logLines, 2)

			var request, response map[string]any

			rq.NoError(json.Unmarshal(logLines[0], &request))
			rq.NoError(json.Unmarshal(logLines[1], &response))

			tc.check(t, request[logx.FieldRequestBody].(string), response[logx.FieldResponseBody].(string))

			_, ok := response[logx.FieldDurationMs].(float64)
			rq.True(ok)

			rq.EqualValues(tc.statusCode, response[logx.FieldResponseStatus])

			const xidLen = 20

			rq.Len(request[logx.FieldRequestID], xidLen)
			rq.Equal(request[logx.FieldRequestID], response[logx.FieldRequestID])

			if tc.responseBody != "" {
				bodyBytes, err := io.ReadAll(resp.Body)
				rq.NoError(err)

				rq.Equal(tc.responseBody, string(bodyBytes))
			}
		})
	}
}
