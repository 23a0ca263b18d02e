package req_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"git.appkode.ru/pub/go/failure"
	"github.com/stretchr/testify/require"

	"launchdash/pkg/httpx/req"
)

func TestQueryFloat(t *testing.T) {
	rq := require.New(t)

	query := url.Values{"low": {"2500.5"}, "bad": {"ten"}, "inf": {"Inf"}, "neginf": {"-Infinity"}, "nan": {"NaN"}}

	v, err := req.QueryFloat(query, "low")
	rq.NoError(err)
	rq.NotNil(v)
	rq.InDelta(2500.5, *v, 1e-9)

	v, err = req.QueryFloat(query, "missing")
	rq.NoError(err)
	rq.Nil(v)

	for _, name := range []string{"bad", "inf", "neginf", "nan"} {
		_, err = req.QueryFloat(query, name)
		rq.Error(err, name)
		rq.True(failure.IsInvalidArgumentError(err), name)
	}
}

func TestValidate(t *testing.T) {
	rq := require.New(t)

	type query struct {
		Low float64 `validate:"gte=0"`
	}

	r := httptest.NewRequest(http.MethodGet, "/", http.NoBody)

	rq.NoError(req.Validate(r, &query{Low: 1}))

	err := req.Validate(r, &query{Low: -1})
	rq.Error(err)
	rq.True(failure.IsInvalidArgumentError(err))
}
