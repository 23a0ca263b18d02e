package server

import (
	"cmp"
	"fmt"
	"net/http"

	"launchdash/internal/domain/entity"
	"launchdash/internal/domain/service/launch"
	"launchdash/internal/domain/value"
	"launchdash/pkg/httpx/reply"
	"launchdash/pkg/httpx/req"
	"launchdash/pkg/rest"
)

type launchService interface {
	Table() entity.Table
	Sites() []value.Site
	SuccessDistribution(value.Site) launch.Distribution
	FilteredLaunches(value.Site, value.PayloadRange) launch.Scatter
}

type APIServer struct {
	launchService launchService
	slider        rest.Slider
}

func NewAPIServer(launchService launchService, slider rest.Slider) APIServer {
	return APIServer{
		launchService: launchService,
		slider:        slider,
	}
}

type siteQuery struct {
	Site string `validate:"max=256"`
}

type launchesQuery struct {
	Site string  `validate:"max=256"`
	Low  float64 `validate:"gte=0"`
	High float64 `validate:"gte=0"`
}

func (s APIServer) getV1Sites(w http.ResponseWriter, r *http.Request) error {
	reply.JSON(r.Context(), w, http.StatusOK, newRESTSites(s.launchService.Sites()))

	return nil
}

func (s APIServer) getV1Summary(w http.ResponseWriter, r *http.Request) error {
	reply.JSON(r.Context(), w, http.StatusOK, newRESTSummary(s.launchService.Table(), s.slider))

	return nil
}

func (s APIServer) getV1SuccessDistribution(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	query := siteQuery{Site: cmp.Or(r.URL.Query().Get("site"), value.AllSites.String())}

	if err := req.Validate(r, &query); err != nil {
		return fmt.Errorf("req.Validate: %w", err)
	}

	site := value.Site(query.Site)

	reply.JSON(ctx, w, http.StatusOK, newRESTSuccessDistribution(site, s.launchService.SuccessDistribution(site)))

	return nil
}

// getV1Launches defaults absent bounds to the payload bounds of the table.
func (s APIServer) getV1Launches(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()
	params := r.URL.Query()

	low, err := req.QueryFloat(params, "low")
	if err != nil {
		return fmt.Errorf("req.QueryFloat: %w", err)
	}

	high, err := req.QueryFloat(params, "high")
	if err != nil {
		return fmt.Errorf("req.QueryFloat: %w", err)
	}

	minKg, maxKg := s.launchService.Table().PayloadBounds()

	query := launchesQuery{
		Site: cmp.Or(params.Get("site"), value.AllSites.String()),
		Low:  valueOr(low, minKg),
		High: valueOr(high, maxKg),
	}

	if err = req.Validate(r, &query); err != nil {
		return fmt.Errorf("req.Validate: %w", err)
	}

	site := value.Site(query.Site)
	payload := value.PayloadRange{Low: query.Low, High: query.High}

	reply.JSON(ctx, w, http.StatusOK, newRESTLaunches(site, payload, s.launchService.FilteredLaunches(site, payload)))

	return nil
}

func valueOr(v *float64, fallback float64) float64 {
	if v == nil {
		return fallback
	}

	return *v
}
