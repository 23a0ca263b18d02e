package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"

	"launchdash/pkg/middlewarex"
)

type RouterOptions struct {
	Logging    middlewarex.Logging
	Registerer prometheus.Registerer
	Namespace  string
}

// NewRouter mounts the routes behind the shared middleware chain.
func NewRouter(s Server, opts RouterOptions) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middlewarex.TraceID,
		middlewarex.Logger,
		middlewarex.Recovery,
		middlewarex.Metrics(opts.Registerer, opts.Namespace),
		middlewarex.RequestLogging(opts.Logging),
		middlewarex.ResponseLogging(opts.Logging),
	)

	s.RegisterRoutes(r)

	return r
}
