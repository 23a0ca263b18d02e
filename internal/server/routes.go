package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"launchdash/pkg/httpx/reply"
)

func (s Server) RegisterRoutes(r chi.Router) {
	r.Route("/", func(r chi.Router) {
		r.Get("/", handler(s.getPage))
		r.Get("/charts/{output}.{format}", handler(s.getChart))

		r.Route("/v1", func(r chi.Router) {
			r.Get("/sites", handler(s.getV1Sites))
			r.Get("/summary", handler(s.getV1Summary))
			r.Get("/success-distribution", handler(s.getV1SuccessDistribution))
			r.Get("/launches", handler(s.getV1Launches))
		})
	})
}

func handler(f func(http.ResponseWriter, *http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := f(w, r); err != nil {
			reply.Error(r.Context(), w, err)
		}
	}
}
