package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func NewHandler(electionHandler *ElectionHandler) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)

	r.Route("/api", func(r chi.Router) {
		r.Route("/elections", func(r chi.Router) {
			r.Post("/", electionHandler.CreateElection)
			r.Get("/{id}", electionHandler.GetElection)
			r.Post("/{id}/ballots", electionHandler.CastBallot)
			r.Get("/{id}/result", electionHandler.GetResult)
		})
	})

	return r
}
