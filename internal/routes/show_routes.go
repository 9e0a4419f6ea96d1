package routes

import (
	"database/sql"

	"github.com/go-chi/chi/v5"
	"stagedir/internal/handlers"
	"stagedir/internal/repository"
)

func RegisterShowRoutes(r chi.Router, db *sql.DB) {
	repo := repository.NewShowRepository(db)
	handler := handlers.NewShowHandler(repo)

	r.Route("/shows", func(r chi.Router) {
		r.Get("/", handler.List)
		r.Get("/create", handler.NewForm)
		r.Post("/create", handler.Create)
	})
}
