package routes

import (
	"database/sql"

	"github.com/go-chi/chi/v5"
	"stagedir/internal/handlers"
	"stagedir/internal/repository"
)

func RegisterVenueRoutes(r chi.Router, db *sql.DB) {
	repo := repository.NewVenueRepository(db)
	handler := handlers.NewVenueHandler(repo)

	r.Route("/venues", func(r chi.Router) {
		r.Get("/", handler.List)
		r.Post("/search", handler.Search)
		r.Get("/create", handler.NewForm)
		r.Post("/create", handler.Create)
		r.Get("/{id}", handler.Show)
		r.Get("/{id}/edit", handler.EditForm)
		r.Post("/{id}/edit", handler.Edit)
		r.Post("/{id}/delete", handler.Delete)
	})
}
