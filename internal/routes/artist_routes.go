package routes

import (
	"database/sql"

	"github.com/go-chi/chi/v5"
	"stagedir/internal/handlers"
	"stagedir/internal/repository"
)

func RegisterArtistRoutes(r chi.Router, db *sql.DB) {
	repo := repository.NewArtistRepository(db)
	handler := handlers.NewArtistHandler(repo)

	r.Route("/artists", func(r chi.Router) {
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
