// internal/routes/routes.go
package routes

import (
	"database/sql"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"stagedir/internal/handlers"
	"stagedir/internal/repository"
)

func SetupRoutes(db *sql.DB) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(handlers.Recoverer)

	r.NotFound(handlers.NotFound)

	home := handlers.NewHomeHandler(
		repository.NewVenueRepository(db),
		repository.NewArtistRepository(db),
	)
	r.Get("/", home.Index)

	RegisterVenueRoutes(r, db)
	RegisterArtistRoutes(r, db)
	RegisterShowRoutes(r, db)

	return r
}
