package handlers

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"stagedir/internal/models"
	"stagedir/internal/repository"
)

// recentLimit caps the home page listings.
const recentLimit = 10

type HomeHandler struct {
	venues  repository.VenueRepository
	artists repository.ArtistRepository
}

func NewHomeHandler(venues repository.VenueRepository, artists repository.ArtistRepository) *HomeHandler {
	return &HomeHandler{venues: venues, artists: artists}
}

// Index handles GET /: the ten most recently listed venues and artists.
func (h *HomeHandler) Index(w http.ResponseWriter, r *http.Request) {
	venues, err := h.venues.RecentlyListed(r.Context(), recentLimit)
	if err != nil {
		logrus.WithError(err).Error("recent venues")
		ServerError(w, r)
		return
	}

	artists, err := h.artists.RecentlyListed(r.Context(), recentLimit)
	if err != nil {
		logrus.WithError(err).Error("recent artists")
		ServerError(w, r)
		return
	}

	render(w, r, http.StatusOK, "home.html", struct {
		Venues  []models.Venue
		Artists []models.Artist
	}{venues, artists})
}
